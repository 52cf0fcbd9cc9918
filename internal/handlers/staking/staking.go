package staking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	stakingservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/stakingservice"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/validate"
)

type Service interface {
	Balance(ctx context.Context, address string) (*stakingservice.BalanceInfo, error)
	Delegate(ctx context.Context, address string, amount decimal.Decimal, txHash string) (*domain.Delegation, error)
	Undelegate(ctx context.Context, address string) (decimal.Decimal, error)
	Status(ctx context.Context, address string) (*stakingservice.StatusInfo, error)
}

type StakingHandler struct {
	stakingService Service
}

func New(stakingService Service) *StakingHandler {
	return &StakingHandler{
		stakingService: stakingService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet staking balance
//	@Description	Report the wallet's on-ledger token balance and the total it has delegated.
//	@Tags			Staking
//	@Produce		json
//	@Param			address	path		string	true	"Stellar account ID"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		422		{object}	utils.Response	"Invalid stellar address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/staking/balance/{address} [get]
func (h *StakingHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if !validate.IsStellarAddress(address) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}

	info, err := h.stakingService.Balance(r.Context(), address)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		StellarAddress: address,
		WalletBalance:  info.WalletBalance.StringFixed(7),
		Delegated:      info.Delegated.StringFixed(7),
		TokenCode:      info.TokenCode,
	})
}

// Delegate godoc
//
//	@Summary		Delegate tokens
//	@Description	Record a delegation backed by an on-ledger transaction. The transaction hash must exist on the network.
//	@Tags			Staking
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DelegateRequestDTO	true	"Delegation payload"
//	@Success		200		{object}	dto.DelegateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		422		{object}	utils.Response	"Invalid stellar address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/staking/delegate [post]
func (h *StakingHandler) Delegate(w http.ResponseWriter, r *http.Request) {
	var req dto.DelegateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsStellarAddress(req.StellarAddress) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	delegation, err := h.stakingService.Delegate(r.Context(), req.StellarAddress, amount, req.TxHash)
	if err != nil {
		switch {
		case errors.Is(err, stakingservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, stakingservice.ErrTxNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DelegateResponseDTO{
		Delegation: dto.DelegationDTO{
			ID:        delegation.ID,
			Amount:    delegation.Amount.StringFixed(7),
			TxHash:    delegation.TxHash,
			Status:    delegation.Status,
			CreatedAt: delegation.CreatedAt,
		},
		Message: "Delegation recorded",
	})
}

// Undelegate godoc
//
//	@Summary		Release delegated tokens
//	@Description	Deactivate every active delegation of the wallet.
//	@Tags			Staking
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UndelegateRequestDTO	true	"Undelegate payload"
//	@Success		200		{object}	dto.UndelegateResponseDTO
//	@Failure		400		{object}	utils.Response	"Nothing delegated"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Invalid stellar address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/staking/undelegate [post]
func (h *StakingHandler) Undelegate(w http.ResponseWriter, r *http.Request) {
	var req dto.UndelegateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsStellarAddress(req.StellarAddress) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}

	amount, err := h.stakingService.Undelegate(r.Context(), req.StellarAddress)
	if err != nil {
		switch {
		case errors.Is(err, stakingservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, stakingservice.ErrNoActiveDelegation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UndelegateResponseDTO{
		Amount:  amount.StringFixed(7),
		Message: "Delegations released",
	})
}

// GetStatus godoc
//
//	@Summary		Get staking status
//	@Description	List the wallet's active delegations, its latest snapshot and the time of the next scheduled run.
//	@Tags			Staking
//	@Produce		json
//	@Param			address	path		string	true	"Stellar account ID"
//	@Success		200		{object}	dto.StatusResponseDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Invalid stellar address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/staking/status/{address} [get]
func (h *StakingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if !validate.IsStellarAddress(address) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}

	info, err := h.stakingService.Status(r.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, stakingservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	delegations := make([]dto.DelegationDTO, len(info.Delegations))
	for i, delegation := range info.Delegations {
		delegations[i] = dto.DelegationDTO{
			ID:        delegation.ID,
			Amount:    delegation.Amount.StringFixed(7),
			TxHash:    delegation.TxHash,
			Status:    delegation.Status,
			CreatedAt: delegation.CreatedAt,
		}
	}

	resp := dto.StatusResponseDTO{
		StellarAddress: address,
		TotalDelegated: info.TotalDelegated.StringFixed(7),
		Delegations:    delegations,
		NextSnapshot:   info.NextSnapshot,
	}
	if info.LatestSnapshot != nil {
		resp.LastSnapshot = &dto.SnapshotDTO{
			ID:              info.LatestSnapshot.ID,
			DelegatedAmount: info.LatestSnapshot.DelegatedAmount.StringFixed(7),
			ActualBalance:   info.LatestSnapshot.ActualBalance.StringFixed(7),
			CreatedAt:       info.LatestSnapshot.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}
