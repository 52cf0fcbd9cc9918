package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	rewardservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/rewardservice"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/validate"
)

type Service interface {
	Pending(ctx context.Context, address string) (*rewardservice.PendingSummary, error)
	Claim(ctx context.Context, address string) (*rewardservice.ClaimResult, error)
}

type RewardsHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardsHandler {
	return &RewardsHandler{
		rewardService: rewardService,
	}
}

// GetPending godoc
//
//	@Summary		Get pending rewards
//	@Description	List the wallet's unclaimed rewards with their total and fiat valuation.
//	@Tags			Rewards
//	@Produce		json
//	@Param			address	path		string	true	"Stellar account ID"
//	@Success		200		{object}	dto.PendingRewardsResponseDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Invalid stellar address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/pending/{address} [get]
func (h *RewardsHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if !validate.IsStellarAddress(address) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}

	summary, err := h.rewardService.Pending(r.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	rewards := make([]dto.RewardDTO, len(summary.Rewards))
	for i, reward := range summary.Rewards {
		rewards[i] = dto.RewardDTO{
			ID:        reward.ID,
			Amount:    reward.Amount.StringFixed(7),
			Status:    reward.Status,
			CreatedAt: reward.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PendingRewardsResponseDTO{
		StellarAddress: address,
		Rewards:        rewards,
		Total:          summary.Total.StringFixed(7),
		TokenCode:      summary.TokenCode,
		ValueBRL:       summary.ValueBRL.StringFixed(2),
		ValueUSD:       summary.ValueUSD.StringFixed(2),
	})
}

// Claim godoc
//
//	@Summary		Claim pending rewards
//	@Description	Mark every pending reward of the wallet as claimed and record the payout in the activity history.
//	@Tags			Rewards
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO	true	"Claim payload"
//	@Success		200		{object}	dto.ClaimResponseDTO
//	@Failure		400		{object}	utils.Response		"Nothing to claim"
//	@Failure		404		{object}	utils.Response		"User not found"
//	@Failure		422		{object}	utils.Response		"Invalid stellar address"
//	@Failure		500		{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/rewards/claim [post]
func (h *RewardsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsStellarAddress(req.StellarAddress) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}

	result, err := h.rewardService.Claim(r.Context(), req.StellarAddress)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrNothingToClaim):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithServerError(w, "claim failed", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		Success:   true,
		Message:   "Rewards claimed",
		Amount:    result.Amount.StringFixed(7),
		TokenCode: result.TokenCode,
		TxHash:    result.TxHash,
		Count:     result.Count,
		ClaimedAt: result.ClaimedAt,
	})
}
