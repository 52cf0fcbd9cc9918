package history

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	historyservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/historyservice"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/validate"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service interface {
	GetHistory(ctx context.Context, address string, limit, offset int, entryType string) (*historyservice.Page, error)
}

type HistoryHandler struct {
	historyService Service
}

func New(historyService Service) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetHistory godoc
//
//	@Summary		Get wallet activity
//	@Description	Page through the wallet's delegations, releases and reward claims, newest first. The type query parameter narrows the listing to one kind of entry.
//	@Tags			History
//	@Produce		json
//	@Param			address	path		string	true	"Stellar account ID"
//	@Param			limit	query		int		false	"Page size, at most 100"
//	@Param			offset	query		int		false	"Rows to skip"
//	@Param			type	query		string	false	"Entry type filter"	Enums(delegate, undelegate, reward_claim)
//	@Success		200		{object}	dto.HistoryResponseDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Invalid stellar address"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/history/{address} [get]
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if !validate.IsStellarAddress(address) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid stellar address")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	entryType := r.URL.Query().Get("type")

	result, err := h.historyService.GetHistory(r.Context(), address, limit, offset, entryType)
	if err != nil {
		switch {
		case errors.Is(err, historyservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	entries := make([]dto.HistoryEntryDTO, len(result.Entries))
	for i, entry := range result.Entries {
		entries[i] = dto.HistoryEntryDTO{
			ID:        entry.ID,
			Type:      entry.Type,
			Amount:    entry.Amount.StringFixed(7),
			TxHash:    entry.TxHash,
			CreatedAt: entry.CreatedAt,
		}
	}

	totalPages := 0
	if result.Total > 0 {
		totalPages = (result.Total + limit - 1) / limit
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.HistoryResponseDTO{
		StellarAddress: address,
		Entries:        entries,
		Limit:          limit,
		Offset:         offset,
		TotalItems:     result.Total,
		TotalPages:     totalPages,
		HasMore:        offset+len(entries) < result.Total,
	})
}
