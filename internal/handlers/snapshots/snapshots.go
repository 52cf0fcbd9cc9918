package snapshots

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	snapshotservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/snapshotservice"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service interface {
	TakeSnapshot(ctx context.Context) (*domain.SnapshotResult, error)
	History(ctx context.Context, limit, offset int) (*snapshotservice.HistoryPage, error)
	LatestInfo(ctx context.Context) (*snapshotservice.LatestInfo, error)
}

type SnapshotsHandler struct {
	snapshotService Service
}

func New(snapshotService Service) *SnapshotsHandler {
	return &SnapshotsHandler{
		snapshotService: snapshotService,
	}
}

// Execute godoc
//
//	@Summary		Run a snapshot now
//	@Description	Capture the delegation state of every staker and accrue their daily rewards. Only one run may be active at a time; a repeat run on the same day inserts nothing.
//	@Tags			Snapshots
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ExecuteSnapshotResponseDTO
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		409	{object}	utils.Response		"A run is already in progress"
//	@Failure		500	{object}	utils.ErrorResponse	"Internal server error"
//	@Router			/api/snapshots/execute [post]
func (h *SnapshotsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	result, err := h.snapshotService.TakeSnapshot(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, snapshotservice.ErrRunInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithServerError(w, "snapshot run failed", err)
		}
		return
	}

	skipped := make([]dto.SkippedUserDTO, len(result.Skipped))
	for i, s := range result.Skipped {
		skipped[i] = dto.SkippedUserDTO{
			UserID:         s.UserID,
			StellarAddress: s.StellarAddress,
			Reason:         s.Reason,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ExecuteSnapshotResponseDTO{
		Success:       true,
		Message:       "Snapshot completed",
		SnapshotCount: result.SnapshotCount,
		RewardsCount:  result.RewardsCount,
		SnapshotDate:  result.SnapshotDate,
		Skipped:       skipped,
	})
}

// GetHistory godoc
//
//	@Summary		Get snapshot history
//	@Description	Page through past snapshots, newest first.
//	@Tags			Snapshots
//	@Produce		json
//	@Param			limit	query		int	false	"Page size, at most 100"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{object}	dto.SnapshotHistoryResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/snapshots/history [get]
func (h *SnapshotsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	result, err := h.snapshotService.History(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	snapshots := make([]dto.SnapshotDTO, len(result.Snapshots))
	for i, s := range result.Snapshots {
		snapshots[i] = dto.SnapshotDTO{
			ID:              s.ID,
			StellarAddress:  s.StellarAddress,
			DelegatedAmount: s.DelegatedAmount.StringFixed(7),
			ActualBalance:   s.ActualBalance.StringFixed(7),
			CreatedAt:       s.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SnapshotHistoryResponseDTO{
		Snapshots:  snapshots,
		Limit:      limit,
		Offset:     offset,
		TotalItems: result.Total,
		TotalPages: totalPages(result.Total, limit),
		HasMore:    offset+len(snapshots) < result.Total,
	})
}

// GetLatest godoc
//
//	@Summary		Get latest snapshot info
//	@Description	Report when the last snapshot ran and when the next one is due.
//	@Tags			Snapshots
//	@Produce		json
//	@Success		200	{object}	dto.LatestSnapshotResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/snapshots/latest [get]
func (h *SnapshotsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	info, err := h.snapshotService.LatestInfo(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LatestSnapshotResponseDTO{
		LastSnapshot:     info.LastSnapshot,
		NextSnapshot:     info.NextSnapshot,
		SnapshotInterval: info.Interval.String(),
	})
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
