package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nsdBRoficial/stellar-stake-house/docs"
	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	authhandlers "github.com/nsdBRoficial/stellar-stake-house/internal/handlers/auth"
	historyhandlers "github.com/nsdBRoficial/stellar-stake-house/internal/handlers/history"
	rewardshandlers "github.com/nsdBRoficial/stellar-stake-house/internal/handlers/rewards"
	snapshotshandlers "github.com/nsdBRoficial/stellar-stake-house/internal/handlers/snapshots"
	stakinghandlers "github.com/nsdBRoficial/stellar-stake-house/internal/handlers/staking"
	"github.com/nsdBRoficial/stellar-stake-house/internal/service"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/auth"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
)

type AuthHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
}

type StakingHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Delegate(w http.ResponseWriter, r *http.Request)
	Undelegate(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type RewardsHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
}

type SnapshotsHandler interface {
	Execute(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetLatest(w http.ResponseWriter, r *http.Request)
}

type HistoryHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	StakingHandler   StakingHandler
	RewardsHandler   RewardsHandler
	SnapshotsHandler SnapshotsHandler
	HistoryHandler   HistoryHandler

	cfg        *config.Config
	jwtService auth.JWTServiceInterface
}

func New(cfg *config.Config, s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		StakingHandler:   stakinghandlers.New(s.StakingService),
		RewardsHandler:   rewardshandlers.New(s.RewardService),
		SnapshotsHandler: snapshotshandlers.New(s.SnapshotService),
		HistoryHandler:   historyhandlers.New(s.HistoryService),
		cfg:              cfg,
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/api/status", h.GetStatus)
	r.Post("/api/auth/verify", h.AuthHandler.Verify)

	r.Route("/api/staking", func(r chi.Router) {
		r.Get("/balance/{address}", h.StakingHandler.GetBalance)
		r.Post("/delegate", h.StakingHandler.Delegate)
		r.Post("/undelegate", h.StakingHandler.Undelegate)
		r.Get("/status/{address}", h.StakingHandler.GetStatus)
	})

	r.Route("/api/rewards", func(r chi.Router) {
		r.Get("/pending/{address}", h.RewardsHandler.GetPending)
		r.Post("/claim", h.RewardsHandler.Claim)
	})

	r.Route("/api/snapshots", func(r chi.Router) {
		r.Get("/history", h.SnapshotsHandler.GetHistory)
		r.Get("/latest", h.SnapshotsHandler.GetLatest)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Post("/execute", h.SnapshotsHandler.Execute)
		})
	})

	r.Get("/api/history/{address}", h.HistoryHandler.GetHistory)

	return r
}

// GetStatus godoc
//
//	@Summary		Service status
//	@Description	Report that the service is up together with its staking parameters.
//	@Tags			Status
//	@Produce		json
//	@Success		200	{object}	dto.ServiceStatusDTO
//	@Router			/api/status [get]
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.ServiceStatusDTO{
		Status:     "ok",
		TokenCode:  h.cfg.TokenCode,
		RewardRate: h.cfg.RewardRate,
		Time:       time.Now().UTC(),
	})
}
