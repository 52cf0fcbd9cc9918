package service

import (
	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/handlers/auth"
	"github.com/nsdBRoficial/stellar-stake-house/internal/handlers/history"
	"github.com/nsdBRoficial/stellar-stake-house/internal/handlers/rewards"
	"github.com/nsdBRoficial/stellar-stake-house/internal/handlers/snapshots"
	"github.com/nsdBRoficial/stellar-stake-house/internal/handlers/staking"
	"github.com/nsdBRoficial/stellar-stake-house/internal/horizon"

	pkgauth "github.com/nsdBRoficial/stellar-stake-house/pkg/auth"

	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
	"github.com/nsdBRoficial/stellar-stake-house/internal/repo"
	authservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/authservice"
	historyservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/historyservice"
	rewardservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/rewardservice"
	snapshotservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/snapshotservice"
	stakingservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/stakingservice"
)

type Services struct {
	AuthService     auth.Service
	StakingService  staking.Service
	RewardService   rewards.Service
	SnapshotService snapshots.Service
	HistoryService  history.Service

	// Snapshots holds the concrete snapshot service for the scheduler.
	Snapshots *snapshotservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, ledger *horizon.Client, jwtService pkgauth.JWTServiceInterface) (*Services, error) {
	snapshotService, err := snapshotservice.New(cfg, repo.DelegationRepo, repo.SnapshotRepo, repo.RewardRepo, ledger)
	if err != nil {
		return nil, err
	}

	stakingService := stakingservice.New(cfg, repo.UserRepo, repo.DelegationRepo, repo.SnapshotRepo, repo.HistoryRepo, ledger, snapshotService, txManager)
	rewardService := rewardservice.New(cfg, repo.UserRepo, repo.RewardRepo, repo.HistoryRepo, txManager)
	historyService := historyservice.New(repo.UserRepo, repo.HistoryRepo)
	authService := authservice.New(repo.UserRepo, jwtService)

	return &Services{
		AuthService:     authService,
		StakingService:  stakingService,
		RewardService:   rewardService,
		SnapshotService: snapshotService,
		HistoryService:  historyService,
		Snapshots:       snapshotService,
	}, nil
}
