package stakingservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
)

type UserRepo interface {
	FindByAddress(ctx context.Context, address string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
type DelegationRepo interface {
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.Delegation, error)
	Create(ctx context.Context, delegation *domain.Delegation) (*domain.Delegation, error)
	DeactivateByUserID(ctx context.Context, userID int) (int64, error)
}
type SnapshotRepo interface {
	FindLatestByUserID(ctx context.Context, userID int) (*domain.Snapshot, error)
}
type HistoryRepo interface {
	Create(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error)
}
type Ledger interface {
	AccountTokenBalance(ctx context.Context, address string) (decimal.Decimal, error)
	TransactionExists(ctx context.Context, hash string) (bool, error)
}

// Scheduler reports when the next snapshot run happens. Satisfied by the
// snapshot service.
type Scheduler interface {
	NextSnapshot(from time.Time) time.Time
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAmount      = errors.New("delegation amount must be positive")
	ErrTxNotFound         = errors.New("transaction not found on the ledger")
	ErrNoActiveDelegation = errors.New("no active delegation")
)

type Service struct {
	userRepo       UserRepo
	delegationRepo DelegationRepo
	snapshotRepo   SnapshotRepo
	historyRepo    HistoryRepo
	ledger         Ledger
	scheduler      Scheduler
	txManager      pg.TXManager

	tokenCode string
}

func New(cfg *config.Config, userRepo UserRepo, delegationRepo DelegationRepo, snapshotRepo SnapshotRepo, historyRepo HistoryRepo, ledger Ledger, scheduler Scheduler, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		delegationRepo: delegationRepo,
		snapshotRepo:   snapshotRepo,
		historyRepo:    historyRepo,
		ledger:         ledger,
		scheduler:      scheduler,
		txManager:      txManager,
		tokenCode:      cfg.TokenCode,
	}
}

type BalanceInfo struct {
	WalletBalance decimal.Decimal
	Delegated     decimal.Decimal
	TokenCode     string
}

type StatusInfo struct {
	Delegations    []domain.Delegation
	TotalDelegated decimal.Decimal
	LatestSnapshot *domain.Snapshot
	NextSnapshot   time.Time
}

// Balance reports the wallet's on-ledger token balance next to the
// amount it has delegated. Addresses without a user record simply have
// nothing delegated.
func (s *Service) Balance(ctx context.Context, address string) (*BalanceInfo, error) {
	walletBalance, err := s.ledger.AccountTokenBalance(ctx, address)
	if err != nil {
		zap.L().Error("failed to fetch ledger balance", zap.String("address", address), zap.Error(err))
		return nil, err
	}

	delegated := decimal.Zero
	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user != nil {
		delegations, err := s.delegationRepo.FindActiveByUserID(ctx, user.ID)
		if err != nil {
			zap.L().Error("failed to fetch delegations", zap.Error(err))
			return nil, err
		}
		for _, delegation := range delegations {
			delegated = delegated.Add(delegation.Amount)
		}
	}

	return &BalanceInfo{
		WalletBalance: walletBalance,
		Delegated:     delegated,
		TokenCode:     s.tokenCode,
	}, nil
}

// Delegate records a new delegation after checking the referenced
// transaction actually landed on the ledger. Unknown addresses get a
// user record on the fly.
func (s *Service) Delegate(ctx context.Context, address string, amount decimal.Decimal, txHash string) (*domain.Delegation, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	exists, err := s.ledger.TransactionExists(ctx, txHash)
	if err != nil {
		zap.L().Error("failed to verify transaction", zap.String("txHash", txHash), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrTxNotFound
	}

	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &domain.User{StellarAddress: address})
		if err != nil {
			zap.L().Error("failed to create user", zap.Error(err))
			return nil, err
		}
	}

	var created *domain.Delegation
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err = s.delegationRepo.Create(ctx, &domain.Delegation{
			UserID: user.ID,
			Amount: amount,
			TxHash: txHash,
			Status: domain.DelegationActive,
		})
		if err != nil {
			return err
		}

		entry := &domain.HistoryEntry{
			UserID:    user.ID,
			Type:      domain.HistoryDelegate,
			Amount:    amount,
			TxHash:    txHash,
			CreatedAt: created.CreatedAt,
		}
		_, err = s.historyRepo.Create(ctx, entry)
		return err
	})
	if err != nil {
		zap.L().Error("failed to create delegation", zap.Int("userID", user.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("delegation created",
		zap.Int("userID", user.ID),
		zap.String("amount", amount.String()))
	return created, nil
}

// Undelegate deactivates every active delegation of the address and
// records one history entry for the released total.
func (s *Service) Undelegate(ctx context.Context, address string) (decimal.Decimal, error) {
	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, ErrUserNotFound
	}

	delegations, err := s.delegationRepo.FindActiveByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to fetch delegations", zap.Error(err))
		return decimal.Zero, err
	}
	if len(delegations) == 0 {
		return decimal.Zero, ErrNoActiveDelegation
	}

	total := decimal.Zero
	for _, delegation := range delegations {
		total = total.Add(delegation.Amount)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		affected, err := s.delegationRepo.DeactivateByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNoActiveDelegation
		}

		entry := &domain.HistoryEntry{
			UserID:    user.ID,
			Type:      domain.HistoryUndelegate,
			Amount:    total,
			CreatedAt: time.Now().UTC(),
		}
		_, err = s.historyRepo.Create(ctx, entry)
		return err
	})
	if err != nil {
		zap.L().Error("failed to undelegate", zap.Int("userID", user.ID), zap.Error(err))
		return decimal.Zero, err
	}

	zap.L().Info("delegations released",
		zap.Int("userID", user.ID),
		zap.String("amount", total.String()))
	return total, nil
}

// Status lists the address's active delegations together with its most
// recent snapshot and the time of the next scheduled run.
func (s *Service) Status(ctx context.Context, address string) (*StatusInfo, error) {
	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	delegations, err := s.delegationRepo.FindActiveByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to fetch delegations", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, delegation := range delegations {
		total = total.Add(delegation.Amount)
	}

	latest, err := s.snapshotRepo.FindLatestByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to fetch latest snapshot", zap.Error(err))
		return nil, err
	}

	return &StatusInfo{
		Delegations:    delegations,
		TotalDelegated: total,
		LatestSnapshot: latest,
		NextSnapshot:   s.scheduler.NextSnapshot(time.Now().UTC()),
	}, nil
}
