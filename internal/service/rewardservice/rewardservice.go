package rewardservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/pg"
)

type UserRepo interface {
	FindByAddress(ctx context.Context, address string) (*domain.User, error)
}
type RewardRepo interface {
	FindByUserIDAndStatus(ctx context.Context, userID int, status string) ([]domain.Reward, error)
	MarkClaimed(ctx context.Context, ids []int, txHash string, claimedAt time.Time) (int64, error)
}
type HistoryRepo interface {
	Create(ctx context.Context, entry *domain.HistoryEntry) (*domain.HistoryEntry, error)
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNothingToClaim = errors.New("no pending rewards to claim")
)

type Service struct {
	userRepo    UserRepo
	rewardRepo  RewardRepo
	historyRepo HistoryRepo
	txManager   pg.TXManager

	tokenCode string
	priceBRL  decimal.Decimal
	priceUSD  decimal.Decimal
}

func New(cfg *config.Config, userRepo UserRepo, rewardRepo RewardRepo, historyRepo HistoryRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    userRepo,
		rewardRepo:  rewardRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		tokenCode:   cfg.TokenCode,
		priceBRL:    decimal.NewFromFloat(cfg.TokenPriceBRL),
		priceUSD:    decimal.NewFromFloat(cfg.TokenPriceUSD),
	}
}

// PendingSummary aggregates a user's unclaimed rewards together with
// their fiat valuation at the configured token prices.
type PendingSummary struct {
	Rewards   []domain.Reward
	Total     decimal.Decimal
	TokenCode string
	ValueBRL  decimal.Decimal
	ValueUSD  decimal.Decimal
}

type ClaimResult struct {
	Amount    decimal.Decimal
	TokenCode string
	TxHash    string
	ClaimedAt time.Time
	Count     int
}

func (s *Service) Pending(ctx context.Context, address string) (*PendingSummary, error) {
	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rewards, err := s.rewardRepo.FindByUserIDAndStatus(ctx, user.ID, domain.RewardPending)
	if err != nil {
		zap.L().Error("failed to fetch pending rewards", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, reward := range rewards {
		total = total.Add(reward.Amount)
	}

	return &PendingSummary{
		Rewards:   rewards,
		Total:     total,
		TokenCode: s.tokenCode,
		ValueBRL:  total.Mul(s.priceBRL).Round(2),
		ValueUSD:  total.Mul(s.priceUSD).Round(2),
	}, nil
}

// Claim marks every pending reward of the user as claimed and records a
// single history entry for the whole batch. The update and the history
// row commit together or not at all.
func (s *Service) Claim(ctx context.Context, address string) (*ClaimResult, error) {
	user, err := s.userRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	rewards, err := s.rewardRepo.FindByUserIDAndStatus(ctx, user.ID, domain.RewardPending)
	if err != nil {
		zap.L().Error("failed to fetch pending rewards", zap.Error(err))
		return nil, err
	}
	if len(rewards) == 0 {
		return nil, ErrNothingToClaim
	}

	total := decimal.Zero
	ids := make([]int, 0, len(rewards))
	for _, reward := range rewards {
		total = total.Add(reward.Amount)
		ids = append(ids, reward.ID)
	}

	txHash := "claim_" + uuid.NewString()
	claimedAt := time.Now().UTC()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		affected, err := s.rewardRepo.MarkClaimed(ctx, ids, txHash, claimedAt)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNothingToClaim
		}

		entry := &domain.HistoryEntry{
			UserID:    user.ID,
			Type:      domain.HistoryRewardClaim,
			Amount:    total,
			TxHash:    txHash,
			CreatedAt: claimedAt,
		}
		if _, err := s.historyRepo.Create(ctx, entry); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to claim rewards", zap.Int("userID", user.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("rewards claimed",
		zap.Int("userID", user.ID),
		zap.Int("count", len(ids)),
		zap.String("amount", total.StringFixed(7)))

	return &ClaimResult{
		Amount:    total,
		TokenCode: s.tokenCode,
		TxHash:    txHash,
		ClaimedAt: claimedAt,
		Count:     len(ids),
	}, nil
}
