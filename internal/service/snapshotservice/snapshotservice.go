package snapshotservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
)

const lookupLimit = 10

var (
	ErrRunInProgress = errors.New("snapshot run already in progress")

	daysPerYear = decimal.NewFromInt(365)
)

type DelegationRepo interface {
	FindActiveWithAddresses(ctx context.Context) ([]domain.ActiveDelegation, error)
}

type SnapshotRepo interface {
	InsertBatch(ctx context.Context, snapshots []domain.Snapshot) (int, error)
	FindLatestDate(ctx context.Context) (*time.Time, error)
	FindHistory(ctx context.Context, limit, offset int) ([]domain.SnapshotEntry, error)
	CountAll(ctx context.Context) (int, error)
}

type RewardRepo interface {
	InsertBatch(ctx context.Context, rewards []domain.Reward) (int, error)
}

type Ledger interface {
	AccountTokenBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

type Service struct {
	delegationRepo DelegationRepo
	snapshotRepo   SnapshotRepo
	rewardRepo     RewardRepo
	ledger         Ledger
	rewardRate     decimal.Decimal
	schedule       cron.Schedule
	running        atomic.Bool
}

func New(cfg *config.Config, delegationRepo DelegationRepo, snapshotRepo SnapshotRepo, rewardRepo RewardRepo, ledger Ledger) (*Service, error) {
	schedule, err := cron.ParseStandard(cfg.SnapshotCron)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot cron expression %q: %w", cfg.SnapshotCron, err)
	}

	return &Service{
		delegationRepo: delegationRepo,
		snapshotRepo:   snapshotRepo,
		rewardRepo:     rewardRepo,
		ledger:         ledger,
		rewardRate:     decimal.NewFromFloat(cfg.RewardRate),
		schedule:       schedule,
	}, nil
}

// TakeSnapshot captures the delegated amount and on-chain balance of every
// user with an active delegation, then derives pending rewards from the
// captured batch. Only one run may be in flight at a time.
func (s *Service) TakeSnapshot(ctx context.Context) (*domain.SnapshotResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer s.running.Store(false)

	delegations, err := s.delegationRepo.FindActiveWithAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't fetch active delegations: %w", err)
	}
	zap.L().Info("snapshot run started", zap.Int("activeDelegations", len(delegations)))

	type userTotal struct {
		address   string
		delegated decimal.Decimal
	}
	totals := make(map[int]*userTotal)
	userIDs := make([]int, 0)
	for _, d := range delegations {
		t, ok := totals[d.UserID]
		if !ok {
			t = &userTotal{address: d.StellarAddress}
			totals[d.UserID] = t
			userIDs = append(userIDs, d.UserID)
		}
		t.delegated = t.delegated.Add(d.Amount)
	}

	snapshotDate := time.Now().UTC()

	var (
		mu        sync.Mutex
		snapshots []domain.Snapshot
		skipped   []domain.SkippedUser
	)
	var g errgroup.Group
	g.SetLimit(lookupLimit)
	for _, userID := range userIDs {
		userID := userID
		t := totals[userID]
		g.Go(func() error {
			balance, err := s.ledger.AccountTokenBalance(ctx, t.address)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// one bad address must not abort the run
				zap.L().Warn("skipping user, balance lookup failed",
					zap.Int("userID", userID),
					zap.String("address", t.address),
					zap.Error(err),
				)
				skipped = append(skipped, domain.SkippedUser{
					UserID:         userID,
					StellarAddress: t.address,
					Reason:         err.Error(),
				})
				return nil
			}
			snapshots = append(snapshots, domain.Snapshot{
				UserID:          userID,
				DelegatedAmount: t.delegated,
				ActualBalance:   balance,
				CreatedAt:       snapshotDate,
			})
			return nil
		})
	}
	g.Wait()

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].UserID < snapshots[j].UserID })

	result := &domain.SnapshotResult{
		SnapshotDate: snapshotDate,
		Skipped:      skipped,
	}

	if len(snapshots) == 0 {
		zap.L().Info("no snapshots created")
		return result, nil
	}

	count, err := s.snapshotRepo.InsertBatch(ctx, snapshots)
	if err != nil {
		return nil, fmt.Errorf("can't insert snapshots: %w", err)
	}
	result.SnapshotCount = count
	zap.L().Info("snapshots created", zap.Int("count", count))

	rewardsCount, err := s.CalculateRewards(ctx, snapshots, snapshotDate)
	if err != nil {
		return nil, err
	}
	result.RewardsCount = rewardsCount

	return result, nil
}

// CalculateRewards derives one pending reward per snapshot from the daily
// rate (annual rate / 365). Rewards of the ledger's native 7-decimal
// precision; computed values of zero are dropped.
func (s *Service) CalculateRewards(ctx context.Context, snapshots []domain.Snapshot, snapshotDate time.Time) (int, error) {
	dailyRate := s.rewardRate.Div(daysPerYear)

	var rewards []domain.Reward
	for _, snapshot := range snapshots {
		amount := snapshot.DelegatedAmount.Mul(dailyRate).Round(7)
		if !amount.IsPositive() {
			continue
		}
		rewards = append(rewards, domain.Reward{
			UserID:    snapshot.UserID,
			Amount:    amount,
			Status:    domain.RewardPending,
			CreatedAt: snapshotDate,
		})
	}

	if len(rewards) == 0 {
		zap.L().Info("no rewards calculated")
		return 0, nil
	}

	count, err := s.rewardRepo.InsertBatch(ctx, rewards)
	if err != nil {
		return 0, fmt.Errorf("can't insert rewards: %w", err)
	}
	zap.L().Info("rewards calculated", zap.Int("count", count))
	return count, nil
}

type LatestInfo struct {
	LastSnapshot *time.Time
	NextSnapshot time.Time
	Interval     time.Duration
}

func (s *Service) LatestInfo(ctx context.Context) (*LatestInfo, error) {
	last, err := s.snapshotRepo.FindLatestDate(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	next := s.schedule.Next(now)
	return &LatestInfo{
		LastSnapshot: last,
		NextSnapshot: next,
		Interval:     s.schedule.Next(next).Sub(next),
	}, nil
}

// NextSnapshot returns the next scheduled run after the given time.
func (s *Service) NextSnapshot(from time.Time) time.Time {
	return s.schedule.Next(from)
}

type HistoryPage struct {
	Snapshots []domain.SnapshotEntry
	Total     int
}

// History returns a page of past snapshots, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) (*HistoryPage, error) {
	snapshots, err := s.snapshotRepo.FindHistory(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch snapshot history", zap.Error(err))
		return nil, err
	}

	total, err := s.snapshotRepo.CountAll(ctx)
	if err != nil {
		zap.L().Error("failed to count snapshots", zap.Error(err))
		return nil, err
	}

	return &HistoryPage{Snapshots: snapshots, Total: total}, nil
}
