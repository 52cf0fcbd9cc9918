package snapshotservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
)

const (
	addressA = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"
	addressB = "GADQOBYHA4DQOBYHA4DQOBYHA4DQOBYHA4DQOBYHA4DQOBYHA4DQOZPI"
)

func NewMock(t *testing.T) (*Service, *MockDelegationRepo, *MockSnapshotRepo, *MockRewardRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	delegationRepo := NewMockDelegationRepo(ctrl)
	snapshotRepo := NewMockSnapshotRepo(ctrl)
	rewardRepo := NewMockRewardRepo(ctrl)
	ledger := NewMockLedger(ctrl)

	cfg := &config.Config{RewardRate: 0.05, SnapshotCron: "0 0 * * *"}
	service, err := New(cfg, delegationRepo, snapshotRepo, rewardRepo, ledger)
	require.NoError(t, err)

	return service, delegationRepo, snapshotRepo, rewardRepo, ledger
}

func TestNewInvalidCron(t *testing.T) {
	cfg := &config.Config{RewardRate: 0.05, SnapshotCron: "not a cron"}
	_, err := New(cfg, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestTakeSnapshot(t *testing.T) {
	t.Run("no active delegations", func(t *testing.T) {
		service, delegationRepo, _, _, _ := NewMock(t)
		delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).Return(nil, nil)

		result, err := service.TakeSnapshot(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, result.SnapshotCount)
		assert.Equal(t, 0, result.RewardsCount)
		assert.Empty(t, result.Skipped)
	})

	t.Run("delegation query error aborts the run", func(t *testing.T) {
		service, delegationRepo, _, _, _ := NewMock(t)
		delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.TakeSnapshot(context.Background())

		assert.Error(t, err)
	})

	t.Run("multiple delegations of one user are aggregated", func(t *testing.T) {
		service, delegationRepo, snapshotRepo, rewardRepo, ledger := NewMock(t)

		delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).Return([]domain.ActiveDelegation{
			{UserID: 1, StellarAddress: addressA, Amount: decimal.RequireFromString("500")},
			{UserID: 1, StellarAddress: addressA, Amount: decimal.RequireFromString("300")},
		}, nil)
		ledger.EXPECT().AccountTokenBalance(gomock.Any(), addressA).Return(decimal.RequireFromString("790"), nil)

		var inserted []domain.Snapshot
		snapshotRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshots []domain.Snapshot) (int, error) {
				inserted = snapshots
				return len(snapshots), nil
			})

		var rewards []domain.Reward
		rewardRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rs []domain.Reward) (int, error) {
				rewards = rs
				return len(rs), nil
			})

		result, err := service.TakeSnapshot(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.SnapshotCount)
		assert.Equal(t, 1, result.RewardsCount)

		assert.Len(t, inserted, 1)
		assert.Equal(t, 1, inserted[0].UserID)
		assert.Equal(t, "800", inserted[0].DelegatedAmount.String())
		assert.Equal(t, "790", inserted[0].ActualBalance.String())
		assert.Equal(t, result.SnapshotDate, inserted[0].CreatedAt)

		assert.Len(t, rewards, 1)
		assert.Equal(t, "0.1095890", rewards[0].Amount.StringFixed(7))
	})

	t.Run("failed balance lookup skips only that user", func(t *testing.T) {
		service, delegationRepo, snapshotRepo, rewardRepo, ledger := NewMock(t)

		delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).Return([]domain.ActiveDelegation{
			{UserID: 1, StellarAddress: addressA, Amount: decimal.RequireFromString("1000")},
			{UserID: 2, StellarAddress: addressB, Amount: decimal.RequireFromString("200")},
		}, nil)
		ledger.EXPECT().AccountTokenBalance(gomock.Any(), addressA).Return(decimal.RequireFromString("1000"), nil)
		ledger.EXPECT().AccountTokenBalance(gomock.Any(), addressB).Return(decimal.Zero, errors.New("account not found"))

		var inserted []domain.Snapshot
		snapshotRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshots []domain.Snapshot) (int, error) {
				inserted = snapshots
				return len(snapshots), nil
			})
		rewardRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(1, nil)

		result, err := service.TakeSnapshot(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.SnapshotCount)
		assert.Len(t, inserted, 1)
		assert.Equal(t, 1, inserted[0].UserID)

		assert.Len(t, result.Skipped, 1)
		assert.Equal(t, 2, result.Skipped[0].UserID)
		assert.Equal(t, addressB, result.Skipped[0].StellarAddress)
		assert.Equal(t, "account not found", result.Skipped[0].Reason)
	})

	t.Run("every user skipped means no insert", func(t *testing.T) {
		service, delegationRepo, _, _, ledger := NewMock(t)

		delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).Return([]domain.ActiveDelegation{
			{UserID: 1, StellarAddress: addressA, Amount: decimal.RequireFromString("1000")},
		}, nil)
		ledger.EXPECT().AccountTokenBalance(gomock.Any(), addressA).Return(decimal.Zero, errors.New("timeout"))

		result, err := service.TakeSnapshot(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, result.SnapshotCount)
		assert.Len(t, result.Skipped, 1)
	})

	t.Run("insert error fails the run", func(t *testing.T) {
		service, delegationRepo, snapshotRepo, _, ledger := NewMock(t)

		delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).Return([]domain.ActiveDelegation{
			{UserID: 1, StellarAddress: addressA, Amount: decimal.RequireFromString("1000")},
		}, nil)
		ledger.EXPECT().AccountTokenBalance(gomock.Any(), addressA).Return(decimal.RequireFromString("1000"), nil)
		snapshotRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))

		_, err := service.TakeSnapshot(context.Background())

		assert.Error(t, err)
	})
}

func TestTakeSnapshotRunInProgress(t *testing.T) {
	service, delegationRepo, _, _, _ := NewMock(t)

	started := make(chan struct{})
	release := make(chan struct{})
	delegationRepo.EXPECT().FindActiveWithAddresses(gomock.Any()).
		DoAndReturn(func(context.Context) ([]domain.ActiveDelegation, error) {
			close(started)
			<-release
			return nil, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.TakeSnapshot(context.Background())
		assert.NoError(t, err)
	}()

	<-started
	_, err := service.TakeSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	wg.Wait()
}

func TestCalculateRewards(t *testing.T) {
	snapshotDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("daily rate at seven decimals", func(t *testing.T) {
		service, _, _, rewardRepo, _ := NewMock(t)

		var rewards []domain.Reward
		rewardRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rs []domain.Reward) (int, error) {
				rewards = rs
				return len(rs), nil
			})

		count, err := service.CalculateRewards(context.Background(), []domain.Snapshot{
			{UserID: 1, DelegatedAmount: decimal.RequireFromString("1000"), CreatedAt: snapshotDate},
		}, snapshotDate)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Len(t, rewards, 1)
		assert.Equal(t, "0.1369863", rewards[0].Amount.StringFixed(7))
		assert.Equal(t, domain.RewardPending, rewards[0].Status)
		assert.Equal(t, snapshotDate, rewards[0].CreatedAt)
	})

	t.Run("zero delegated amount produces no reward", func(t *testing.T) {
		service, _, _, _, _ := NewMock(t)

		count, err := service.CalculateRewards(context.Background(), []domain.Snapshot{
			{UserID: 1, DelegatedAmount: decimal.Zero, CreatedAt: snapshotDate},
		}, snapshotDate)

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("zero rewards are filtered, positive kept", func(t *testing.T) {
		service, _, _, rewardRepo, _ := NewMock(t)

		var rewards []domain.Reward
		rewardRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rs []domain.Reward) (int, error) {
				rewards = rs
				return len(rs), nil
			})

		count, err := service.CalculateRewards(context.Background(), []domain.Snapshot{
			{UserID: 1, DelegatedAmount: decimal.Zero, CreatedAt: snapshotDate},
			{UserID: 2, DelegatedAmount: decimal.RequireFromString("100"), CreatedAt: snapshotDate},
		}, snapshotDate)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Len(t, rewards, 1)
		assert.Equal(t, 2, rewards[0].UserID)
		assert.Equal(t, "0.0136986", rewards[0].Amount.StringFixed(7))
	})

	t.Run("insert error propagates", func(t *testing.T) {
		service, _, _, rewardRepo, _ := NewMock(t)

		rewardRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))

		_, err := service.CalculateRewards(context.Background(), []domain.Snapshot{
			{UserID: 1, DelegatedAmount: decimal.RequireFromString("100"), CreatedAt: snapshotDate},
		}, snapshotDate)

		assert.Error(t, err)
	})
}

func TestHistory(t *testing.T) {
	t.Run("returns a page with total", func(t *testing.T) {
		service, _, snapshotRepo, _, _ := NewMock(t)

		entries := []domain.SnapshotEntry{
			{Snapshot: domain.Snapshot{ID: 2, UserID: 1, DelegatedAmount: decimal.RequireFromString("800")}, StellarAddress: addressA},
		}
		snapshotRepo.EXPECT().FindHistory(gomock.Any(), 20, 0).Return(entries, nil)
		snapshotRepo.EXPECT().CountAll(gomock.Any()).Return(42, nil)

		page, err := service.History(context.Background(), 20, 0)

		assert.NoError(t, err)
		assert.Equal(t, entries, page.Snapshots)
		assert.Equal(t, 42, page.Total)
	})

	t.Run("repo error", func(t *testing.T) {
		service, _, snapshotRepo, _, _ := NewMock(t)

		snapshotRepo.EXPECT().FindHistory(gomock.Any(), 20, 0).Return(nil, errors.New("db error"))

		_, err := service.History(context.Background(), 20, 0)

		assert.Error(t, err)
	})
}

func TestLatestInfo(t *testing.T) {
	t.Run("with existing snapshot", func(t *testing.T) {
		service, _, snapshotRepo, _, _ := NewMock(t)

		last := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		snapshotRepo.EXPECT().FindLatestDate(gomock.Any()).Return(&last, nil)

		info, err := service.LatestInfo(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, &last, info.LastSnapshot)
		assert.Equal(t, 24*time.Hour, info.Interval)
		assert.True(t, info.NextSnapshot.After(time.Now().UTC()))
	})

	t.Run("without snapshots", func(t *testing.T) {
		service, _, snapshotRepo, _, _ := NewMock(t)

		snapshotRepo.EXPECT().FindLatestDate(gomock.Any()).Return(nil, nil)

		info, err := service.LatestInfo(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, info.LastSnapshot)
	})

	t.Run("repo error", func(t *testing.T) {
		service, _, snapshotRepo, _, _ := NewMock(t)

		snapshotRepo.EXPECT().FindLatestDate(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.LatestInfo(context.Background())

		assert.Error(t, err)
	})
}
