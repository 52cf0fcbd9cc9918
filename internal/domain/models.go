package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DelegationActive   = "active"
	DelegationInactive = "inactive"

	RewardPending = "pending"
	RewardClaimed = "claimed"

	HistoryRewardClaim = "reward_claim"
	HistoryDelegate    = "delegate"
	HistoryUndelegate  = "undelegate"
)

type User struct {
	ID             int       `db:"id"`
	StellarAddress string    `db:"stellar_address"`
	CreatedAt      time.Time `db:"created_at"`
}

type Delegation struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	TxHash    string          `db:"tx_hash"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

// ActiveDelegation is a delegation row joined with its owner's address,
// as fetched for a snapshot run.
type ActiveDelegation struct {
	UserID         int
	StellarAddress string
	Amount         decimal.Decimal
}

type Snapshot struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	DelegatedAmount decimal.Decimal `db:"delegated_amount"`
	ActualBalance   decimal.Decimal `db:"actual_balance"`
	CreatedAt       time.Time       `db:"created_at"`
}

// SnapshotEntry is a snapshot row joined with the owning address,
// served by the snapshot history endpoint.
type SnapshotEntry struct {
	Snapshot
	StellarAddress string
}

type Reward struct {
	ID         int             `db:"id"`
	UserID     int             `db:"user_id"`
	Amount     decimal.Decimal `db:"amount"`
	SnapshotID *int            `db:"snapshot_id"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	ClaimedAt  *time.Time      `db:"claimed_at"`
	TxHash     *string         `db:"tx_hash"`
}

type HistoryEntry struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Type      string          `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	TxHash    string          `db:"tx_hash"`
	CreatedAt time.Time       `db:"created_at"`
}

// SkippedUser records a user excluded from a snapshot run because the
// ledger balance lookup failed.
type SkippedUser struct {
	UserID         int    `json:"user_id"`
	StellarAddress string `json:"stellar_address"`
	Reason         string `json:"reason"`
}

type SnapshotResult struct {
	SnapshotCount int
	RewardsCount  int
	SnapshotDate  time.Time
	Skipped       []SkippedUser
}
