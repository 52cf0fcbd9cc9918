package dto

import "time"

type SkippedUserDTO struct {
	UserID         int    `json:"user_id"`
	StellarAddress string `json:"stellar_address"`
	Reason         string `json:"reason"`
}

type ExecuteSnapshotResponseDTO struct {
	Success       bool             `json:"success" example:"true"`
	Message       string           `json:"message"`
	SnapshotCount int              `json:"snapshot_count" example:"42"`
	RewardsCount  int              `json:"rewards_count" example:"42"`
	SnapshotDate  time.Time        `json:"snapshot_date"`
	Skipped       []SkippedUserDTO `json:"skipped,omitempty"`
}

type SnapshotDTO struct {
	ID              int       `json:"id"`
	StellarAddress  string    `json:"stellar_address,omitempty"`
	DelegatedAmount string    `json:"delegated_amount" example:"800.0000000"`
	ActualBalance   string    `json:"actual_balance" example:"790.0000000"`
	CreatedAt       time.Time `json:"created_at"`
}

type SnapshotHistoryResponseDTO struct {
	Snapshots  []SnapshotDTO `json:"snapshots"`
	Limit      int           `json:"limit" example:"20"`
	Offset     int           `json:"offset" example:"0"`
	TotalItems int           `json:"total_items" example:"120"`
	TotalPages int           `json:"total_pages" example:"6"`
	HasMore    bool          `json:"has_more" example:"true"`
}

type LatestSnapshotResponseDTO struct {
	LastSnapshot     *time.Time `json:"last_snapshot,omitempty"`
	NextSnapshot     time.Time  `json:"next_snapshot"`
	SnapshotInterval string     `json:"snapshot_interval" example:"24h0m0s"`
}
