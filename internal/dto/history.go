package dto

import "time"

type HistoryEntryDTO struct {
	ID        int       `json:"id"`
	Type      string    `json:"type" example:"reward_claim"`
	Amount    string    `json:"amount" example:"0.4109589"`
	TxHash    string    `json:"tx_hash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponseDTO struct {
	StellarAddress string            `json:"stellar_address"`
	Entries        []HistoryEntryDTO `json:"entries"`
	Limit          int               `json:"limit" example:"20"`
	Offset         int               `json:"offset" example:"0"`
	TotalItems     int               `json:"total_items" example:"34"`
	TotalPages     int               `json:"total_pages" example:"2"`
	HasMore        bool              `json:"has_more" example:"true"`
}
