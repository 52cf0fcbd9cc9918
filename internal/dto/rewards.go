package dto

import "time"

type RewardDTO struct {
	ID        int       `json:"id"`
	Amount    string    `json:"amount" example:"0.1369863"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at"`
}

type PendingRewardsResponseDTO struct {
	StellarAddress string      `json:"stellar_address"`
	Rewards        []RewardDTO `json:"rewards"`
	Total          string      `json:"total" example:"0.4109589"`
	TokenCode      string      `json:"token_code" example:"KALE"`
	ValueBRL       string      `json:"value_brl" example:"1.03"`
	ValueUSD       string      `json:"value_usd" example:"0.21"`
}

type ClaimRequestDTO struct {
	StellarAddress string `json:"stellar_address" validate:"required"`
}

type ClaimResponseDTO struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message"`
	Amount    string    `json:"amount" example:"0.4109589"`
	TokenCode string    `json:"token_code" example:"KALE"`
	TxHash    string    `json:"tx_hash" example:"claim_7d3f2f0a-7a83-4b06-94c1-8d9f9a1f8f1e"`
	Count     int       `json:"count" example:"3"`
	ClaimedAt time.Time `json:"claimed_at"`
}
