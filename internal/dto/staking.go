package dto

import "time"

type BalanceResponseDTO struct {
	StellarAddress string `json:"stellar_address"`
	WalletBalance  string `json:"wallet_balance" example:"150.5000000"`
	Delegated      string `json:"delegated" example:"800.0000000"`
	TokenCode      string `json:"token_code" example:"KALE"`
}

type DelegateRequestDTO struct {
	StellarAddress string `json:"stellar_address" validate:"required"`
	Amount         string `json:"amount" validate:"required" example:"500"`
	TxHash         string `json:"tx_hash" validate:"required"`
}

type DelegationDTO struct {
	ID        int       `json:"id"`
	Amount    string    `json:"amount" example:"500.0000000"`
	TxHash    string    `json:"tx_hash"`
	Status    string    `json:"status" example:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type DelegateResponseDTO struct {
	Delegation DelegationDTO `json:"delegation"`
	Message    string        `json:"message"`
}

type UndelegateRequestDTO struct {
	StellarAddress string `json:"stellar_address" validate:"required"`
}

type UndelegateResponseDTO struct {
	Amount  string `json:"amount" example:"800.0000000"`
	Message string `json:"message"`
}

type StatusResponseDTO struct {
	StellarAddress string          `json:"stellar_address"`
	TotalDelegated string          `json:"total_delegated" example:"800.0000000"`
	Delegations    []DelegationDTO `json:"delegations"`
	LastSnapshot   *SnapshotDTO    `json:"last_snapshot,omitempty"`
	NextSnapshot   time.Time       `json:"next_snapshot"`
}
