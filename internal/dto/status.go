package dto

import "time"

type ServiceStatusDTO struct {
	Status     string    `json:"status" example:"ok"`
	TokenCode  string    `json:"token_code" example:"KALE"`
	RewardRate float64   `json:"reward_rate" example:"0.05"`
	Time       time.Time `json:"time"`
}
