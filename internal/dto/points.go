package dto

import "time"

type PointsBalanceResponseDTO struct {
	PointsWallet            int     `json:"points_wallet" example:"60"`
	TotalPointsEarned       int     `json:"total_points_earned" example:"260"`
	VirtualReferralsCreated int     `json:"virtual_referrals_created" example:"2"`
	WalletCash              float64 `json:"wallet_cash" example:"125.5"`
}

type ConvertRequestDTO struct {
	Points int `json:"points" example:"50"`
}

type ConvertResponseDTO struct {
	Cash    float64 `json:"cash" example:"25"`
	Message string  `json:"message"`
}

type PointsTransactionResponseDTO struct {
	Type         string    `json:"type" example:"EARNED"`
	Points       int       `json:"points" example:"260"`
	CashAmount   float64   `json:"cash_amount,omitempty" example:"25"`
	BalanceAfter int       `json:"balance_after" example:"60"`
	Order        string    `json:"order,omitempty" example:"2377225624"`
	CreatedAt    time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type CapabilityResponseDTO struct {
	PointsWallet      int     `json:"points_wallet" example:"60"`
	VirtualTrees      int     `json:"virtual_trees" example:"0"`
	ConvertiblePoints int     `json:"convertible_points" example:"50"`
	ConvertibleCash   float64 `json:"convertible_cash" example:"25"`
}
