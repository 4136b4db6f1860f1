package dto

import "time"

type OrderCompletedRequestDTO struct {
	Order  string  `json:"order" example:"2377225624"`
	UserID int     `json:"user_id" example:"42"`
	Amount float64 `json:"amount" example:"1000"`
}

type OrderCompletedResponseDTO struct {
	Order            string  `json:"order" example:"2377225624"`
	Status           string  `json:"status" example:"COMPLETED"`
	DirectCommission float64 `json:"direct_commission" example:"30"`
	TreeCommission   float64 `json:"tree_commission" example:"29.06"`
	TrustFund        float64 `json:"trust_fund" example:"20.94"`
	DevelopmentFund  float64 `json:"development_fund" example:"20"`
	PointsAwarded    int     `json:"points_awarded" example:"1000"`
}

type EarningResponseDTO struct {
	Order     string    `json:"order" example:"2377225624"`
	Kind      string    `json:"kind" example:"tree"`
	Level     int       `json:"level,omitempty" example:"2"`
	Amount    float64   `json:"amount" example:"7.5"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
