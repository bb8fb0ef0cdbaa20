package dto

import "time"

type MineResponseDTO struct {
	TotalCoins  float64 `json:"totalCoins" example:"42"`
	CoinsEarned float64 `json:"coinsEarned" example:"2"`
}

type MiningStateDTO struct {
	TotalCoins      float64    `json:"totalCoins" example:"42"`
	LastMineTime    *time.Time `json:"lastMineTime,omitempty"`
	MiningStreak    int        `json:"miningStreak" example:"7"`
	SpeedMultiplier int        `json:"speedMultiplier" example:"2"`
}

type CooldownResponseDTO struct {
	Message     string `json:"message" example:"Mining cooldown active"`
	RemainingMs int64  `json:"remainingMs" example:"3600000"`
}
