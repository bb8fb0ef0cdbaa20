package dto

import "time"

type PurchaseUpgradeRequestDTO struct {
	PackageID  string `json:"packageId" example:"bronze"`
	PaymentRef string `json:"paymentRef" example:"0xdeadbeef"`
}

type UpgradeDTO struct {
	ID              string     `json:"id"`
	PackageID       string     `json:"packageId" example:"bronze"`
	SpeedMultiplier int        `json:"speedMultiplier" example:"2"`
	PriceCents      int64      `json:"priceCents" example:"300"`
	PurchasedAt     time.Time  `json:"purchasedAt"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	IsActive        bool       `json:"isActive"`
}
