package dto

import "time"

type RegisterReferralRequestDTO struct {
	ReferrerUsername string `json:"referrerUsername" example:"vitalik"`
	NewUserID        string `json:"newUserId" example:"uid-123"`
	NewUsername      string `json:"newUsername" example:"satoshi"`
}

type ReferralDTO struct {
	ID                string    `json:"id"`
	ReferrerUsername  string    `json:"referrerUsername"`
	ReferredUsername  string    `json:"referredUsername"`
	Tier              int       `json:"tier" example:"1"`
	SignupRewardGiven bool      `json:"signupRewardGiven"`
	CreatedAt         time.Time `json:"createdAt"`
}

type TeamResponseDTO struct {
	TotalReferrals       int             `json:"totalReferrals" example:"3"`
	TotalCommissionCents int64           `json:"totalCommissionCents" example:"45"`
	Referrals            []ReferralDTO   `json:"referrals"`
	Commissions          []CommissionDTO `json:"commissions"`
}
