package dto

import "time"

type SyncRequestDTO struct {
	UID            string  `json:"uid" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	DisplayName    string  `json:"displayName" validate:"required"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Provider       string  `json:"provider" example:"google"`
	Username       *string `json:"username,omitempty" example:"satoshi"`
	ReferralCode   string  `json:"referralCode,omitempty" example:"vitalik"`
}

type UserDTO struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	DisplayName          string    `json:"displayName"`
	ProfilePicture       *string   `json:"profilePicture,omitempty"`
	Provider             string    `json:"provider"`
	Username             *string   `json:"username,omitempty"`
	ReferredBy           *string   `json:"referredBy,omitempty"`
	TotalReferralRewards float64   `json:"totalReferralRewards"`
	CreatedAt            time.Time `json:"createdAt"`
}

type SyncResponseDTO struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

type ProfileResponseDTO struct {
	User          UserDTO         `json:"user"`
	MiningData    *MiningStateDTO `json:"miningData,omitempty"`
	ActiveUpgrade *UpgradeDTO     `json:"activeUpgrade,omitempty"`
}
