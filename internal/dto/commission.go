package dto

import "time"

type CreditCommissionRequestDTO struct {
	BuyerID         string `json:"buyerId" example:"uid-123"`
	PackageType     string `json:"packageType" example:"bronze"`
	PackageValueUsd int    `json:"packageValueUsd" example:"3"`
	PaymentRef      string `json:"paymentRef" example:"0xdeadbeef"`
}

type CommissionDTO struct {
	ID          string    `json:"id"`
	Beneficiary string    `json:"beneficiary"`
	Tier        string    `json:"tier" example:"f1"`
	AmountCents int64     `json:"amountCents" example:"15"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreditCommissionResponseDTO struct {
	Noop        bool            `json:"noop,omitempty"`
	Commissions []CommissionDTO `json:"commissions,omitempty"`
}
