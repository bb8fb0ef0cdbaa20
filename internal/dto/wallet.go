package dto

type WalletResponseDTO struct {
	PallBalance     float64 `json:"pallBalance" example:"42.1"`
	UsdtCommissions int64   `json:"usdtCommissions" example:"15"`
}
