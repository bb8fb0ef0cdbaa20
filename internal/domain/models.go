package domain

import "time"

type User struct {
	ID                   string    `db:"id"`
	Email                string    `db:"email"`
	DisplayName          string    `db:"display_name"`
	ProfilePicture       *string   `db:"profile_picture"`
	Provider             string    `db:"provider"`
	Username             *string   `db:"username"`
	ReferredBy           *string   `db:"referred_by"`
	TotalReferralRewards float64   `db:"total_referral_rewards"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type MiningAccount struct {
	UserID          string     `db:"user_id"`
	TotalCoins      float64    `db:"total_coins"`
	LastMineTime    *time.Time `db:"last_mine_time"`
	MiningStreak    int        `db:"mining_streak"`
	SpeedMultiplier int        `db:"speed_multiplier"`
	IsActive        bool       `db:"is_active"`
}

type Wallet struct {
	UserID          string  `db:"user_id"`
	PallBalance     float64 `db:"pall_balance"`
	UsdtCommissions int64   `db:"usdt_commissions"`
}

type Upgrade struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	PackageID       string     `db:"package_id"`
	SpeedMultiplier int        `db:"speed_multiplier"`
	PriceCents      int64      `db:"price_cents"`
	PurchasedAt     time.Time  `db:"purchased_at"`
	ExpiresAt       *time.Time `db:"expires_at"`
	PaymentRef      string     `db:"payment_ref"`
	IsActive        bool       `db:"is_active"`
}

type Referral struct {
	ID                string    `db:"id"`
	ReferrerID        string    `db:"referrer_id"`
	ReferrerUsername  string    `db:"referrer_username"`
	ReferredID        string    `db:"referred_id"`
	ReferredUsername  string    `db:"referred_username"`
	Tier              int       `db:"tier"`
	SignupRewardGiven bool      `db:"signup_reward_given"`
	CreatedAt         time.Time `db:"created_at"`
}

type Commission struct {
	ID                string    `db:"id"`
	BeneficiaryID     string    `db:"beneficiary_id"`
	BuyerID           string    `db:"buyer_id"`
	PackageType       string    `db:"package_type"`
	PackageValueCents int64     `db:"package_value_cents"`
	AmountCents       int64     `db:"amount_cents"`
	Tier              string    `db:"tier"`
	IsProcessed       bool      `db:"is_processed"`
	PaymentRef        string    `db:"payment_ref"`
	CreatedAt         time.Time `db:"created_at"`
}
