package referralrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	query := `
        INSERT INTO referrals (id, referrer_id, referrer_username, referred_id, referred_username, tier, signup_reward_given, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, referral.ID, referral.ReferrerID, referral.ReferrerUsername,
		referral.ReferredID, referral.ReferredUsername, referral.Tier, referral.SignupRewardGiven, referral.CreatedAt)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

func (r *Repository) FindByReferredID(ctx context.Context, referredID string) (*domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referrer_username, referred_id, referred_username, tier, signup_reward_given, created_at
        FROM referrals
        WHERE referred_id = $1 AND tier = 1
    `
	row := r.db.QueryRow(ctx, query, referredID)
	var referral domain.Referral
	err := row.Scan(&referral.ID, &referral.ReferrerID, &referral.ReferrerUsername, &referral.ReferredID,
		&referral.ReferredUsername, &referral.Tier, &referral.SignupRewardGiven, &referral.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find referral", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

func (r *Repository) ListByReferrerID(ctx context.Context, referrerID string) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referrer_username, referred_id, referred_username, tier, signup_reward_given, created_at
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't list referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var referral domain.Referral
		err := rows.Scan(&referral.ID, &referral.ReferrerID, &referral.ReferrerUsername, &referral.ReferredID,
			&referral.ReferredUsername, &referral.Tier, &referral.SignupRewardGiven, &referral.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, referral)
	}
	return referrals, nil
}
