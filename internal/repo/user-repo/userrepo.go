package userrepo

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

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
        SELECT id, email, display_name, profile_picture, provider, username, referred_by, total_referral_rewards, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.ProfilePicture, &user.Provider,
		&user.Username, &user.ReferredBy, &user.TotalReferralRewards, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT id, email, display_name, profile_picture, provider, username, referred_by, total_referral_rewards, created_at, updated_at
        FROM users
        WHERE username = $1
    `
	row := r.db.QueryRow(ctx, query, username)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.ProfilePicture, &user.Provider,
		&user.Username, &user.ReferredBy, &user.TotalReferralRewards, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, display_name, profile_picture, provider, username)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.ID, user.Email, user.DisplayName, user.ProfilePicture,
		user.Provider, user.Username).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id, displayName string, profilePicture *string) (*domain.User, error) {
	query := `
		UPDATE users
		SET display_name = $1, profile_picture = $2, updated_at = now()
		WHERE id = $3
		RETURNING id, email, display_name, profile_picture, provider, username, referred_by, total_referral_rewards, created_at, updated_at
	`
	row := r.db.QueryRow(ctx, query, displayName, profilePicture, id)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.ProfilePicture, &user.Provider,
		&user.Username, &user.ReferredBy, &user.TotalReferralRewards, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update user profile", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) SetReferredBy(ctx context.Context, id, referrerUsername string) error {
	query := `
		UPDATE users
		SET referred_by = $1, updated_at = now()
		WHERE id = $2 AND referred_by IS NULL
	`
	_, err := r.db.Exec(ctx, query, referrerUsername, id)
	if err != nil {
		zap.L().Error("can't set referred_by", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddReferralRewards(ctx context.Context, id string, amount float64) error {
	query := `
		UPDATE users
		SET total_referral_rewards = total_referral_rewards + $1, updated_at = now()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("can't add referral rewards", zap.Error(err))
		return err
	}
	return nil
}
