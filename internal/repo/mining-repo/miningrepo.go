package miningrepo

import (
	"context"
	"time"

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

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.MiningAccount, error) {
	query := `
        SELECT user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active
        FROM mining_accounts
        WHERE user_id = $1
    `
	return r.scanAccount(r.db.QueryRow(ctx, query, userID))
}

// GetForUpdate locks the account row for the rest of the surrounding
// transaction. The lock serializes concurrent mines per user.
func (r *Repository) GetForUpdate(ctx context.Context, userID string) (*domain.MiningAccount, error) {
	query := `
        SELECT user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active
        FROM mining_accounts
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanAccount(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) Create(ctx context.Context, userID string) (*domain.MiningAccount, error) {
	query := `
        INSERT INTO mining_accounts (user_id, total_coins, mining_streak, speed_multiplier, is_active)
        VALUES ($1, 0, 0, 1, TRUE)
        RETURNING user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active
    `
	account, err := r.scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't create mining account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) ApplyMine(ctx context.Context, userID string, coins float64, now time.Time) (*domain.MiningAccount, error) {
	query := `
        UPDATE mining_accounts
        SET total_coins = total_coins + $1, last_mine_time = $2, mining_streak = mining_streak + 1
        WHERE user_id = $3
        RETURNING user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active
    `
	account, err := r.scanAccount(r.db.QueryRow(ctx, query, coins, now, userID))
	if err != nil {
		zap.L().Error("can't apply mine", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) AddCoins(ctx context.Context, userID string, coins float64) error {
	query := `
        UPDATE mining_accounts
        SET total_coins = total_coins + $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, coins, userID)
	if err != nil {
		zap.L().Error("can't add coins", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetMultiplier(ctx context.Context, userID string, multiplier int) error {
	query := `
        UPDATE mining_accounts
        SET speed_multiplier = $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, multiplier, userID)
	if err != nil {
		zap.L().Error("can't set speed multiplier", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanAccount(row pgx.Row) (*domain.MiningAccount, error) {
	var account domain.MiningAccount
	err := row.Scan(&account.UserID, &account.TotalCoins, &account.LastMineTime,
		&account.MiningStreak, &account.SpeedMultiplier, &account.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
