package walletrepo

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

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
        SELECT user_id, pall_balance, usdt_commissions
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.UserID, &wallet.PallBalance, &wallet.UsdtCommissions)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, pall_balance, usdt_commissions)
        VALUES ($1, 0, 0)
        RETURNING user_id, pall_balance, usdt_commissions
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.UserID, &wallet.PallBalance, &wallet.UsdtCommissions)
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) SetPallBalance(ctx context.Context, userID string, balance float64) error {
	query := `
        UPDATE wallets
        SET pall_balance = $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("can't set pall balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddCommissions(ctx context.Context, userID string, amountCents int64) error {
	query := `
        UPDATE wallets
        SET usdt_commissions = usdt_commissions + $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, amountCents, userID)
	if err != nil {
		zap.L().Error("can't add commissions", zap.Error(err))
		return err
	}
	return nil
}
