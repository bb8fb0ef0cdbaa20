package upgraderepo

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

func (r *Repository) GetActiveByUserID(ctx context.Context, userID string) (*domain.Upgrade, error) {
	query := `
        SELECT id, user_id, package_id, speed_multiplier, price_cents, purchased_at, expires_at, payment_ref, is_active
        FROM upgrades
        WHERE user_id = $1 AND is_active
    `
	row := r.db.QueryRow(ctx, query, userID)
	var upgrade domain.Upgrade
	err := row.Scan(&upgrade.ID, &upgrade.UserID, &upgrade.PackageID, &upgrade.SpeedMultiplier,
		&upgrade.PriceCents, &upgrade.PurchasedAt, &upgrade.ExpiresAt, &upgrade.PaymentRef, &upgrade.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get active upgrade", zap.Error(err))
		return nil, err
	}
	return &upgrade, nil
}

func (r *Repository) Create(ctx context.Context, upgrade *domain.Upgrade) (*domain.Upgrade, error) {
	query := `
        INSERT INTO upgrades (id, user_id, package_id, speed_multiplier, price_cents, purchased_at, expires_at, payment_ref, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
    `
	_, err := r.db.Exec(ctx, query, upgrade.ID, upgrade.UserID, upgrade.PackageID, upgrade.SpeedMultiplier,
		upgrade.PriceCents, upgrade.PurchasedAt, upgrade.ExpiresAt, upgrade.PaymentRef)
	if err != nil {
		zap.L().Error("can't save upgrade", zap.Error(err))
		return nil, err
	}
	upgrade.IsActive = true
	return upgrade, nil
}

func (r *Repository) Deactivate(ctx context.Context, upgradeID string) error {
	query := `
        UPDATE upgrades
        SET is_active = FALSE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, upgradeID)
	if err != nil {
		zap.L().Error("can't deactivate upgrade", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]domain.Upgrade, error) {
	query := `
        SELECT id, user_id, package_id, speed_multiplier, price_cents, purchased_at, expires_at, payment_ref, is_active
        FROM upgrades
        WHERE user_id = $1
        ORDER BY purchased_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list upgrades", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var upgrades []domain.Upgrade
	for rows.Next() {
		var upgrade domain.Upgrade
		err := rows.Scan(&upgrade.ID, &upgrade.UserID, &upgrade.PackageID, &upgrade.SpeedMultiplier,
			&upgrade.PriceCents, &upgrade.PurchasedAt, &upgrade.ExpiresAt, &upgrade.PaymentRef, &upgrade.IsActive)
		if err != nil {
			zap.L().Error("can't scan upgrade row", zap.Error(err))
			return nil, err
		}
		upgrades = append(upgrades, upgrade)
	}
	return upgrades, nil
}

func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Upgrade, error) {
	query := `
        SELECT id, user_id, package_id, speed_multiplier, price_cents, purchased_at, expires_at, payment_ref, is_active
        FROM upgrades
        WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1
        ORDER BY expires_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expired upgrades", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var upgrades []domain.Upgrade
	for rows.Next() {
		var upgrade domain.Upgrade
		err := rows.Scan(&upgrade.ID, &upgrade.UserID, &upgrade.PackageID, &upgrade.SpeedMultiplier,
			&upgrade.PriceCents, &upgrade.PurchasedAt, &upgrade.ExpiresAt, &upgrade.PaymentRef, &upgrade.IsActive)
		if err != nil {
			zap.L().Error("can't scan expired upgrade row", zap.Error(err))
			return nil, err
		}
		upgrades = append(upgrades, upgrade)
	}
	return upgrades, nil
}
