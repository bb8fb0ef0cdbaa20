package commissionrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error) {
	query := `
        INSERT INTO commissions (id, beneficiary_id, buyer_id, package_type, package_value_cents, amount_cents, tier, is_processed, payment_ref, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query, commission.ID, commission.BeneficiaryID, commission.BuyerID,
		commission.PackageType, commission.PackageValueCents, commission.AmountCents, commission.Tier,
		commission.IsProcessed, commission.PaymentRef, commission.CreatedAt)
	if err != nil {
		zap.L().Error("can't save commission", zap.Error(err))
		return nil, err
	}
	return commission, nil
}

func (r *Repository) ListByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]domain.Commission, error) {
	query := `
        SELECT id, beneficiary_id, buyer_id, package_type, package_value_cents, amount_cents, tier, is_processed, payment_ref, created_at
        FROM commissions
        WHERE beneficiary_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, beneficiaryID)
	if err != nil {
		zap.L().Error("can't list commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		var commission domain.Commission
		err := rows.Scan(&commission.ID, &commission.BeneficiaryID, &commission.BuyerID, &commission.PackageType,
			&commission.PackageValueCents, &commission.AmountCents, &commission.Tier, &commission.IsProcessed,
			&commission.PaymentRef, &commission.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, commission)
	}
	return commissions, nil
}
