package commissionservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

const (
	// TierF1Rate applies to the buyer's direct referrer.
	TierF1Rate = 0.05
	// TierF2Rate applies one hop further up the referral chain.
	TierF2Rate = 0.025
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type CommissionRepo interface {
	Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error)
}

type WalletRepo interface {
	AddCommissions(ctx context.Context, userID string, amountCents int64) error
}

type Service struct {
	txManager      pg.TXManager
	userRepo       UserRepo
	commissionRepo CommissionRepo
	walletRepo     WalletRepo
}

func New(txManager pg.TXManager, userRepo UserRepo, commissionRepo CommissionRepo, walletRepo WalletRepo) *Service {
	return &Service{
		txManager:      txManager,
		userRepo:       userRepo,
		commissionRepo: commissionRepo,
		walletRepo:     walletRepo,
	}
}

var ErrBuyerNotFound = errors.New("buyer not found")

// CreditPurchase pays out referral commissions for a confirmed package
// purchase. A buyer without a referrer is a no-op, not an error: the returned
// slice is empty. Commission currency is USDT cents and never touches mining
// totals.
func (s *Service) CreditPurchase(ctx context.Context, buyerID, packageType string, valueUSD int, paymentRef string) ([]domain.Commission, error) {
	buyer, err := s.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		zap.L().Error("failed to get buyer", zap.Error(err))
		return nil, err
	}
	if buyer == nil {
		return nil, ErrBuyerNotFound
	}
	if buyer.ReferredBy == nil {
		return nil, nil
	}

	var created []domain.Commission
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		f1, err := s.userRepo.FindByUsername(ctx, *buyer.ReferredBy)
		if err != nil {
			return err
		}
		if f1 == nil {
			zap.L().Warn("referrer username dangling, skipping commission",
				zap.String("buyerID", buyerID),
				zap.String("referredBy", *buyer.ReferredBy),
			)
			return nil
		}

		c1, err := s.credit(ctx, f1.ID, buyer.ID, packageType, valueUSD, "f1", TierF1Rate, paymentRef)
		if err != nil {
			return err
		}
		created = append(created, *c1)

		if f1.ReferredBy == nil {
			return nil
		}
		f2, err := s.userRepo.FindByUsername(ctx, *f1.ReferredBy)
		if err != nil {
			return err
		}
		if f2 == nil || f2.ID == buyer.ID {
			return nil
		}

		c2, err := s.credit(ctx, f2.ID, buyer.ID, packageType, valueUSD, "f2", TierF2Rate, paymentRef)
		if err != nil {
			return err
		}
		created = append(created, *c2)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit commission", zap.Error(err))
		return nil, err
	}

	for _, c := range created {
		zap.L().Info("commission credited",
			zap.String("beneficiary", c.BeneficiaryID),
			zap.String("tier", c.Tier),
			zap.Int64("amountCents", c.AmountCents),
		)
	}
	return created, nil
}

func (s *Service) credit(ctx context.Context, beneficiaryID, buyerID, packageType string, valueUSD int, tier string, rate float64, paymentRef string) (*domain.Commission, error) {
	commission := &domain.Commission{
		ID:                uuid.NewString(),
		BeneficiaryID:     beneficiaryID,
		BuyerID:           buyerID,
		PackageType:       packageType,
		PackageValueCents: int64(valueUSD) * 100,
		AmountCents:       CommissionCents(valueUSD, rate),
		Tier:              tier,
		IsProcessed:       true,
		PaymentRef:        paymentRef,
		CreatedAt:         time.Now(),
	}
	if _, err := s.commissionRepo.Create(ctx, commission); err != nil {
		return nil, err
	}
	if err := s.walletRepo.AddCommissions(ctx, beneficiaryID, commission.AmountCents); err != nil {
		return nil, err
	}
	return commission, nil
}

// CommissionCents converts a whole-dollar package value to a rounded payout in
// cents at the given rate.
func CommissionCents(valueUSD int, rate float64) int64 {
	return int64(math.Round(float64(valueUSD) * 100 * rate))
}
