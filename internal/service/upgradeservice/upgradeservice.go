package upgradeservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

type UpgradeRepo interface {
	GetActiveByUserID(ctx context.Context, userID string) (*domain.Upgrade, error)
	Create(ctx context.Context, upgrade *domain.Upgrade) (*domain.Upgrade, error)
	Deactivate(ctx context.Context, upgradeID string) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Upgrade, error)
}

type MiningRepo interface {
	SetMultiplier(ctx context.Context, userID string, multiplier int) error
}

// Package is one purchasable speed-boost tier. DurationMonths of zero means
// the package never expires.
type Package struct {
	ID             string
	Multiplier     int
	PriceCents     int64
	DurationMonths int
}

// Packages is the static package table. One purchase per user at a time; a
// new purchase is only accepted once the previous package expired.
var Packages = map[string]Package{
	"bronze": {ID: "bronze", Multiplier: 2, PriceCents: 300, DurationMonths: 6},
	"silver": {ID: "silver", Multiplier: 3, PriceCents: 1000, DurationMonths: 12},
	"gold":   {ID: "gold", Multiplier: 5, PriceCents: 2500, DurationMonths: 0},
}

type Service struct {
	txManager   pg.TXManager
	upgradeRepo UpgradeRepo
	miningRepo  MiningRepo
}

func New(txManager pg.TXManager, upgradeRepo UpgradeRepo, miningRepo MiningRepo) *Service {
	return &Service{
		txManager:   txManager,
		upgradeRepo: upgradeRepo,
		miningRepo:  miningRepo,
	}
}

var (
	ErrUnknownPackage       = errors.New("unknown package")
	ErrUpgradeAlreadyActive = errors.New("an active upgrade already exists")
)

func (s *Service) Purchase(ctx context.Context, userID, packageID, paymentRef string) (*domain.Upgrade, error) {
	pkg, ok := Packages[packageID]
	if !ok {
		return nil, ErrUnknownPackage
	}

	now := time.Now()
	var created *domain.Upgrade
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		active, err := s.upgradeRepo.GetActiveByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if active != nil {
			if !expired(active, now) {
				return ErrUpgradeAlreadyActive
			}
			if err := s.expire(ctx, active); err != nil {
				return err
			}
		}

		upgrade := &domain.Upgrade{
			ID:              uuid.NewString(),
			UserID:          userID,
			PackageID:       pkg.ID,
			SpeedMultiplier: pkg.Multiplier,
			PriceCents:      pkg.PriceCents,
			PurchasedAt:     now,
			ExpiresAt:       expiryFor(pkg, now),
			PaymentRef:      paymentRef,
		}
		if _, err := s.upgradeRepo.Create(ctx, upgrade); err != nil {
			return err
		}
		if err := s.miningRepo.SetMultiplier(ctx, userID, pkg.Multiplier); err != nil {
			return err
		}
		created = upgrade
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUpgradeAlreadyActive) {
			zap.L().Error("failed to purchase upgrade", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("upgrade purchased",
		zap.String("userID", userID),
		zap.String("package", pkg.ID),
		zap.Int("multiplier", pkg.Multiplier),
	)
	return created, nil
}

// CurrentMultiplier applies lazy expiry: a past-due active upgrade is
// deactivated on read and the account multiplier falls back to 1.
func (s *Service) CurrentMultiplier(ctx context.Context, userID string) (int, error) {
	active, err := s.upgradeRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if active == nil {
		return 1, nil
	}
	if expired(active, time.Now()) {
		if err := s.expire(ctx, active); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return active.SpeedMultiplier, nil
}

func (s *Service) GetHistory(ctx context.Context, userID string) ([]domain.Upgrade, error) {
	upgrades, err := s.upgradeRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch upgrades", zap.Error(err))
		return nil, err
	}
	return upgrades, nil
}

func (s *Service) GetActive(ctx context.Context, userID string) (*domain.Upgrade, error) {
	active, err := s.upgradeRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil && expired(active, time.Now()) {
		if err := s.expire(ctx, active); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return active, nil
}

func (s *Service) expire(ctx context.Context, upgrade *domain.Upgrade) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.upgradeRepo.Deactivate(ctx, upgrade.ID); err != nil {
			return err
		}
		return s.miningRepo.SetMultiplier(ctx, upgrade.UserID, 1)
	})
	if err != nil {
		return err
	}
	zap.L().Info("upgrade expired", zap.String("upgradeID", upgrade.ID), zap.String("userID", upgrade.UserID))
	return nil
}

func expired(upgrade *domain.Upgrade, now time.Time) bool {
	return upgrade.ExpiresAt != nil && !upgrade.ExpiresAt.After(now)
}

func expiryFor(pkg Package, purchasedAt time.Time) *time.Time {
	if pkg.DurationMonths == 0 {
		return nil
	}
	expiry := purchasedAt.Add(time.Duration(pkg.DurationMonths) * 30 * 24 * time.Hour)
	return &expiry
}
