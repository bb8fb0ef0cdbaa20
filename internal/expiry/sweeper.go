package expiry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

// Sweeper periodically deactivates speed-boost upgrades whose expiry passed,
// so multipliers do not linger for users who never hit a lazy-read path. Lazy
// expiry on read remains authoritative; the sweeper is hygiene.

var sweepingUpgrades sync.Map

type UpgradeRepo interface {
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Upgrade, error)
	Deactivate(ctx context.Context, upgradeID string) error
}

type MiningRepo interface {
	SetMultiplier(ctx context.Context, userID string, multiplier int) error
}

type Service struct {
	txManager   pg.TXManager
	upgradeRepo UpgradeRepo
	miningRepo  MiningRepo
	limit       uint32
	workerPool  WorkerPoolI
	interval    time.Duration
}

func New(interval time.Duration, txManager pg.TXManager, upgradeRepo UpgradeRepo, miningRepo MiningRepo) *Service {
	return &Service{
		txManager:   txManager,
		upgradeRepo: upgradeRepo,
		miningRepo:  miningRepo,
		limit:       1000,
		workerPool:  NewWorkerPool(10),
		interval:    interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Upgrade expiry sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	upgrades, err := s.upgradeRepo.FindExpired(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired upgrades", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, upgrade := range upgrades {
		upgrade := upgrade

		if _, loaded := sweepingUpgrades.LoadOrStore(upgrade.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingUpgrades.Delete(upgrade.ID)
				return s.expireUpgrade(ctx, upgrade)
			})
			if err != nil {
				sweepingUpgrades.Delete(upgrade.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping upgrades", zap.Error(err))
	}
}

func (s *Service) expireUpgrade(ctx context.Context, upgrade domain.Upgrade) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.upgradeRepo.Deactivate(ctx, upgrade.ID); err != nil {
			return err
		}
		return s.miningRepo.SetMultiplier(ctx, upgrade.UserID, 1)
	})
	if err != nil {
		return err
	}

	zap.L().Info("Expired upgrade deactivated",
		zap.String("upgradeID", upgrade.ID),
		zap.String("userID", upgrade.UserID),
	)
	return nil
}
