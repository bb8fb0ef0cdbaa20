package miningservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

const (
	// Cooldown is the minimum interval between successful mines per user.
	Cooldown = 24 * time.Hour
	// BaseReward is the coin award for a mine at multiplier 1.
	BaseReward = 1.0
)

type Repo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.MiningAccount, error)
	GetForUpdate(ctx context.Context, userID string) (*domain.MiningAccount, error)
	ApplyMine(ctx context.Context, userID string, coins float64, now time.Time) (*domain.MiningAccount, error)
}

type MultiplierProvider interface {
	CurrentMultiplier(ctx context.Context, userID string) (int, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, userID string) error
}

type Service struct {
	txManager pg.TXManager
	repo      Repo
	upgrades  MultiplierProvider
	wallet    Reconciler
}

func New(txManager pg.TXManager, repo Repo, upgrades MultiplierProvider, wallet Reconciler) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
		upgrades:  upgrades,
		wallet:    wallet,
	}
}

var ErrAccountNotFound = errors.New("mining account not found")

// CooldownError reports how long until the next mine is allowed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("mining cooldown active, %s remaining", e.Remaining)
}

type MineResult struct {
	TotalCoins  float64
	CoinsEarned float64
}

type State struct {
	TotalCoins      float64
	LastMineTime    *time.Time
	MiningStreak    int
	SpeedMultiplier int
}

// Mine claims the daily reward. The account row is locked for the duration of
// the transaction, so of N concurrent calls exactly one passes the cooldown
// check; the rest observe the new last_mine_time and fail.
func (s *Service) Mine(ctx context.Context, userID string) (*MineResult, error) {
	var result *MineResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		now := time.Now()
		if account.LastMineTime != nil {
			elapsed := now.Sub(*account.LastMineTime)
			if elapsed < Cooldown {
				return &CooldownError{Remaining: Cooldown - elapsed}
			}
		}

		multiplier, err := s.upgrades.CurrentMultiplier(ctx, userID)
		if err != nil {
			return err
		}

		coins := BaseReward * float64(multiplier)
		updated, err := s.repo.ApplyMine(ctx, userID, coins, now)
		if err != nil {
			return err
		}

		if err := s.wallet.Reconcile(ctx, userID); err != nil {
			return err
		}

		result = &MineResult{
			TotalCoins:  updated.TotalCoins,
			CoinsEarned: coins,
		}
		return nil
	})
	if err != nil {
		var cooldownErr *CooldownError
		if !errors.As(err, &cooldownErr) && !errors.Is(err, ErrAccountNotFound) {
			zap.L().Error("failed to mine", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("mine successful",
		zap.String("userID", userID),
		zap.Float64("coinsEarned", result.CoinsEarned),
		zap.Float64("totalCoins", result.TotalCoins),
	)
	return result, nil
}

func (s *Service) GetState(ctx context.Context, userID string) (*State, error) {
	multiplier, err := s.upgrades.CurrentMultiplier(ctx, userID)
	if err != nil {
		zap.L().Error("failed to resolve multiplier", zap.Error(err))
		return nil, err
	}

	account, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get mining account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return &State{
		TotalCoins:      account.TotalCoins,
		LastMineTime:    account.LastMineTime,
		MiningStreak:    account.MiningStreak,
		SpeedMultiplier: multiplier,
	}, nil
}
