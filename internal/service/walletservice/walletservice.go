package walletservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	Create(ctx context.Context, userID string) (*domain.Wallet, error)
	SetPallBalance(ctx context.Context, userID string, balance float64) error
	AddCommissions(ctx context.Context, userID string, amountCents int64) error
}

type MiningRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.MiningAccount, error)
}

type Service struct {
	walletRepo WalletRepo
	miningRepo MiningRepo
}

func New(walletRepo WalletRepo, miningRepo MiningRepo) *Service {
	return &Service{
		walletRepo: walletRepo,
		miningRepo: miningRepo,
	}
}

var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrAccountNotFound = errors.New("mining account not found")
)

func (s *Service) CreateWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Reconcile makes the denormalized spendable balance match the authoritative
// mining total. It is the only place the two are synchronized and must run
// inside the same transaction as any total_coins mutation.
func (s *Service) Reconcile(ctx context.Context, userID string) error {
	account, err := s.miningRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get mining account", zap.Error(err))
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return err
	}
	if wallet == nil {
		return ErrWalletNotFound
	}

	if wallet.PallBalance == account.TotalCoins {
		return nil
	}

	if err := s.walletRepo.SetPallBalance(ctx, userID, account.TotalCoins); err != nil {
		zap.L().Error("failed to update pall balance", zap.Error(err))
		return err
	}
	return nil
}

// GetWallet repairs a drifted balance before returning it, so readers always
// observe the reconciled value.
func (s *Service) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	account, err := s.miningRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get mining account", zap.Error(err))
		return nil, err
	}
	if account != nil && wallet.PallBalance != account.TotalCoins {
		if err := s.walletRepo.SetPallBalance(ctx, userID, account.TotalCoins); err != nil {
			zap.L().Error("failed to update pall balance", zap.Error(err))
			return nil, err
		}
		wallet.PallBalance = account.TotalCoins
	}

	return wallet, nil
}
