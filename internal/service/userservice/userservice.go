package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, displayName string, profilePicture *string) (*domain.User, error)
}

type MiningRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.MiningAccount, error)
	Create(ctx context.Context, userID string) (*domain.MiningAccount, error)
}

type WalletRepo interface {
	Create(ctx context.Context, userID string) (*domain.Wallet, error)
}

type ActiveUpgradeProvider interface {
	GetActive(ctx context.Context, userID string) (*domain.Upgrade, error)
}

type Service struct {
	txManager  pg.TXManager
	userRepo   UserRepo
	miningRepo MiningRepo
	walletRepo WalletRepo
	upgrades   ActiveUpgradeProvider
}

func New(txManager pg.TXManager, userRepo UserRepo, miningRepo MiningRepo, walletRepo WalletRepo, upgrades ActiveUpgradeProvider) *Service {
	return &Service{
		txManager:  txManager,
		userRepo:   userRepo,
		miningRepo: miningRepo,
		walletRepo: walletRepo,
		upgrades:   upgrades,
	}
}

var ErrUserNotFound = errors.New("user not found")

type SyncInput struct {
	UID            string
	Email          string
	DisplayName    string
	ProfilePicture *string
	Provider       string
	Username       *string
}

type Profile struct {
	User          *domain.User
	MiningAccount *domain.MiningAccount
	ActiveUpgrade *domain.Upgrade
}

// Sync upserts the verified identity on sign-in. First sight creates the user
// together with its mining account and wallet; afterwards only profile fields
// are refreshed. The created flag lets the caller run one-time signup
// processing exactly once.
func (s *Service) Sync(ctx context.Context, input SyncInput) (*domain.User, bool, error) {
	existing, err := s.userRepo.GetByID(ctx, input.UID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, false, err
	}
	if existing != nil {
		updated, err := s.userRepo.UpdateProfile(ctx, input.UID, input.DisplayName, input.ProfilePicture)
		if err != nil {
			zap.L().Error("can't update user: ", zap.Error(err))
			return nil, false, err
		}
		return updated, false, nil
	}

	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, &domain.User{
			ID:             input.UID,
			Email:          input.Email,
			DisplayName:    input.DisplayName,
			ProfilePicture: input.ProfilePicture,
			Provider:       input.Provider,
			Username:       input.Username,
		})
		if err != nil {
			return err
		}
		if _, err := s.miningRepo.Create(ctx, created.ID); err != nil {
			return err
		}
		if _, err := s.walletRepo.Create(ctx, created.ID); err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, false, err
	}

	zap.L().Info("user successfully registered", zap.String("uid", user.ID))
	return user, true, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	account, err := s.miningRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get mining account: ", zap.Error(err))
		return nil, err
	}

	active, err := s.upgrades.GetActive(ctx, userID)
	if err != nil {
		zap.L().Error("can't get active upgrade: ", zap.Error(err))
		return nil, err
	}

	return &Profile{
		User:          user,
		MiningAccount: account,
		ActiveUpgrade: active,
	}, nil
}
