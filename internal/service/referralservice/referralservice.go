package referralservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

// SignupBonus is the one-time PALL grant a referrer receives when an invitee
// signs up with their code. It is folded into the referrer's mining total so
// wallet and mining stay one pool.
const SignupBonus = 0.1

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	SetReferredBy(ctx context.Context, id, referrerUsername string) error
	AddReferralRewards(ctx context.Context, id string, amount float64) error
}

type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error)
	FindByReferredID(ctx context.Context, referredID string) (*domain.Referral, error)
	ListByReferrerID(ctx context.Context, referrerID string) ([]domain.Referral, error)
}

type MiningRepo interface {
	AddCoins(ctx context.Context, userID string, coins float64) error
}

type CommissionRepo interface {
	ListByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]domain.Commission, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, userID string) error
}

type Service struct {
	txManager      pg.TXManager
	userRepo       UserRepo
	referralRepo   ReferralRepo
	miningRepo     MiningRepo
	commissionRepo CommissionRepo
	wallet         Reconciler
}

func New(txManager pg.TXManager, userRepo UserRepo, referralRepo ReferralRepo, miningRepo MiningRepo, commissionRepo CommissionRepo, wallet Reconciler) *Service {
	return &Service{
		txManager:      txManager,
		userRepo:       userRepo,
		referralRepo:   referralRepo,
		miningRepo:     miningRepo,
		commissionRepo: commissionRepo,
		wallet:         wallet,
	}
}

var (
	ErrReferrerNotFound = errors.New("referrer not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfReferral     = errors.New("self referral is not allowed")
)

type TeamReport struct {
	Referrals            []domain.Referral
	Commissions          []domain.Commission
	TotalReferrals       int
	TotalCommissionCents int64
}

// Register links a new user to the referrer behind the invitation code and
// grants the referrer the one-time signup bonus. A user that already carries a
// referred_by is returned as-is; the bonus is never granted twice.
func (s *Service) Register(ctx context.Context, referrerUsername, newUserID, newUsername string) (*domain.Referral, error) {
	var referral *domain.Referral
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		referrer, err := s.userRepo.FindByUsername(ctx, referrerUsername)
		if err != nil {
			return err
		}
		if referrer == nil {
			return ErrReferrerNotFound
		}
		if referrer.ID == newUserID {
			return ErrSelfReferral
		}

		newUser, err := s.userRepo.GetByID(ctx, newUserID)
		if err != nil {
			return err
		}
		if newUser == nil {
			return ErrUserNotFound
		}
		if newUser.ReferredBy != nil {
			existing, err := s.referralRepo.FindByReferredID(ctx, newUserID)
			if err != nil {
				return err
			}
			referral = existing
			return nil
		}

		if err := s.userRepo.SetReferredBy(ctx, newUserID, referrerUsername); err != nil {
			return err
		}

		created, err := s.referralRepo.Create(ctx, &domain.Referral{
			ID:                uuid.NewString(),
			ReferrerID:        referrer.ID,
			ReferrerUsername:  referrerUsername,
			ReferredID:        newUserID,
			ReferredUsername:  newUsername,
			Tier:              1,
			SignupRewardGiven: true,
			CreatedAt:         time.Now(),
		})
		if err != nil {
			return err
		}

		if err := s.userRepo.AddReferralRewards(ctx, referrer.ID, SignupBonus); err != nil {
			return err
		}
		if err := s.miningRepo.AddCoins(ctx, referrer.ID, SignupBonus); err != nil {
			return err
		}
		if err := s.wallet.Reconcile(ctx, referrer.ID); err != nil {
			return err
		}

		referral = created
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReferrerNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrSelfReferral):
		default:
			zap.L().Error("failed to register referral", zap.Error(err))
		}
		return nil, err
	}

	if referral != nil {
		zap.L().Info("referral registered",
			zap.String("referrer", referrerUsername),
			zap.String("referred", newUserID),
		)
	}
	return referral, nil
}

// GetTeam is a read-only projection of a user's referral and commission rows.
func (s *Service) GetTeam(ctx context.Context, userID string) (*TeamReport, error) {
	referrals, err := s.referralRepo.ListByReferrerID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	commissions, err := s.commissionRepo.ListByBeneficiaryID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch commissions", zap.Error(err))
		return nil, err
	}

	report := &TeamReport{
		Referrals:      referrals,
		Commissions:    commissions,
		TotalReferrals: len(referrals),
	}
	for _, c := range commissions {
		report.TotalCommissionCents += c.AmountCents
	}
	return report, nil
}
