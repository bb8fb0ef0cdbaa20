package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/pg"
)

func NewMock(t *testing.T) (*Service, *pg.MockTXManager, *MockUserRepo, *MockMiningRepo, *MockWalletRepo, *MockActiveUpgradeProvider) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	miningRepo := NewMockMiningRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	upgrades := NewMockActiveUpgradeProvider(ctrl)
	service := New(txManager, userRepo, miningRepo, walletRepo, upgrades)
	defer ctrl.Finish()
	return service, txManager, userRepo, miningRepo, walletRepo, upgrades
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestSync(t *testing.T) {
	service, txManager, userRepo, miningRepo, walletRepo, _ := NewMock(t)
	picture := "https://cdn.example.com/p.png"
	input := SyncInput{
		UID:            "uid-1",
		Email:          "alice@example.com",
		DisplayName:    "Alice",
		ProfilePicture: &picture,
		Provider:       "google",
	}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedCreated bool
		expectedError   error
	}{
		{
			name: "First sign-in creates user with mining account and wallet",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(nil, nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "uid-1", user.ID)
						assert.Equal(t, "alice@example.com", user.Email)
						assert.Equal(t, "google", user.Provider)
						return user, nil
					})
				miningRepo.EXPECT().Create(gomock.Any(), "uid-1").Return(&domain.MiningAccount{UserID: "uid-1"}, nil)
				walletRepo.EXPECT().Create(gomock.Any(), "uid-1").Return(&domain.Wallet{UserID: "uid-1"}, nil)
			},
			expectedCreated: true,
		},
		{
			name: "Returning user only refreshes profile fields",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(&domain.User{ID: "uid-1"}, nil)
				userRepo.EXPECT().UpdateProfile(gomock.Any(), "uid-1", "Alice", &picture).Return(&domain.User{
					ID:          "uid-1",
					DisplayName: "Alice",
				}, nil)
			},
			expectedCreated: false,
		},
		{
			name: "Error looking up user",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error creating wallet rolls the signup back",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(nil, nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
				miningRepo.EXPECT().Create(gomock.Any(), "uid-1").Return(&domain.MiningAccount{UserID: "uid-1"}, nil)
				walletRepo.EXPECT().Create(gomock.Any(), "uid-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, created, err := service.Sync(context.Background(), input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
				assert.False(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.expectedCreated, created)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	service, _, userRepo, miningRepo, _, upgrades := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedProfile *Profile
		expectedError   error
	}{
		{
			name: "Full profile with active upgrade",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(&domain.User{ID: "uid-1"}, nil)
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID:     "uid-1",
					TotalCoins: 7.0,
				}, nil)
				upgrades.EXPECT().GetActive(gomock.Any(), "uid-1").Return(&domain.Upgrade{
					ID:        "up-1",
					PackageID: "silver",
				}, nil)
			},
			expectedProfile: &Profile{
				User:          &domain.User{ID: "uid-1"},
				MiningAccount: &domain.MiningAccount{UserID: "uid-1", TotalCoins: 7.0},
				ActiveUpgrade: &domain.Upgrade{ID: "up-1", PackageID: "silver"},
			},
		},
		{
			name: "Profile without upgrade",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(&domain.User{ID: "uid-1"}, nil)
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{UserID: "uid-1"}, nil)
				upgrades.EXPECT().GetActive(gomock.Any(), "uid-1").Return(nil, nil)
			},
			expectedProfile: &Profile{
				User:          &domain.User{ID: "uid-1"},
				MiningAccount: &domain.MiningAccount{UserID: "uid-1"},
			},
		},
		{
			name: "User not found",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Error fetching mining account",
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), "uid-1").Return(&domain.User{ID: "uid-1"}, nil)
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			profile, err := service.GetProfile(context.Background(), "uid-1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProfile, profile)
			}
		})
	}
}
