package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pallnetwork/pallmine/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockMiningRepo) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	miningRepo := NewMockMiningRepo(ctrl)
	service := New(walletRepo, miningRepo)
	defer ctrl.Finish()
	return service, walletRepo, miningRepo
}

func TestCreateWallet(t *testing.T) {
	service, walletRepo, _ := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name: "Successful wallet creation",
			prepareMock: func() {
				walletRepo.EXPECT().Create(gomock.Any(), "uid-1").Return(&domain.Wallet{
					UserID: "uid-1",
				}, nil)
			},
			expectedWallet: &domain.Wallet{UserID: "uid-1"},
		},
		{
			name: "Failed wallet creation",
			prepareMock: func() {
				walletRepo.EXPECT().Create(gomock.Any(), "uid-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.CreateWallet(context.Background(), "uid-1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	service, walletRepo, miningRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Drifted balance is rewritten",
			prepareMock: func() {
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID:     "uid-1",
					TotalCoins: 42.0,
				}, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.Wallet{
					UserID:      "uid-1",
					PallBalance: 40.0,
				}, nil)
				walletRepo.EXPECT().SetPallBalance(gomock.Any(), "uid-1", 42.0).Return(nil)
			},
		},
		{
			name: "Matching balance is left alone",
			prepareMock: func() {
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID:     "uid-1",
					TotalCoins: 42.0,
				}, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.Wallet{
					UserID:      "uid-1",
					PallBalance: 42.0,
				}, nil)
			},
		},
		{
			name: "Mining account missing",
			prepareMock: func() {
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "Wallet missing",
			prepareMock: func() {
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID: "uid-1",
				}, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name: "Error updating balance",
			prepareMock: func() {
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID:     "uid-1",
					TotalCoins: 1.0,
				}, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.Wallet{
					UserID: "uid-1",
				}, nil)
				walletRepo.EXPECT().SetPallBalance(gomock.Any(), "uid-1", 1.0).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Reconcile(context.Background(), "uid-1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, miningRepo := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name: "Reconciled wallet is returned as-is",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.Wallet{
					UserID:          "uid-1",
					PallBalance:     42.0,
					UsdtCommissions: 150,
				}, nil)
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID:     "uid-1",
					TotalCoins: 42.0,
				}, nil)
			},
			expectedWallet: &domain.Wallet{
				UserID:          "uid-1",
				PallBalance:     42.0,
				UsdtCommissions: 150,
			},
		},
		{
			name: "Drifted wallet is repaired before returning",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.Wallet{
					UserID:      "uid-1",
					PallBalance: 10.0,
				}, nil)
				miningRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(&domain.MiningAccount{
					UserID:     "uid-1",
					TotalCoins: 42.0,
				}, nil)
				walletRepo.EXPECT().SetPallBalance(gomock.Any(), "uid-1", 42.0).Return(nil)
			},
			expectedWallet: &domain.Wallet{
				UserID:      "uid-1",
				PallBalance: 42.0,
			},
		},
		{
			name: "Wallet missing",
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetWallet(context.Background(), "uid-1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, wallet)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}
