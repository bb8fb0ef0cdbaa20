package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pallnetwork/pallmine/internal/domain"
	"github.com/pallnetwork/pallmine/internal/dto"
	userservice "github.com/pallnetwork/pallmine/internal/service/userservice"
	pkgauth "github.com/pallnetwork/pallmine/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService, *MockReferralService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	referralService := NewMockReferralService(ctrl)
	handler := New(service, referralService)
	defer ctrl.Finish()
	return handler, service, referralService
}

func TestSyncHandler(t *testing.T) {
	handler, service, referralService := NewMock(t)
	username := "satoshi"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returning user is synced",
			body: `{"uid":"uid-1","email":"a@b.c","displayName":"Alice","provider":"google"}`,
			prepareMock: func() {
				service.EXPECT().
					Sync(context.Background(), userservice.SyncInput{
						UID:         "uid-1",
						Email:       "a@b.c",
						DisplayName: "Alice",
						Provider:    "google",
					}).
					Return(&domain.User{ID: "uid-1", Email: "a@b.c"}, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "New user with referral code registers the referral",
			body: `{"uid":"uid-2","email":"b@b.c","displayName":"Bob","provider":"google","username":"satoshi","referralCode":"vitalik"}`,
			prepareMock: func() {
				service.EXPECT().
					Sync(context.Background(), userservice.SyncInput{
						UID:         "uid-2",
						Email:       "b@b.c",
						DisplayName: "Bob",
						Provider:    "google",
						Username:    &username,
					}).
					Return(&domain.User{ID: "uid-2"}, true, nil)
				referralService.EXPECT().
					Register(context.Background(), "vitalik", "uid-2", "satoshi").
					Return(&domain.Referral{ID: "ref-1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Failed referral registration does not block sign-in",
			body: `{"uid":"uid-2","email":"b@b.c","displayName":"Bob","provider":"google","referralCode":"nobody"}`,
			prepareMock: func() {
				service.EXPECT().
					Sync(context.Background(), gomock.Any()).
					Return(&domain.User{ID: "uid-2"}, true, nil)
				referralService.EXPECT().
					Register(context.Background(), "nobody", "uid-2", "").
					Return(nil, errors.New("referrer not found"))
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing required fields",
			body:         `{"uid":"uid-1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"uid":"uid-1","email":"a@b.c","displayName":"Alice"}`,
			prepareMock: func() {
				service.EXPECT().
					Sync(context.Background(), gomock.Any()).
					Return(nil, false, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/sync", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()
			handler.Sync(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SyncResponseDTO
				_ = json.NewDecoder(rr.Body).Decode(&body)
				assert.True(t, body.Success)
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, "uid-1")

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetProfile(ctx, "uid-1").
					Return(&userservice.Profile{
						User:          &domain.User{ID: "uid-1", Email: "a@b.c"},
						MiningAccount: &domain.MiningAccount{UserID: "uid-1", TotalCoins: 42.0},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().
					GetProfile(ctx, "uid-1").
					Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetProfile(ctx, "uid-1").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/profile", nil).WithContext(ctx)
			rr := httptest.NewRecorder()
			handler.GetProfile(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(rr.Body).Decode(&body)
				assert.Equal(t, "uid-1", body.User.ID)
				assert.NotNil(t, body.MiningData)
				assert.Equal(t, 42.0, body.MiningData.TotalCoins)
			}
		})
	}
}
