package referrals

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
	referralservice "github.com/pallnetwork/pallmine/internal/service/referralservice"
	"github.com/pallnetwork/pallmine/pkg/auth"
)

func NewMock(t *testing.T) (*ReferralHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"referrerUsername":"vitalik","newUserId":"uid-2","newUsername":"satoshi"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "vitalik", "uid-2", "satoshi").
					Return(&domain.Referral{
						ID:                "ref-1",
						ReferrerUsername:  "vitalik",
						ReferredUsername:  "satoshi",
						Tier:              1,
						SignupRewardGiven: true,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Referrer not found",
			body: `{"referrerUsername":"nobody","newUserId":"uid-2","newUsername":"satoshi"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "nobody", "uid-2", "satoshi").
					Return(nil, referralservice.ErrReferrerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already referred user without a referral row",
			body: `{"referrerUsername":"vitalik","newUserId":"uid-2","newUsername":"satoshi"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "vitalik", "uid-2", "satoshi").
					Return(nil, nil)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Self referral",
			body: `{"referrerUsername":"satoshi","newUserId":"uid-2","newUsername":"satoshi"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "satoshi", "uid-2", "satoshi").
					Return(nil, referralservice.ErrSelfReferral)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"referrerUsername":"vitalik","newUserId":"uid-2","newUsername":"satoshi"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "vitalik", "uid-2", "satoshi").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/referrals", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ReferralDTO
				_ = json.NewDecoder(rr.Body).Decode(&body)
				assert.Equal(t, "ref-1", body.ID)
				assert.True(t, body.SignupRewardGiven)
			}
		})
	}
}

func TestGetTeamHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, "uid-1")

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.TeamResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetTeam(ctx, "uid-1").
					Return(&referralservice.TeamReport{
						Referrals: []domain.Referral{
							{ID: "ref-1", ReferrerUsername: "vitalik", ReferredUsername: "satoshi", Tier: 1},
						},
						Commissions: []domain.Commission{
							{ID: "com-1", BeneficiaryID: "uid-1", Tier: "f1", AmountCents: 15},
						},
						TotalReferrals:       1,
						TotalCommissionCents: 15,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.TeamResponseDTO{
				TotalReferrals:       1,
				TotalCommissionCents: 15,
				Referrals: []dto.ReferralDTO{
					{ID: "ref-1", ReferrerUsername: "vitalik", ReferredUsername: "satoshi", Tier: 1},
				},
				Commissions: []dto.CommissionDTO{
					{ID: "com-1", Beneficiary: "uid-1", Tier: "f1", AmountCents: 15},
				},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetTeam(ctx, "uid-1").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/team", nil).WithContext(ctx)
			rr := httptest.NewRecorder()
			handler.GetTeam(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TeamResponseDTO
				_ = json.NewDecoder(rr.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
