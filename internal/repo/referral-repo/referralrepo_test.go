package referralrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/pallnetwork/pallmine/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func referralColumns() []string {
	return []string{"id", "referrer_id", "referrer_username", "referred_id", "referred_username", "tier", "signup_reward_given", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	referral := &domain.Referral{
		ID:                "ref-1",
		ReferrerID:        "uid-1",
		ReferrerUsername:  "alice",
		ReferredID:        "uid-2",
		ReferredUsername:  "bob",
		Tier:              1,
		SignupRewardGiven: true,
		CreatedAt:         now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates referral",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO referrals`)).
					WithArgs("ref-1", "uid-1", "alice", "uid-2", "bob", 1, true, now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO referrals`)).
					WithArgs("ref-1", "uid-1", "alice", "uid-2", "bob", 1, true, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), referral)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, referral, result)
			}
		})
	}
}

func TestRepository_FindByReferredID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name       string
		referredID string
		mockSetup  func()
		expectErr  bool
		result     *domain.Referral
	}{
		{
			name:       "Existing referral is returned",
			referredID: "uid-2",
			mockSetup: func() {
				rows := pgxmock.NewRows(referralColumns()).
					AddRow("ref-1", "uid-1", "alice", "uid-2", "bob", 1, true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE referred_id = $1 AND tier = 1`)).
					WithArgs("uid-2").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Referral{
				ID:                "ref-1",
				ReferrerID:        "uid-1",
				ReferrerUsername:  "alice",
				ReferredID:        "uid-2",
				ReferredUsername:  "bob",
				Tier:              1,
				SignupRewardGiven: true,
				CreatedAt:         now,
			},
		},
		{
			name:       "Missing referral returns nil",
			referredID: "uid-99",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE referred_id = $1 AND tier = 1`)).
					WithArgs("uid-99").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByReferredID(context.Background(), tt.referredID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ListByReferrerID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns referrals",
			mockSetup: func() {
				rows := pgxmock.NewRows(referralColumns()).
					AddRow("ref-2", "uid-1", "alice", "uid-3", "carol", 1, true, now).
					AddRow("ref-1", "uid-1", "alice", "uid-2", "bob", 1, true, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE referrer_id = $1`)).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE referrer_id = $1`)).
					WithArgs("uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByReferrerID(context.Background(), "uid-1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
