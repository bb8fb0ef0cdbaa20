package upgraderepo

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

func upgradeColumns() []string {
	return []string{"id", "user_id", "package_id", "speed_multiplier", "price_cents", "purchased_at", "expires_at", "payment_ref", "is_active"}
}

func TestRepository_GetActiveByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expiry := now.Add(180 * 24 * time.Hour)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.Upgrade
	}{
		{
			name:   "Active upgrade is returned",
			userID: "uid-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(upgradeColumns()).
					AddRow("up-1", "uid-1", "bronze", 2, int64(300), now, &expiry, "pay-1", true)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND is_active`)).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Upgrade{
				ID:              "up-1",
				UserID:          "uid-1",
				PackageID:       "bronze",
				SpeedMultiplier: 2,
				PriceCents:      300,
				PurchasedAt:     now,
				ExpiresAt:       &expiry,
				PaymentRef:      "pay-1",
				IsActive:        true,
			},
		},
		{
			name:   "No active upgrade returns nil",
			userID: "uid-2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND is_active`)).
					WithArgs("uid-2").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: "uid-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND is_active`)).
					WithArgs("uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetActiveByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		upgrade   *domain.Upgrade
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates upgrade",
			upgrade: &domain.Upgrade{
				ID:              "up-1",
				UserID:          "uid-1",
				PackageID:       "gold",
				SpeedMultiplier: 5,
				PriceCents:      2500,
				PurchasedAt:     now,
				PaymentRef:      "pay-1",
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO upgrades`)).
					WithArgs("up-1", "uid-1", "gold", 5, int64(2500), now, (*time.Time)(nil), "pay-1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			upgrade: &domain.Upgrade{
				ID:              "up-1",
				UserID:          "uid-1",
				PackageID:       "gold",
				SpeedMultiplier: 5,
				PriceCents:      2500,
				PurchasedAt:     now,
				PaymentRef:      "pay-1",
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO upgrades`)).
					WithArgs("up-1", "uid-1", "gold", 5, int64(2500), now, (*time.Time)(nil), "pay-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.upgrade)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.IsActive)
			}
		})
	}
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully deactivates",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET is_active = FALSE`)).
					WithArgs("up-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET is_active = FALSE`)).
					WithArgs("up-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Deactivate(context.Background(), "up-1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns purchase history",
			mockSetup: func() {
				rows := pgxmock.NewRows(upgradeColumns()).
					AddRow("up-2", "uid-1", "silver", 3, int64(1000), now, nil, "pay-2", true).
					AddRow("up-1", "uid-1", "bronze", 2, int64(300), now.Add(-time.Hour), nil, "pay-1", false)
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY purchased_at DESC`)).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Empty history",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY purchased_at DESC`)).
					WithArgs("uid-1").
					WillReturnRows(pgxmock.NewRows(upgradeColumns()))
			},
			expectErr: false,
			count:     0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY purchased_at DESC`)).
					WithArgs("uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUserID(context.Background(), "uid-1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_FindExpired(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expired := now.Add(-time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns expired upgrades",
			mockSetup: func() {
				rows := pgxmock.NewRows(upgradeColumns()).
					AddRow("up-1", "uid-1", "bronze", 2, int64(300), now.Add(-181*24*time.Hour), &expired, "pay-1", true)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1`)).
					WithArgs(now, 100).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1`)).
					WithArgs(now, 100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindExpired(context.Background(), now, 100)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
