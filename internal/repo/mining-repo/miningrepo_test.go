package miningrepo

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

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	mineTime := time.Now()

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.MiningAccount
	}{
		{
			name:   "Existing account returns state",
			userID: "uid-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "total_coins", "last_mine_time", "mining_streak", "speed_multiplier", "is_active"}).
					AddRow("uid-1", 42.0, &mineTime, 7, 2, true)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active`)).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.MiningAccount{
				UserID:          "uid-1",
				TotalCoins:      42.0,
				LastMineTime:    &mineTime,
				MiningStreak:    7,
				SpeedMultiplier: 2,
				IsActive:        true,
			},
		},
		{
			name:   "Non-existing account returns nil",
			userID: "uid-99",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active`)).
					WithArgs("uid-99").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: "uid-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id, total_coins, last_mine_time, mining_streak, speed_multiplier, is_active`)).
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
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.MiningAccount
	}{
		{
			name:   "Locks and returns account",
			userID: "uid-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "total_coins", "last_mine_time", "mining_streak", "speed_multiplier", "is_active"}).
					AddRow("uid-1", 0.0, nil, 0, 1, true)
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.MiningAccount{
				UserID:          "uid-1",
				SpeedMultiplier: 1,
				IsActive:        true,
			},
		},
		{
			name:   "Non-existing account returns nil",
			userID: "uid-99",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
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
			result, err := repo.GetForUpdate(context.Background(), tt.userID)

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

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Successfully creates account",
			userID: "uid-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "total_coins", "last_mine_time", "mining_streak", "speed_multiplier", "is_active"}).
					AddRow("uid-1", 0.0, nil, 0, 1, true)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO mining_accounts`)).
					WithArgs("uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			userID: "uid-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO mining_accounts`)).
					WithArgs("uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, result.UserID)
				assert.Equal(t, 1, result.SpeedMultiplier)
			}
		})
	}
}

func TestRepository_ApplyMine(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		coins     float64
		mockSetup func()
		expectErr bool
		total     float64
		streak    int
	}{
		{
			name:  "Adds coins and bumps streak",
			coins: 2.0,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "total_coins", "last_mine_time", "mining_streak", "speed_multiplier", "is_active"}).
					AddRow("uid-1", 44.0, &now, 8, 2, true)
				mock.ExpectQuery(regexp.QuoteMeta(`SET total_coins = total_coins + $1, last_mine_time = $2, mining_streak = mining_streak + 1`)).
					WithArgs(2.0, now, "uid-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			total:     44.0,
			streak:    8,
		},
		{
			name:  "Database error",
			coins: 2.0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET total_coins = total_coins + $1, last_mine_time = $2, mining_streak = mining_streak + 1`)).
					WithArgs(2.0, now, "uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ApplyMine(context.Background(), "uid-1", tt.coins, now)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.total, result.TotalCoins)
				assert.Equal(t, tt.streak, result.MiningStreak)
			}
		})
	}
}

func TestRepository_AddCoins(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully adds coins",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET total_coins = total_coins + $1`)).
					WithArgs(0.1, "uid-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET total_coins = total_coins + $1`)).
					WithArgs(0.1, "uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AddCoins(context.Background(), "uid-1", 0.1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_SetMultiplier(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name       string
		multiplier int
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Successfully sets multiplier",
			multiplier: 3,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET speed_multiplier = $1`)).
					WithArgs(3, "uid-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:       "Database error",
			multiplier: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET speed_multiplier = $1`)).
					WithArgs(1, "uid-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetMultiplier(context.Background(), "uid-1", tt.multiplier)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
