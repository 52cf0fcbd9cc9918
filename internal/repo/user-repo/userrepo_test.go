package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
)

const testAddress = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByAddress(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name      string
		address   string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:    "User found",
			address: testAddress,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "stellar_address", "created_at"}).
					AddRow(1, testAddress, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, stellar_address, created_at FROM users WHERE stellar_address = $1")).
					WithArgs(testAddress).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:             1,
				StellarAddress: testAddress,
				CreatedAt:      now,
			},
		},
		{
			name:    "User not found",
			address: testAddress,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, stellar_address, created_at FROM users WHERE stellar_address = $1")).
					WithArgs(testAddress).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:    "Database error",
			address: testAddress,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, stellar_address, created_at FROM users WHERE stellar_address = $1")).
					WithArgs(testAddress).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByAddress(context.Background(), tt.address)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				StellarAddress: testAddress,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (stellar_address)")).
					WithArgs(testAddress).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
			},
			expectErr: false,
			result: &domain.User{
				ID:             1,
				StellarAddress: testAddress,
				CreatedAt:      now,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				StellarAddress: testAddress,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (stellar_address)")).
					WithArgs(testAddress).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
