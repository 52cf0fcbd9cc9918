package staking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
	"github.com/nsdBRoficial/stellar-stake-house/internal/dto"
	stakingservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/stakingservice"
)

const (
	testAddress = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"
	testTxHash  = "5b422945c99ec8bd8b716b5949d0586e6bcf0b435ffb2cf9cf4c2d3e2b0fbf57"
)

func NewMock(t *testing.T) (chi.Router, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Get("/api/staking/balance/{address}", handler.GetBalance)
	r.Post("/api/staking/delegate", handler.Delegate)
	r.Post("/api/staking/undelegate", handler.Undelegate)
	r.Get("/api/staking/status/{address}", handler.GetStatus)
	return r, service
}

func TestGetBalanceHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		address      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful balance lookup",
			address: testAddress,
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), testAddress).Return(&stakingservice.BalanceInfo{
					WalletBalance: decimal.RequireFromString("150.5"),
					Delegated:     decimal.RequireFromString("800"),
					TokenCode:     "KALE",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid address",
			address:      "bogus",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:    "Service failure",
			address: testAddress,
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), testAddress).Return(nil, errors.New("horizon down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/staking/balance/"+tt.address, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.BalanceResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "150.5000000", resp.WalletBalance)
				assert.Equal(t, "800.0000000", resp.Delegated)
				assert.Equal(t, "KALE", resp.TokenCode)
			}
		})
	}
}

func TestDelegateHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful delegation",
			body: `{"stellar_address":"` + testAddress + `","amount":"500","tx_hash":"` + testTxHash + `"}`,
			prepareMock: func() {
				service.EXPECT().Delegate(gomock.Any(), testAddress, decimal.RequireFromString("500"), testTxHash).
					Return(&domain.Delegation{
						ID:        11,
						UserID:    7,
						Amount:    decimal.RequireFromString("500"),
						TxHash:    testTxHash,
						Status:    domain.DelegationActive,
						CreatedAt: time.Now(),
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
			name:         "Invalid address",
			body:         `{"stellar_address":"bogus","amount":"500","tx_hash":"` + testTxHash + `"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Unparseable amount",
			body:         `{"stellar_address":"` + testAddress + `","amount":"lots","tx_hash":"` + testTxHash + `"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Transaction not on the ledger",
			body: `{"stellar_address":"` + testAddress + `","amount":"500","tx_hash":"` + testTxHash + `"}`,
			prepareMock: func() {
				service.EXPECT().Delegate(gomock.Any(), testAddress, decimal.RequireFromString("500"), testTxHash).
					Return(nil, stakingservice.ErrTxNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Non-positive amount",
			body: `{"stellar_address":"` + testAddress + `","amount":"0","tx_hash":"` + testTxHash + `"}`,
			prepareMock: func() {
				service.EXPECT().Delegate(gomock.Any(), testAddress, decimal.RequireFromString("0"), testTxHash).
					Return(nil, stakingservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/staking/delegate", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.DelegateResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 11, resp.Delegation.ID)
				assert.Equal(t, "500.0000000", resp.Delegation.Amount)
				assert.Equal(t, domain.DelegationActive, resp.Delegation.Status)
			}
		})
	}
}

func TestUndelegateHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful undelegation",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Undelegate(gomock.Any(), testAddress).Return(decimal.RequireFromString("800"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing delegated",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Undelegate(gomock.Any(), testAddress).Return(decimal.Zero, stakingservice.ErrNoActiveDelegation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Undelegate(gomock.Any(), testAddress).Return(decimal.Zero, stakingservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/staking/undelegate", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.UndelegateResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "800.0000000", resp.Amount)
			}
		})
	}
}

func TestGetStatusHandler(t *testing.T) {
	router, service := NewMock(t)

	next := time.Now().UTC().Add(12 * time.Hour).Truncate(time.Second)

	tests := []struct {
		name         string
		address      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Status with snapshot",
			address: testAddress,
			prepareMock: func() {
				service.EXPECT().Status(gomock.Any(), testAddress).Return(&stakingservice.StatusInfo{
					Delegations: []domain.Delegation{
						{ID: 1, Amount: decimal.RequireFromString("800"), Status: domain.DelegationActive},
					},
					TotalDelegated: decimal.RequireFromString("800"),
					LatestSnapshot: &domain.Snapshot{
						ID:              3,
						DelegatedAmount: decimal.RequireFromString("800"),
						ActualBalance:   decimal.RequireFromString("790"),
					},
					NextSnapshot: next,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Unknown user",
			address: testAddress,
			prepareMock: func() {
				service.EXPECT().Status(gomock.Any(), testAddress).Return(nil, stakingservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid address",
			address:      "bogus",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/staking/status/"+tt.address, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.StatusResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "800.0000000", resp.TotalDelegated)
				assert.Len(t, resp.Delegations, 1)
				assert.NotNil(t, resp.LastSnapshot)
				assert.Equal(t, "790.0000000", resp.LastSnapshot.ActualBalance)
			}
		})
	}
}
