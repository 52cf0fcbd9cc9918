package rewards

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
	rewardservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/rewardservice"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
)

const testAddress = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"

func NewMock(t *testing.T) (chi.Router, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Get("/api/rewards/pending/{address}", handler.GetPending)
	r.Post("/api/rewards/claim", handler.Claim)
	return r, service
}

func TestGetPendingHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		address      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Pending rewards with valuation",
			address: testAddress,
			prepareMock: func() {
				service.EXPECT().Pending(gomock.Any(), testAddress).Return(&rewardservice.PendingSummary{
					Rewards: []domain.Reward{
						{ID: 1, Amount: decimal.RequireFromString("0.1369863"), Status: domain.RewardPending},
					},
					Total:     decimal.RequireFromString("0.1369863"),
					TokenCode: "KALE",
					ValueBRL:  decimal.RequireFromString("0.34"),
					ValueUSD:  decimal.RequireFromString("0.07"),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Unknown user",
			address: testAddress,
			prepareMock: func() {
				service.EXPECT().Pending(gomock.Any(), testAddress).Return(nil, rewardservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
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
				service.EXPECT().Pending(gomock.Any(), testAddress).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/rewards/pending/"+tt.address, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.PendingRewardsResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp.Rewards, 1)
				assert.Equal(t, "0.1369863", resp.Total)
				assert.Equal(t, "0.34", resp.ValueBRL)
				assert.Equal(t, "0.07", resp.ValueUSD)
			}
		})
	}
}

func TestClaimHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful claim",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), testAddress).Return(&rewardservice.ClaimResult{
					Amount:    decimal.RequireFromString("0.4109589"),
					TokenCode: "KALE",
					TxHash:    "claim_7d3f2f0a-7a83-4b06-94c1-8d9f9a1f8f1e",
					ClaimedAt: time.Now().UTC(),
					Count:     3,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing to claim",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), testAddress).Return(nil, rewardservice.ErrNothingToClaim)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), testAddress).Return(nil, rewardservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid address",
			body:         `{"stellar_address":"bogus"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Service failure",
			body: `{"stellar_address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), testAddress).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/rewards/claim", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.ClaimResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "0.4109589", resp.Amount)
				assert.Equal(t, 3, resp.Count)
				assert.Equal(t, "claim_7d3f2f0a-7a83-4b06-94c1-8d9f9a1f8f1e", resp.TxHash)
			}
			if tt.expectedCode == http.StatusInternalServerError {
				var resp utils.ErrorResponse
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "claim failed", resp.Error)
				assert.Equal(t, "db error", resp.Details)
			}
		})
	}
}
