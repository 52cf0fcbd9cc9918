package history

import (
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
	historyservice "github.com/nsdBRoficial/stellar-stake-house/internal/service/historyservice"
)

const testAddress = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"

func NewMock(t *testing.T) (chi.Router, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Get("/api/history/{address}", handler.GetHistory)
	return r, service
}

func TestGetHistoryHandler(t *testing.T) {
	router, service := NewMock(t)

	entries := []domain.HistoryEntry{
		{ID: 2, UserID: 7, Type: domain.HistoryRewardClaim, Amount: decimal.RequireFromString("0.4109589"), TxHash: "claim_x", CreatedAt: time.Now()},
		{ID: 1, UserID: 7, Type: domain.HistoryDelegate, Amount: decimal.RequireFromString("800"), CreatedAt: time.Now()},
	}

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "Full history",
			url:  "/api/history/" + testAddress,
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), testAddress, 20, 0, "").
					Return(&historyservice.Page{Entries: entries, Total: 2}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.HistoryResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp.Entries, 2)
				assert.Equal(t, "0.4109589", resp.Entries[0].Amount)
				assert.Equal(t, 0, resp.Offset)
				assert.Equal(t, 2, resp.TotalItems)
				assert.Equal(t, 1, resp.TotalPages)
				assert.False(t, resp.HasMore)
			},
		},
		{
			name: "Filtered by type with pagination",
			url:  "/api/history/" + testAddress + "?limit=10&offset=10&type=reward_claim",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), testAddress, 10, 10, "reward_claim").
					Return(&historyservice.Page{Entries: nil, Total: 0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Offset reaches the service",
			url:  "/api/history/" + testAddress + "?limit=10&offset=40",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), testAddress, 10, 40, "").
					Return(&historyservice.Page{Entries: entries, Total: 60}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.HistoryResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 40, resp.Offset)
				assert.True(t, resp.HasMore)
			},
		},
		{
			name: "Unknown user",
			url:  "/api/history/" + testAddress,
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), testAddress, 20, 0, "").
					Return(nil, historyservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid address",
			url:          "/api/history/bogus",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Service failure",
			url:  "/api/history/" + testAddress,
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), testAddress, 20, 0, "").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}
