package horizon

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testAddress = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{
		HorizonURL:  "https://horizon-testnet.stellar.org",
		TokenCode:   "KALE",
		TokenIssuer: "GISSUER",
	}
	return New(cfg, client), client
}

func TestAccountTokenBalance(t *testing.T) {
	accountJSON := `{
		"balances": [
			{"balance": "41.0000000", "asset_type": "native"},
			{"balance": "12.5000000", "asset_type": "credit_alphanum4", "asset_code": "KALE", "asset_issuer": "GISSUER"},
			{"balance": "7.0000000", "asset_type": "credit_alphanum4", "asset_code": "KALE", "asset_issuer": "GOTHER"}
		]
	}`

	tests := []struct {
		name        string
		mockSetup   func(client *clients.MockHTTPClientI)
		expected    decimal.Decimal
		expectedErr error
	}{
		{
			name: "token balance found",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					Get("https://horizon-testnet.stellar.org/accounts/"+testAddress, nil).
					Return(http.StatusOK, []byte(accountJSON), nil, nil)
			},
			expected: decimal.RequireFromString("12.5"),
		},
		{
			name: "no trustline means zero",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					Get(gomock.Any(), nil).
					Return(http.StatusOK, []byte(`{"balances":[{"balance":"1.0","asset_type":"native"}]}`), nil, nil)
			},
			expected: decimal.Zero,
		},
		{
			name: "account not found",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					Get(gomock.Any(), nil).
					Return(http.StatusNotFound, nil, nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name: "transport error",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					Get(gomock.Any(), nil).
					Return(0, nil, nil, errors.New("connection refused"))
			},
			expectedErr: errors.New("horizon request failed: connection refused"),
		},
		{
			name: "unexpected status",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().
					Get(gomock.Any(), nil).
					Return(http.StatusTooManyRequests, nil, nil, nil)
			},
			expectedErr: ErrUnexpectedState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			tt.mockSetup(httpClient)

			amount, err := client.AccountTokenBalance(context.Background(), testAddress)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, ErrAccountNotFound) || errors.Is(tt.expectedErr, ErrUnexpectedState) {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expected.Equal(amount), "expected %s, got %s", tt.expected, amount)
			}
		})
	}
}

func TestTransactionExists(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		clientErr  error
		expected   bool
		expectErr  bool
	}{
		{name: "transaction found", statusCode: http.StatusOK, expected: true},
		{name: "transaction missing", statusCode: http.StatusNotFound, expected: false},
		{name: "unexpected status", statusCode: http.StatusInternalServerError, expectErr: true},
		{name: "transport error", clientErr: errors.New("timeout"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewMock(t)
			httpClient.EXPECT().
				Get("https://horizon-testnet.stellar.org/transactions/abc123", nil).
				Return(tt.statusCode, nil, nil, tt.clientErr)

			ok, err := client.TransactionExists(context.Background(), "abc123")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
		})
	}
}
