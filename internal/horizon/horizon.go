package horizon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/pkg/clients"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound = errors.New("stellar account not found")
	ErrUnexpectedState = errors.New("unexpected horizon response")
)

type Client struct {
	url         string
	tokenCode   string
	tokenIssuer string
	client      clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:         cfg.HorizonURL,
		tokenCode:   cfg.TokenCode,
		tokenIssuer: cfg.TokenIssuer,
		client:      client,
	}
}

type accountResponse struct {
	Balances []balance `json:"balances"`
}

type balance struct {
	Balance     string `json:"balance"`
	AssetType   string `json:"asset_type"`
	AssetCode   string `json:"asset_code"`
	AssetIssuer string `json:"asset_issuer"`
}

// AccountTokenBalance returns the account's balance of the configured
// staking token. An account without a trustline for the token holds zero.
func (c *Client) AccountTokenBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	statusCode, respBody, _, err := c.client.Get(c.url+"/accounts/"+address, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("horizon request failed: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return decimal.Zero, ErrAccountNotFound
	default:
		return decimal.Zero, fmt.Errorf("%w: status %d for account %s", ErrUnexpectedState, statusCode, address)
	}

	var account accountResponse
	if err := json.Unmarshal(respBody, &account); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse account response: %w", err)
	}

	for _, b := range account.Balances {
		if b.AssetType != "native" && b.AssetCode == c.tokenCode && b.AssetIssuer == c.tokenIssuer {
			amount, err := decimal.NewFromString(b.Balance)
			if err != nil {
				return decimal.Zero, fmt.Errorf("invalid balance %q: %w", b.Balance, err)
			}
			return amount, nil
		}
	}

	return decimal.Zero, nil
}

// TransactionExists reports whether a transaction with the given hash has
// been included in the ledger.
func (c *Client) TransactionExists(ctx context.Context, hash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	statusCode, _, _, err := c.client.Get(c.url+"/transactions/"+hash, nil)
	if err != nil {
		return false, fmt.Errorf("horizon request failed: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: status %d for transaction %s", ErrUnexpectedState, statusCode, hash)
	}
}
