package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/govalues/decimal"
	"github.com/swark/arkpay/internal/adapter/config"
	"github.com/swark/arkpay/internal/core/domain"
	"go.uber.org/zap"
)

// Client fetches live ledger-currency rates. Unlike the ledger client
// there is no fallback: a failed lookup is a hard error for the order
// being processed.
type Client struct {
	logger *zap.Logger
	host   string
	client *http.Client
}

func NewClient(cfg *config.Exchange, log *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("exchange service URL is not configured")
	}
	return &Client{
		logger: log,
		host:   cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type rateResponse struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

func (c *Client) GetRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	requestStr := c.host + "/api/rates/" + currency
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error on %s: %w", requestStr, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("request error %s: %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Unexpected status for rate request",
			zap.String("currency", currency), zap.Int("status", resp.StatusCode))
		return decimal.Decimal{}, fmt.Errorf("%w: bad response %v for request %s",
			domain.ErrExchangeRate, resp.StatusCode, requestStr)
	}

	var result rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Decimal{}, fmt.Errorf("error on response decode: %w", err)
	}

	if !strings.EqualFold(result.Currency, currency) {
		c.logger.Error("Rate response for wrong currency",
			zap.String("requested", currency), zap.String("got", result.Currency))
		return decimal.Decimal{}, fmt.Errorf("%w: got rate for %q, requested %q",
			domain.ErrExchangeRate, result.Currency, currency)
	}

	rate, err := decimal.NewFromFloat64(result.Rate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error on response decode: %w", err)
	}

	return rate, nil
}
