package ledger

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/swark/arkpay/internal/adapter/config"
	"github.com/swark/arkpay/internal/adapter/metrics"
	"github.com/swark/arkpay/internal/core/domain"
	"go.uber.org/zap"
)

const searchPath = "/api/v2/transactions/search"

const (
	MatchFirst         = "first"
	MatchOldest        = "oldest"
	MatchMostConfirmed = "mostConfirmed"
)

// Client searches ledger nodes for the transaction paying an order.
// Every failure on the primary node, timeouts included, is retried
// once against the backup node; a failure there degrades to not-found
// so the sweep keeps running.
type Client struct {
	logger  *zap.Logger
	primary string
	backup  string
	policy  string
	client  *http.Client
}

func NewClient(cfg *config.Node, log *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("ledger node URL is not configured")
	}
	policy := cfg.MatchPolicy
	switch policy {
	case MatchFirst, MatchOldest, MatchMostConfirmed:
	case "":
		policy = MatchFirst
	default:
		return nil, fmt.Errorf("unknown transaction match policy %q", cfg.MatchPolicy)
	}
	return &Client{
		logger:  log,
		primary: cfg.URL,
		backup:  cfg.BackupURL,
		policy:  policy,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type searchRequest struct {
	RecipientID    string `json:"recipientId"`
	VendorFieldHex string `json:"vendorFieldHex"`
}

type searchResponse struct {
	Data []domain.LedgerTransaction `json:"data"`
}

func (c *Client) FindTransaction(ctx context.Context, recipient string, vendorField string) (*domain.LedgerTransaction, error) {
	search := searchRequest{
		RecipientID:    recipient,
		VendorFieldHex: hex.EncodeToString([]byte(vendorField)),
	}

	txs, err := c.search(ctx, c.primary, search)
	if err != nil {
		c.logger.Warn("Main node api was not executable", zap.Error(err))
		metrics.NodeFallbacks.Inc()

		if c.backup == "" {
			c.logger.Error("Backup node api was not executable", zap.String("reason", "no backup node configured"))
			metrics.NodeFailures.Inc()
			return nil, domain.ErrTransactionNotFound
		}

		txs, err = c.search(ctx, c.backup, search)
		if err != nil {
			c.logger.Error("Backup node api was not executable", zap.Error(err))
			metrics.NodeFailures.Inc()
			return nil, domain.ErrTransactionNotFound
		}
	}

	if len(txs) == 0 {
		return nil, domain.ErrTransactionNotFound
	}

	tx := c.selectMatch(txs)
	return &tx, nil
}

func (c *Client) search(ctx context.Context, host string, search searchRequest) ([]domain.LedgerTransaction, error) {
	body, err := json.Marshal(search)
	if err != nil {
		return nil, fmt.Errorf("error encoding search request: %w", err)
	}

	requestStr := host + searchPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error on %s: %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s: %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return result.Data, nil
}

// selectMatch picks one transaction when the node returns several for
// the same recipient and vendor field.
func (c *Client) selectMatch(txs []domain.LedgerTransaction) domain.LedgerTransaction {
	switch c.policy {
	case MatchOldest:
		best := txs[0]
		for _, tx := range txs[1:] {
			if tx.Timestamp.Unix < best.Timestamp.Unix {
				best = tx
			}
		}
		return best
	case MatchMostConfirmed:
		best := txs[0]
		for _, tx := range txs[1:] {
			if tx.Confirmations > best.Confirmations {
				best = tx
			}
		}
		return best
	default:
		return txs[0]
	}
}
