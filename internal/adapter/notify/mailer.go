package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/swark/arkpay/internal/adapter/config"
	"github.com/swark/arkpay/internal/adapter/metrics"
	"github.com/swark/arkpay/internal/core/domain"
	"go.uber.org/zap"
)

// Mailer asks the shop's mail service to send a payment status mail.
// Callers treat its failures as soft: the status change is already
// committed by the time a mail is attempted.
type Mailer struct {
	logger *zap.Logger
	host   string
	client *http.Client
}

func NewMailer(cfg *config.Mailer, log *zap.Logger) (*Mailer, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mailer service URL is not configured")
	}
	return &Mailer{
		logger: log,
		host:   cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type statusMailRequest struct {
	Order  uint64 `json:"order"`
	Status string `json:"status"`
}

func (m *Mailer) SendStatusMail(ctx context.Context, orderNumber uint64, status domain.PaymentStatus) error {
	body, err := json.Marshal(statusMailRequest{Order: orderNumber, Status: string(status)})
	if err != nil {
		return fmt.Errorf("error encoding status mail request: %w", err)
	}

	requestStr := m.host + "/api/mails/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error on %s: %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		metrics.StatusMailFailures.Inc()
		return fmt.Errorf("request error %s: %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		metrics.StatusMailFailures.Inc()
		m.logger.Error("Unexpected status for mail request",
			zap.Uint64("order", orderNumber), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	return nil
}
