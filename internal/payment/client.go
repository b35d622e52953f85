// Package payment talks to the external payment processor. Only intent
// creation is wired up; capture and refunds happen on the processor side.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Intent is the processor's handle for a pending payment.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// IntentClient creates payment intents with the processor.
type IntentClient interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error)
}

// httpClient implements IntentClient over the processor's REST API.
type httpClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
	logger    zerolog.Logger
}

// NewHTTPClient creates a processor client. The secret key is sent as a
// bearer token on every request.
func NewHTTPClient(baseURL, secretKey string, logger zerolog.Logger) IntentClient {
	return &httpClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger.With().Str("component", "payment-client").Logger(),
	}
}

type intentRequest struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
}

// CreateIntent asks the processor for a new payment intent. The amount is
// converted to minor units, which is how processors quote currency.
func (c *httpClient) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	payload, err := json.Marshal(intentRequest{
		Amount:   int64(amount * 100),
		Currency: currency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("payment processor unreachable")
		return nil, fmt.Errorf("payment processor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("payment processor rejected intent")
		return nil, fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent response: %w", err)
	}

	c.logger.Info().
		Str("intent_id", intent.ID).
		Str("status", intent.Status).
		Msg("payment intent created")

	return &intent, nil
}
