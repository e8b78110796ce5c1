// Package notify delivers outbound email through an HTTP mail provider.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"glass-connect-backend/internal/config"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
)

const providerName = "mail provider"

// Message is a plain-text email
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// HTTPMailer posts messages to a transactional mail API
type HTTPMailer struct {
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewHTTPMailer creates a mailer from the MAIL_* settings
func NewHTTPMailer(cfg *config.Config) (*HTTPMailer, error) {
	if !cfg.MailEnabled() {
		return nil, apperrors.ErrMailerNotConfigured
	}
	return &HTTPMailer{
		endpoint:   cfg.MailAPIURL,
		apiKey:     cfg.MailAPIKey,
		from:       cfg.MailFrom,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Send delivers msg. Any non-2xx answer is returned as an upstream error.
func (m *HTTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipient")
	}
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(providerName, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.WithContext(ctx).Errorf("Mail provider failed: status=%d, body=%s", resp.StatusCode, string(body))
		return apperrors.NewUpstreamError(providerName, resp.StatusCode, string(body))
	}

	logger.WithContext(ctx).Debugf("Mail accepted for %d recipient(s)", len(msg.To))
	return nil
}
