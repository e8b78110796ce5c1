package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"glass-connect-backend/internal/config"
	apperrors "glass-connect-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func baseMailCfg() *config.Config {
	return &config.Config{
		MailAPIURL: "https://mail.example/v1/send",
		MailAPIKey: "key-1",
		MailFrom:   "no-reply@glass-connect.example",
	}
}

func newMailerWithTransport(t *testing.T, rt roundTripFunc) *HTTPMailer {
	t.Helper()
	m, err := NewHTTPMailer(baseMailCfg())
	require.NoError(t, err)
	m.httpClient = &http.Client{Transport: rt}
	return m
}

func TestSend_Success(t *testing.T) {
	m := newMailerWithTransport(t, func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "https://mail.example/v1/send", r.URL.String())
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

		var body sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "no-reply@glass-connect.example", body.From)
		assert.Equal(t, []string{"lab@example.org"}, body.To)
		assert.Equal(t, "ada@example.org", body.ReplyTo)
		assert.Equal(t, "Hello", body.Subject)
		return textResponse(http.StatusAccepted, `{"id":"m1"}`), nil
	})

	err := m.Send(context.Background(), Message{
		To:      []string{"lab@example.org"},
		ReplyTo: "ada@example.org",
		Subject: "Hello",
		Text:    "Body",
	})
	assert.NoError(t, err)
}

func TestSend_ProviderError(t *testing.T) {
	m := newMailerWithTransport(t, func(r *http.Request) (*http.Response, error) {
		return textResponse(http.StatusUnprocessableEntity, "invalid recipient"), nil
	})

	err := m.Send(context.Background(), Message{To: []string{"x@example.org"}, Subject: "s", Text: "t"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "invalid recipient")
}

func TestSend_NoRecipient(t *testing.T) {
	m := newMailerWithTransport(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})
	assert.Error(t, m.Send(context.Background(), Message{Subject: "s"}))
}

func TestNewHTTPMailer_NotConfigured(t *testing.T) {
	_, err := NewHTTPMailer(&config.Config{})
	assert.ErrorIs(t, err, apperrors.ErrMailerNotConfigured)
}
