package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// User is the signed-in account of a session.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SessionProvider supplies the current user and access token. It is passed
// to the Client instead of being shared process-wide, so tests can swap it.
type SessionProvider interface {
	oauth2.TokenSource
	CurrentUser() (*User, bool)
	OnAuthChange(fn func(*User)) (unsubscribe func())
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error
}

// PasswordSession signs in with email and password against a GoTrue
// compatible auth endpoint.
type PasswordSession struct {
	authURL    string
	apiKey     string
	httpClient *http.Client

	mu        sync.Mutex
	user      *User
	token     *oauth2.Token
	listeners map[int]func(*User)
	nextID    int
}

// Ensure PasswordSession implements SessionProvider
var _ SessionProvider = (*PasswordSession)(nil)

// NewPasswordSession creates a signed-out session. apiKey is sent as the
// apikey header when set.
func NewPasswordSession(authURL, apiKey string, hc *http.Client) *PasswordSession {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &PasswordSession{
		authURL:    strings.TrimRight(authURL, "/"),
		apiKey:     apiKey,
		httpClient: hc,
		listeners:  make(map[int]func(*User)),
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         User   `json:"user"`
}

// SignIn exchanges credentials for an access token and notifies listeners.
func (s *PasswordSession) SignIn(ctx context.Context, email, password string) (*User, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL+"/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, networkError("Failed to sign in", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(resp, "Failed to sign in")
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("invalid sign-in response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("invalid sign-in response: missing access token")
	}

	token := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
	}
	if tr.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	user := tr.User
	s.set(&user, token)
	return &user, nil
}

// SignOut revokes the token when possible and always clears local state.
func (s *PasswordSession) SignOut(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == nil {
		return nil
	}
	defer s.set(nil, nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL+"/logout", nil)
	if err != nil {
		return err
	}
	token.SetAuthHeader(req)
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return networkError("Failed to sign out", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp, "Failed to sign out")
	}
	return nil
}

// CurrentUser returns the signed-in user.
func (s *PasswordSession) CurrentUser() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Token implements oauth2.TokenSource. Expired tokens are not refreshed.
func (s *PasswordSession) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil || !s.token.Valid() {
		return nil, ErrNotSignedIn
	}
	return s.token, nil
}

// OnAuthChange registers fn to run after every sign-in and sign-out. fn
// receives nil on sign-out.
func (s *PasswordSession) OnAuthChange(fn func(*User)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *PasswordSession) set(user *User, token *oauth2.Token) {
	s.mu.Lock()
	s.user = user
	s.token = token
	listeners := make([]func(*User), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		if user == nil {
			fn(nil)
			continue
		}
		u := *user
		fn(&u)
	}
}
