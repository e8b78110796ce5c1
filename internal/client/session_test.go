package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSession_SignInAndOut(t *testing.T) {
	userID := uuid.New()
	var loggedOut bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		switch r.URL.Path {
		case "/auth/v1/token":
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "ada@example.org", creds["email"])
			return jsonResponse(http.StatusOK, `{"access_token":"tok","token_type":"bearer","expires_in":3600,"user":{"id":"`+userID.String()+`","email":"ada@example.org"}}`), nil
		case "/auth/v1/logout":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			loggedOut = true
			return jsonResponse(http.StatusNoContent, ``), nil
		}
		return jsonResponse(http.StatusNotFound, ``), nil
	})
	session := NewPasswordSession("https://auth.example.org/auth/v1/", "anon-key", &http.Client{Transport: rt})

	var seen []*User
	unsubscribe := session.OnAuthChange(func(u *User) { seen = append(seen, u) })

	_, err := session.Token()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	user, err := session.SignIn(context.Background(), "ada@example.org", "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	current, ok := session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ada@example.org", current.Email)

	token, err := session.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)

	require.NoError(t, session.SignOut(context.Background()))
	assert.True(t, loggedOut)
	_, ok = session.CurrentUser()
	assert.False(t, ok)

	require.Len(t, seen, 2)
	assert.Equal(t, userID, seen[0].ID)
	assert.Nil(t, seen[1])

	unsubscribe()
	_, err = session.SignIn(context.Background(), "ada@example.org", "secret")
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

func TestPasswordSession_SignInRejected(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"error":"invalid_grant","message":"Invalid login credentials"}`), nil
	})
	session := NewPasswordSession("https://auth.example.org/auth/v1", "", &http.Client{Transport: rt})

	_, err := session.SignIn(context.Background(), "ada@example.org", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)
	_, ok := session.CurrentUser()
	assert.False(t, ok)
}

func TestPasswordSession_SignOutClearsOnFailure(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/token" {
			return jsonResponse(http.StatusOK, `{"access_token":"tok","user":{"id":"`+uuid.NewString()+`","email":"a@b.co"}}`), nil
		}
		return jsonResponse(http.StatusInternalServerError, ``), nil
	})
	session := NewPasswordSession("https://auth.example.org", "", &http.Client{Transport: rt})
	_, err := session.SignIn(context.Background(), "a@b.co", "pw")
	require.NoError(t, err)

	err = session.SignOut(context.Background())

	assert.EqualError(t, err, "Failed to sign out")
	_, err = session.Token()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	assert.NoError(t, session.SignOut(context.Background()))
}
