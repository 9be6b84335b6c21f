package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	expiresAt := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var req LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", req.Email)
		assert.Equal(t, "password123", req.Password)

		writeEnvelope(w, http.StatusOK, "OK", "Login successful", TokenResponse{
			Token:        "access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    expiresAt,
			User: UserInfo{
				ID:       "user-1",
				Username: "admin",
				Email:    "admin@example.com",
				Role:     "admin",
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login("admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Equal(t, expiresAt, resp.ExpiresAt.UTC())
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "ERROR", "Invalid email or password", nil)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login("admin@example.com", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.True(t, apiErr.IsAuthError())
}

func TestRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)

		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "old-refresh-token", req.RefreshToken)

		writeEnvelope(w, http.StatusOK, "OK", "Token refreshed", TokenResponse{
			Token:        "new-access-token",
			RefreshToken: "new-refresh-token",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.RefreshToken("old-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", resp.Token)
	assert.Equal(t, "new-refresh-token", resp.RefreshToken)
}

func TestGetCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusOK, "OK", "", UserInfo{
			ID:       "user-1",
			Username: "admin",
			Email:    "admin@example.com",
			Role:     "admin",
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("access-token")
	user, err := client.GetCurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)
}
