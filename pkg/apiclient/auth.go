package apiclient

import (
	"time"
)

// LoginRequest represents a login request. The email field also accepts a
// username (the seeded admin account has no email).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the user representation embedded in auth responses.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenResponse represents the data returned by login/refresh endpoints.
type TokenResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         UserInfo  `json:"user"`
}

// Login authenticates with the server and returns tokens.
func (c *Client) Login(email, password string) (*TokenResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	var resp TokenResponse
	if err := c.post("/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (c *Client) RefreshToken(refreshToken string) (*TokenResponse, error) {
	req := struct {
		RefreshToken string `json:"refreshToken"`
	}{
		RefreshToken: refreshToken,
	}

	var resp TokenResponse
	if err := c.post("/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetCurrentUser returns the currently authenticated user.
func (c *Client) GetCurrentUser() (*UserInfo, error) {
	var user UserInfo
	if err := c.get("/api/v1/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
