package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/pkg/api/auth"
	"github.com/wizzzeystore/wizzzey-api/pkg/models"
	"github.com/wizzzeystore/wizzzey-api/pkg/store"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	store      store.Store
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(st store.Store, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		store:      st,
		jwtService: jwtService,
	}
}

// LoginRequest is the request body for POST /api/v1/auth/login.
// Email also accepts a username; the seeded admin account has no email.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the sanitized user representation embedded in auth responses.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginData is the envelope data for successful login and refresh calls.
type LoginData struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         UserInfo  `json:"user"`
}

// RefreshRequest is the request body for POST /api/v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login handles POST /api/v1/auth/login.
// Verifies credentials against the user store and returns a JWT token pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		BadRequest(w, "Email and password are required")
		return
	}

	user, err := h.store.ValidateCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrUserNotFound):
			Unauthorized(w, "Invalid email or password")
		case errors.Is(err, models.ErrUserDisabled):
			Forbidden(w, "User account is disabled")
		default:
			logger.ErrorCtx(r.Context(), "Credential validation failed", logger.Err(err))
			InternalServerError(w, "Authentication failed")
		}
		return
	}

	tokenPair, err := h.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.ErrorCtx(r.Context(), "Token generation failed", logger.Err(err))
		InternalServerError(w, "Failed to generate token")
		return
	}

	// Last-login bookkeeping is non-critical; log and move on.
	if err := h.store.UpdateLastLogin(r.Context(), user.Username, time.Now()); err != nil {
		logger.WarnCtx(r.Context(), "Failed to update last login time",
			logger.Username(user.Username), logger.Err(err))
	}

	WriteOK(w, http.StatusOK, "Login successful", LoginData{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		User:         userToInfo(user),
	})
}

// Refresh handles POST /api/v1/auth/refresh.
// Exchanges a valid refresh token for a new token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.RefreshToken == "" {
		BadRequest(w, "Refresh token is required")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			Unauthorized(w, "Refresh token has expired")
			return
		}
		Unauthorized(w, "Invalid refresh token")
		return
	}

	// Re-fetch the user so revoked or disabled accounts stop refreshing.
	user, err := h.store.GetUser(r.Context(), claims.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			Unauthorized(w, "User no longer exists")
			return
		}
		logger.ErrorCtx(r.Context(), "Failed to load user for refresh", logger.Err(err))
		InternalServerError(w, "Failed to refresh token")
		return
	}

	if !user.Enabled {
		Forbidden(w, "User account is disabled")
		return
	}

	tokenPair, err := h.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.ErrorCtx(r.Context(), "Token generation failed", logger.Err(err))
		InternalServerError(w, "Failed to generate token")
		return
	}

	WriteOK(w, http.StatusOK, "Token refreshed", LoginData{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		User:         userToInfo(user),
	})
}

// Me handles GET /api/v1/auth/me.
// Returns the authenticated user's information.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	user, err := h.store.GetUser(r.Context(), claims.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			Unauthorized(w, "User no longer exists")
			return
		}
		logger.ErrorCtx(r.Context(), "Failed to load user", logger.Err(err))
		InternalServerError(w, "Failed to load user")
		return
	}

	WriteOK(w, http.StatusOK, "Authenticated user", userToInfo(user))
}

// userToInfo converts a User to its API representation.
func userToInfo(user *models.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
