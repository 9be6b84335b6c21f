package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// Token validation errors.
var (
	// ErrInvalidToken is returned when a token fails parsing or signature validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidTokenType is returned when a refresh token is presented where
	// an access token is expected, or vice versa.
	ErrInvalidTokenType = errors.New("invalid token type")
)

// MinSecretLength is the minimum length of the HMAC signing secret.
// Shorter secrets make HS256 tokens practical to brute-force.
const MinSecretLength = 32

// JWTConfig configures the JWT service.
type JWTConfig struct {
	// Secret is the HMAC-SHA256 signing key. Must be at least 32 characters.
	Secret string

	// Issuer is stamped as the "iss" claim on every token and verified
	// during validation. Default: "wizzzey-api".
	Issuer string

	// AccessTokenDuration is the lifetime of access tokens.
	// Default: 15m
	AccessTokenDuration time.Duration

	// RefreshTokenDuration is the lifetime of refresh tokens.
	// Default: 168h (7 days)
	RefreshTokenDuration time.Duration
}

// TokenPair is the result of a successful authentication: a short-lived
// access token for API calls plus a long-lived refresh token for obtaining
// new access tokens without re-entering credentials.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// JWTService issues and validates HMAC-signed JWTs for the admin API.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a JWT service from the given configuration.
// Returns an error if the secret is missing or shorter than MinSecretLength.
func NewJWTService(config JWTConfig) (*JWTService, error) {
	if config.Secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	if len(config.Secret) < MinSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters, got %d", MinSecretLength, len(config.Secret))
	}
	if config.Issuer == "" {
		config.Issuer = "wizzzey-api"
	}
	if config.AccessTokenDuration == 0 {
		config.AccessTokenDuration = 15 * time.Minute
	}
	if config.RefreshTokenDuration == 0 {
		config.RefreshTokenDuration = 7 * 24 * time.Hour
	}

	return &JWTService{config: config}, nil
}

// GenerateTokenPair creates an access and refresh token for the given user.
func (s *JWTService) GenerateTokenPair(user *models.User) (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(s.config.AccessTokenDuration)

	accessToken, err := s.generateToken(user, TokenTypeAccess, now, accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateToken(user, TokenTypeRefresh, now, now.Add(s.config.RefreshTokenDuration))
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.AccessTokenDuration / time.Second),
		ExpiresAt:    accessExpiry,
	}, nil
}

// generateToken signs a single token of the given type.
func (s *JWTService) generateToken(user *models.User, tokenType TokenType, issuedAt, expiresAt time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// ValidateAccessToken parses and validates an access token.
// Returns ErrInvalidTokenType if a refresh token is presented instead.
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.validateToken(tokenString, TokenTypeAccess)
}

// ValidateRefreshToken parses and validates a refresh token.
// Returns ErrInvalidTokenType if an access token is presented instead.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.validateToken(tokenString, TokenTypeRefresh)
}

func (s *JWTService) validateToken(tokenString string, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but our HMAC method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithIssuer(s.config.Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expected {
		return nil, ErrInvalidTokenType
	}

	return claims, nil
}
