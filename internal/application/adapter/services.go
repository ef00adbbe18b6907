package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenPair represents an access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims of a token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService defines the interface for token generation and validation.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair and
	// persists the refresh token.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// RefreshTokens rotates a refresh token into a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)

	// GenerateVerificationToken generates a signed email-verification token.
	GenerateVerificationToken(userID uuid.UUID, email string) (string, error)

	// ValidateVerificationToken validates an email-verification token.
	ValidateVerificationToken(token string) (*TokenClaims, error)
}

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates minimum password requirements.
	ValidatePasswordStrength(password string) error
}

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// SummaryCache caches serialized dashboard summaries per user.
// Implementations must treat a miss as (nil, nil), not an error.
type SummaryCache interface {
	// Get returns the cached payload for a user, or nil on miss.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Set stores the payload for a user with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, payload []byte, ttl time.Duration) error

	// Invalidate drops the cached payload for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// InsightRequest carries the aggregated figures an insight is generated from.
type InsightRequest struct {
	CategoryTotals map[string]decimal.Decimal
	Balance        decimal.Decimal
	BurnRate       decimal.Decimal
	DaysLeft       decimal.Decimal
}

// InsightService defines the interface for AI-generated spending insights.
type InsightService interface {
	// IsAvailable checks if the service is configured.
	IsAvailable() bool

	// GenerateInsight produces a short natural-language spending insight.
	GenerateInsight(ctx context.Context, request *InsightRequest) (string, error)
}
