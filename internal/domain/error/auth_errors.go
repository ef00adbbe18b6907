// Package error defines domain-specific errors for the SmartSpend application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrAccountNotVerified is returned when logging in before email verification.
	ErrAccountNotVerified = errors.New("account not verified")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidVerificationToken is returned when an email verification token
	// fails validation.
	ErrInvalidVerificationToken = errors.New("invalid verification token")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCredentials   AuthErrorCode = "AUTH-010001"
	ErrCodeEmailAlreadyExists   AuthErrorCode = "AUTH-010002"
	ErrCodeAccountNotVerified   AuthErrorCode = "AUTH-010003"
	ErrCodeWeakPassword         AuthErrorCode = "AUTH-010004"
	ErrCodeMissingAuthFields    AuthErrorCode = "AUTH-010005"
	ErrCodeInvalidVerifyToken   AuthErrorCode = "AUTH-010006"
	ErrCodeAuthUserNotFound     AuthErrorCode = "AUTH-010007"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
