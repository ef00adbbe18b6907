package auth

import (
	"context"
	"fmt"

	"github.com/smartspend/backend/internal/application/adapter"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// VerifyEmailInput represents the input for email verification.
type VerifyEmailInput struct {
	Token string
}

// VerifyEmailUseCase flips the verified flag once the emailed link is
// followed. Verification is idempotent; following the link twice succeeds.
type VerifyEmailUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewVerifyEmailUseCase creates a new VerifyEmailUseCase instance.
func NewVerifyEmailUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute validates the verification token and marks the account verified.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, input VerifyEmailInput) error {
	claims, err := uc.tokenService.ValidateVerificationToken(input.Token)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidVerifyToken,
			"verification token is invalid or expired",
			domainerror.ErrInvalidVerificationToken,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, claims.UserID); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeAuthUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.userRepo.MarkVerified(ctx, claims.UserID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	return nil
}
