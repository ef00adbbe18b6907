// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// emailRegex is compiled once at package level.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration. The account
// starts unverified; login is possible only after the verification link is
// followed.
type RegisterUserOutput struct {
	User *entity.User
	// VerifyLink is the verification URL also sent by email. Returned so
	// callers can surface it when email delivery is not configured.
	VerifyLink string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailSender     adapter.EmailSender
	verifyBaseURL   string
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailSender adapter.EmailSender,
	verifyBaseURL string,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailSender:     emailSender,
		verifyBaseURL:   verifyBaseURL,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingAuthFields,
			"name, email and password are required",
			nil,
		)
	}

	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingAuthFields,
			"invalid email format",
			nil,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyExists,
			"email already registered",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(name, email, passwordHash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.GenerateVerificationToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	verifyLink := fmt.Sprintf("%s/api/v1/auth/verify/%s", strings.TrimRight(uc.verifyBaseURL, "/"), token)

	// Email delivery failing must not undo the registration; the link is
	// still returned to the caller.
	if _, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Subject: "Verify your SmartSpend account",
		HTML:    verificationEmailHTML(user.Name, verifyLink),
		Text:    fmt.Sprintf("Hi %s, verify your SmartSpend account: %s", user.Name, verifyLink),
	}); err != nil {
		slog.Warn("failed to send verification email", "user_id", user.ID, "error", err)
	}

	return &RegisterUserOutput{
		User:       user,
		VerifyLink: verifyLink,
	}, nil
}

func verificationEmailHTML(name, link string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Welcome to SmartSpend. Please confirm your email address:</p><p><a href="%s">Verify my account</a></p><p>The link expires in 7 days.</p>`,
		name, link,
	)
}
