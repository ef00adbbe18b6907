// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/adapter"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Verified = true
			return nil
		}
	}
	return domainerror.ErrUserNotFound
}

type fakePasswordService struct{}

func (s fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (s fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokenService struct{}

func (s fakeTokenService) GenerateTokenPair(_ context.Context, _ uuid.UUID, _ string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s fakeTokenService) RefreshTokens(_ context.Context, _ string) (*adapter.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s fakeTokenService) GenerateVerificationToken(userID uuid.UUID, _ string) (string, error) {
	return "verify-" + userID.String(), nil
}

func (s fakeTokenService) ValidateVerificationToken(_ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type fakeEmailSender struct {
	sent []adapter.SendEmailInput
	fail bool
}

func (s *fakeEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.fail {
		return nil, errors.New("delivery down")
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "fake"}, nil
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	const baseURL = "http://localhost:8080"

	newUseCase := func(repo *fakeUserRepo, sender *fakeEmailSender) *RegisterUserUseCase {
		return NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{}, sender, baseURL)
	}

	t.Run("creates an unverified account and emails the verify link", func(t *testing.T) {
		repo := newFakeUserRepo()
		sender := &fakeEmailSender{}
		uc := newUseCase(repo, sender)

		output, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Ana",
			Email:    "Ana@Example.com",
			Password: "Sup3rSecret!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Email != "ana@example.com" {
			t.Errorf("expected normalized email, got %s", output.User.Email)
		}
		if output.User.Verified {
			t.Error("expected account to start unverified")
		}
		if output.User.PasswordHash == "Sup3rSecret!" {
			t.Error("expected password to be hashed")
		}

		if !strings.HasPrefix(output.VerifyLink, baseURL+"/api/v1/auth/verify/") {
			t.Errorf("unexpected verify link %s", output.VerifyLink)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "ana@example.com" {
			t.Errorf("expected email to ana@example.com, got %s", sender.sent[0].To)
		}
		if !strings.Contains(sender.sent[0].HTML, output.VerifyLink) {
			t.Error("expected email body to carry the verify link")
		}
	})

	t.Run("email delivery failure does not undo the registration", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newUseCase(repo, &fakeEmailSender{fail: true})

		output, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "Sup3rSecret!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.VerifyLink == "" {
			t.Error("expected verify link to still be returned")
		}
		if _, ok := repo.users["ana@example.com"]; !ok {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newUseCase(repo, &fakeEmailSender{})

		if _, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "Sup3rSecret!"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Other", Email: "ANA@example.com", Password: "An0therSecret!"})
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("weak password is rejected before any write", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newUseCase(repo, &fakeEmailSender{})

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "short"})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
		if len(repo.users) != 0 {
			t.Error("expected no user to be persisted")
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		uc := newUseCase(newFakeUserRepo(), &fakeEmailSender{})

		var authErr *domainerror.AuthError
		_, err := uc.Execute(ctx, RegisterUserInput{Name: "  ", Email: "ana@example.com", Password: "Sup3rSecret!"})
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingAuthFields {
			t.Fatalf("expected missing-fields error, got %v", err)
		}

		_, err = uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "not-an-email", Password: "Sup3rSecret!"})
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingAuthFields {
			t.Fatalf("expected missing-fields error for bad email, got %v", err)
		}
	})
}
