package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"newsboard/internal/config"
	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

// bcryptCost matches the work factor used for stored password hashes.
const bcryptCost = 10

// RegisterInput represents the input parameters for creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput represents the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// Service provides account registration and credential verification.
type Service struct {
	Repo   repository.UserRepository
	Policy config.SecurityPolicy
}

// Register creates a new account with a bcrypt-hashed password.
// It validates every field and reports all violations at once.
// Returns ErrUserExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	var violations entity.Violations
	if v := entity.ValidateUsername(in.Username); v != nil {
		violations = append(violations, v)
	}
	if v := entity.ValidateEmail(in.Email); v != nil {
		violations = append(violations, v)
	}
	if v := s.validatePassword(in.Password); v != nil {
		violations = append(violations, v)
	}
	if len(violations) > 0 {
		return nil, violations
	}

	// 重複チェックはハッシュ化より先に行う
	exists, err := s.Repo.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// UNIQUE制約が同時登録の取りこぼしを拾う
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies the presented credentials.
// Returns ErrInvalidCredentials for both unknown email and wrong password.
func (s *Service) Login(ctx context.Context, in LoginInput) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) validatePassword(password string) *entity.ValidationError {
	minLen := s.Policy.MinPasswordLength
	if minLen <= 0 {
		minLen = config.DefaultSecurityPolicy().MinPasswordLength
	}
	if len(password) < minLen {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters long", minLen),
		}
	}
	for _, weak := range s.Policy.WeakPasswords {
		if strings.EqualFold(password, weak) {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}
