package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"billingapi/internal/auth"
	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// AuthService defines the register and login use cases.
type AuthService interface {
	// Register creates an account with a generated user_id. It fails with
	// ErrAlreadyExists when the email is registered.
	Register(ctx context.Context, email, password, role string) (*model.User, error)

	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens *auth.TokenIssuer

	decoyOnce sync.Once
	decoy     string
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, tokens *auth.TokenIssuer) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password, role string) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		UserID:   uuid.NewString(),
		Email:    email,
		Password: hash,
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.compareDecoy(password)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.UserID)
}

// compareDecoy spends one hash comparison on an unknown email so its
// response time matches a wrong password for a registered one.
func (s *authService) compareDecoy(password string) {
	s.decoyOnce.Do(func() {
		s.decoy, _ = s.hasher.Hash("decoy-" + uuid.NewString())
	})
	_ = s.hasher.Compare(s.decoy, password)
}
