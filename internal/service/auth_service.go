package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"adboard/internal/auth"
	apperrors "adboard/internal/errors"
	"adboard/internal/model"
	"adboard/internal/repository"
)

const bcryptCost = 10

// dummyHash is compared against when login names an unknown user, so the
// request costs one bcrypt verification either way.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// AuthService handles registration, login and token resolution.
type AuthService interface {
	Register(ctx context.Context, name, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, name, password string) (*model.Token, error)
	ResolveToken(ctx context.Context, value string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password. The raw password is
// never stored or logged.
func (s *authService) Register(ctx context.Context, name, password string, role model.Role) (*model.User, error) {
	if role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	existing, err := s.users.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrNameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a fresh token bound to the user.
func (s *authService) Login(ctx context.Context, name, password string) (*model.Token, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("find user: %w", err)
		}
		// Burn a comparison so unknown names cost the same as bad passwords.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token := &model.Token{
		Value:    auth.NewTokenValue(),
		UserID:   user.ID,
		IssuedAt: time.Now(),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return token, nil
}

// ResolveToken returns the user owning a valid token. Unknown and expired
// tokens are indistinguishable to the caller.
func (s *authService) ResolveToken(ctx context.Context, value string) (*model.User, error) {
	if value == "" {
		return nil, apperrors.ErrInvalidToken
	}

	token, err := s.tokens.FindByValue(ctx, value)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	if !auth.TokenValid(token.IssuedAt, time.Now()) {
		return nil, apperrors.ErrInvalidToken
	}
	return &token.User, nil
}
