package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"adboard/internal/auth"
	apperrors "adboard/internal/errors"
	"adboard/internal/model"
	"adboard/internal/repository"
)

// UserUpdate carries the optional fields of a partial user update. Nil means
// "leave unchanged". Role is deliberately absent: there is no self-promotion
// path through this service.
type UserUpdate struct {
	Name     *string
	Password *string
}

// UserService exposes user record operations gated by the ownership policy.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, identity *model.User, id uint, patch UserUpdate) (*model.User, error)
	Delete(ctx context.Context, identity *model.User, id uint) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Update applies the supplied fields to the user record. An empty patch is a
// valid no-op. A password change re-hashes.
func (s *userService) Update(ctx context.Context, identity *model.User, id uint, patch UserUpdate) (*model.User, error) {
	if !auth.CanMutate(identity, id) {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != user.Name {
		existing, err := s.users.FindByName(ctx, *patch.Name)
		if err == nil && existing != nil {
			return nil, apperrors.ErrNameTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check user name: %w", err)
		}
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes the user; owned tokens and advertisements cascade.
func (s *userService) Delete(ctx context.Context, identity *model.User, id uint) error {
	if !auth.CanMutate(identity, id) {
		return apperrors.ErrForbidden
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
