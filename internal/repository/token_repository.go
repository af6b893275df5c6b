package repository

import (
	"context"

	"gorm.io/gorm"

	"adboard/internal/model"
)

// TokenRepository persists issued session tokens. Tokens are never updated;
// expiry is decided by the caller against IssuedAt.
type TokenRepository interface {
	Create(ctx context.Context, token *model.Token) error
	FindByValue(ctx context.Context, value string) (*model.Token, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindByValue(ctx context.Context, value string) (*model.Token, error) {
	var token model.Token
	if err := r.db.WithContext(ctx).Preload("User").Where("value = ?", value).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
