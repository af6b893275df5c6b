package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"adboard/internal/auth"
	apperrors "adboard/internal/errors"
	"adboard/internal/model"
	"adboard/internal/repository"
)

// AdvertisementUpdate carries the optional fields of a partial advertisement
// update. Nil means "leave unchanged".
type AdvertisementUpdate struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Author      *string
}

// AdvertisementService exposes advertisement operations. Mutations are gated
// by the owner-or-admin policy; reads and search are open.
type AdvertisementService interface {
	Create(ctx context.Context, owner *model.User, title, description string, price decimal.Decimal, author string) (*model.Advertisement, error)
	Get(ctx context.Context, id uint) (*model.Advertisement, error)
	Update(ctx context.Context, identity *model.User, id uint, patch AdvertisementUpdate) (*model.Advertisement, error)
	Delete(ctx context.Context, identity *model.User, id uint) error
	Search(ctx context.Context, filter repository.SearchFilter) ([]uint, error)
}

type advertisementService struct {
	ads repository.AdvertisementRepository
}

// NewAdvertisementService builds an AdvertisementService over the repository.
func NewAdvertisementService(ads repository.AdvertisementRepository) AdvertisementService {
	return &advertisementService{ads: ads}
}

// Create persists a new advertisement owned by the caller. The price is
// validated before any storage is touched; created_at is assigned on insert.
func (s *advertisementService) Create(ctx context.Context, owner *model.User, title, description string, price decimal.Decimal, author string) (*model.Advertisement, error) {
	if price.IsNegative() {
		return nil, apperrors.ErrInvalidPrice
	}

	ad := &model.Advertisement{
		Title:       title,
		Description: description,
		Price:       price,
		Author:      author,
		UserID:      owner.ID,
	}
	if err := s.ads.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create advertisement: %w", err)
	}
	return ad, nil
}

func (s *advertisementService) Get(ctx context.Context, id uint) (*model.Advertisement, error) {
	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAdvertisementNotFound
		}
		return nil, fmt.Errorf("find advertisement: %w", err)
	}
	return ad, nil
}

// Update applies the supplied fields. An empty patch is a valid no-op and
// still succeeds against an existing record.
func (s *advertisementService) Update(ctx context.Context, identity *model.User, id uint, patch AdvertisementUpdate) (*model.Advertisement, error) {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanMutate(identity, ad.UserID) {
		return nil, apperrors.ErrForbidden
	}

	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, apperrors.ErrInvalidPrice
	}

	if patch.Title != nil {
		ad.Title = *patch.Title
	}
	if patch.Description != nil {
		ad.Description = *patch.Description
	}
	if patch.Price != nil {
		ad.Price = *patch.Price
	}
	if patch.Author != nil {
		ad.Author = *patch.Author
	}

	if err := s.ads.Update(ctx, ad); err != nil {
		return nil, fmt.Errorf("update advertisement: %w", err)
	}
	return ad, nil
}

// Delete removes the advertisement. A second delete of the same id reports
// not found.
func (s *advertisementService) Delete(ctx context.Context, identity *model.User, id uint) error {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(identity, ad.UserID) {
		return apperrors.ErrForbidden
	}

	if err := s.ads.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete advertisement: %w", err)
	}
	return nil
}

// Search returns matching advertisement ids ordered by id ascending.
func (s *advertisementService) Search(ctx context.Context, filter repository.SearchFilter) ([]uint, error) {
	ids, err := s.ads.SearchIDs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search advertisements: %w", err)
	}
	return ids, nil
}
