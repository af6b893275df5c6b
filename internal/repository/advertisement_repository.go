package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"adboard/internal/model"
)

// SearchFilter restricts an advertisement search. Nil or empty fields impose
// no constraint; all present filters must match.
type SearchFilter struct {
	Title       string
	Author      string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AdvertisementRepository defines persistence operations for advertisements.
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *model.Advertisement) error
	FindByID(ctx context.Context, id uint) (*model.Advertisement, error)
	Update(ctx context.Context, ad *model.Advertisement) error
	Delete(ctx context.Context, id uint) error
	SearchIDs(ctx context.Context, filter SearchFilter) ([]uint, error)
}

type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository builds a GORM-backed repository.
func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *model.Advertisement) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *advertisementRepository) FindByID(ctx context.Context, id uint) (*model.Advertisement, error) {
	var ad model.Advertisement
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) Update(ctx context.Context, ad *model.Advertisement) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *advertisementRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Advertisement{}, id).Error
}

// SearchIDs returns the ids of advertisements matching every present filter,
// ordered by id ascending. Substring matches on title and author are
// case-insensitive; price and created_at ranges are inclusive.
func (r *advertisementRepository) SearchIDs(ctx context.Context, filter SearchFilter) ([]uint, error) {
	q := r.db.WithContext(ctx).Model(&model.Advertisement{})

	if filter.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Author != "" {
		q = q.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(filter.Author)+"%")
	}
	if filter.PriceMin != nil {
		q = q.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("price <= ?", filter.PriceMax)
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		q = q.Where("created_at <= ?", filter.CreatedTo)
	}

	var ids []uint
	if err := q.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
