package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"adboard/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one shared in-memory DB per test, so the pool's connections all see it
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Token{}, &model.Advertisement{}))
	return gormDB
}

func seedSearchFixtures(t *testing.T, gormDB *gorm.DB) uint {
	t.Helper()
	owner := &model.User{Name: "leonid", PasswordHash: "hash", Role: model.RoleUser}
	require.NoError(t, gormDB.Create(owner).Error)

	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	fixtures := []model.Advertisement{
		{Title: "MacBook Pro 14", Description: "M3", Price: decimal.RequireFromString("1899.00"), Author: "leonid", UserID: owner.ID, CreatedAt: base},
		{Title: "MacBook Air", Description: "M2", Price: decimal.RequireFromString("999.00"), Author: "maria", UserID: owner.ID, CreatedAt: base.AddDate(0, 0, 1)},
		{Title: "Thinkpad X1", Description: "Gen 11", Price: decimal.RequireFromString("1250.00"), Author: "Leon", UserID: owner.ID, CreatedAt: base.AddDate(0, 0, 2)},
		{Title: "Road bike", Description: "56cm", Price: decimal.RequireFromString("420.00"), Author: "maria", UserID: owner.ID, CreatedAt: base.AddDate(0, 0, 3)},
	}
	for i := range fixtures {
		require.NoError(t, gormDB.Create(&fixtures[i]).Error)
	}
	return owner.ID
}

func TestSearchIDsNoFilters(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	ids, err := repo.SearchIDs(context.Background(), SearchFilter{})

	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4}, ids)
}

func TestSearchIDsTitleCaseInsensitive(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	ids, err := repo.SearchIDs(context.Background(), SearchFilter{Title: "mac"})

	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, ids)
}

func TestSearchIDsConjunction(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	// title AND price_max must both hold
	max := decimal.RequireFromString("2000")
	ids, err := repo.SearchIDs(context.Background(), SearchFilter{Title: "mac", PriceMax: &max})
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, ids)

	max = decimal.RequireFromString("1000")
	ids, err = repo.SearchIDs(context.Background(), SearchFilter{Title: "mac", PriceMax: &max})
	assert.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)
}

func TestSearchIDsAuthorSubstring(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	ids, err := repo.SearchIDs(context.Background(), SearchFilter{Author: "leon"})

	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 3}, ids)
}

func TestSearchIDsPriceRangeInclusive(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	min := decimal.RequireFromString("999.00")
	max := decimal.RequireFromString("1250.00")
	ids, err := repo.SearchIDs(context.Background(), SearchFilter{PriceMin: &min, PriceMax: &max})

	assert.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, ids)
}

func TestSearchIDsCreatedRange(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	from := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 12, 23, 59, 59, 0, time.UTC)
	ids, err := repo.SearchIDs(context.Background(), SearchFilter{CreatedFrom: &from, CreatedTo: &to})

	assert.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, ids)
}

func TestSearchIDsNoMatch(t *testing.T) {
	gormDB := openTestDB(t)
	seedSearchFixtures(t, gormDB)
	repo := NewAdvertisementRepository(gormDB)

	ids, err := repo.SearchIDs(context.Background(), SearchFilter{Title: "submarine"})

	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUserDeleteCascades(t *testing.T) {
	gormDB := openTestDB(t)
	ownerID := seedSearchFixtures(t, gormDB)
	require.NoError(t, gormDB.Create(&model.Token{Value: "tok", UserID: ownerID, IssuedAt: time.Now()}).Error)

	users := NewUserRepository(gormDB)
	require.NoError(t, users.Delete(context.Background(), ownerID))

	var adCount, tokenCount int64
	require.NoError(t, gormDB.Model(&model.Advertisement{}).Count(&adCount).Error)
	require.NoError(t, gormDB.Model(&model.Token{}).Count(&tokenCount).Error)
	assert.Zero(t, adCount)
	assert.Zero(t, tokenCount)
}
