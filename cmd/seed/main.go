package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"adboard/internal/config"
	"adboard/internal/db"
	"adboard/internal/model"
	"adboard/internal/repository"
	"adboard/internal/service"
)

// seedAd is a demo advertisement fixture.
type seedAd struct {
	Title       string
	Description string
	Price       string
	Author      string
}

var demoAds = []seedAd{
	{"MacBook Pro 14", "M3, 18GB RAM, like new", "1899.00", "leonid"},
	{"Thinkpad X1 Carbon", "Gen 11, 32GB RAM, warranty until 2027", "1250.00", "leonid"},
	{"Road bike", "Aluminium frame, 56cm, recently serviced", "420.00", "maria"},
	{"Bookshelf", "Oak, 180x80cm, pickup only", "75.50", "maria"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Token{}, &model.Advertisement{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	adRepo := repository.NewAdvertisementRepository(gormDB)
	authService := service.NewAuthService(userRepo, tokenRepo)

	ctx := context.Background()

	admin, err := seedAdmin(ctx, authService, userRepo, cfg.SeedAdminName, cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, skipped, err := seedAdvertisements(ctx, adRepo, admin)
	if err != nil {
		log.Fatalf("Failed to seed advertisements: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user: %s (id=%d)", admin.Name, admin.ID)
	log.Printf("  - Advertisements created: %d", created)
	log.Printf("  - Advertisements already present: %d", skipped)
}

// seedAdmin registers the admin user if it does not exist yet.
func seedAdmin(ctx context.Context, authService service.AuthService, users repository.UserRepository, name, password string) (*model.User, error) {
	existing, err := users.FindByName(ctx, name)
	if err == nil {
		log.Printf("Admin user %q already exists", name)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return authService.Register(ctx, name, password, model.RoleAdmin)
}

// seedAdvertisements inserts the demo fixtures owned by the admin, skipping
// titles that already exist.
func seedAdvertisements(ctx context.Context, ads repository.AdvertisementRepository, owner *model.User) (created int, skipped int, err error) {
	for _, fixture := range demoAds {
		existing, err := ads.SearchIDs(ctx, repository.SearchFilter{Title: fixture.Title})
		if err != nil {
			return created, skipped, err
		}
		if len(existing) > 0 {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(fixture.Price)
		if err != nil {
			return created, skipped, err
		}
		ad := &model.Advertisement{
			Title:       fixture.Title,
			Description: fixture.Description,
			Price:       price,
			Author:      fixture.Author,
			UserID:      owner.ID,
		}
		if err := ads.Create(ctx, ad); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
