package main

import (
	"context"
	"log"
	"os"

	"gorm.io/gorm"

	"finreview/internal/auth"
	"finreview/internal/config"
	"finreview/internal/db"
	"finreview/internal/errors"
	"finreview/internal/model"
	"finreview/internal/repository"
	"finreview/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FinancialInstitution{},
		&model.Category{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	seedAdmin(ctx, gormDB, cfg)
	seedCategories(ctx, gormDB)
	seedInstitutions(ctx, gormDB)

	log.Println("Seed complete")
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB, cfg *config.Config) {
	users := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	email := service.NormalizeEmail(getEnv("ADMIN_EMAIL", "admin@example.com"))
	password := getEnv("ADMIN_PASSWORD", "admin-password")

	if _, err := users.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists, skipping", email)
		return
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsApproved:   true,
		EvidenceKey:  "seed/admin",
	}
	if err := users.Create(ctx, admin); err != nil {
		if err == errors.ErrDuplicateEmail {
			log.Printf("Admin %s already exists, skipping", email)
			return
		}
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Created admin %s", email)
}

func seedCategories(ctx context.Context, gormDB *gorm.DB) {
	categories := repository.NewCategoryRepository(gormDB)

	existing, err := categories.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Categories already seeded (%d present), skipping", len(existing))
		return
	}

	for _, c := range []model.Category{
		{Name: "General Discussion", Description: "Anything about financial institutions."},
		{Name: "Savings & Deposits", Description: "Rates, terms and experiences with deposit products."},
		{Name: "Investing", Description: "Brokerages, funds and securities firms."},
		{Name: "Insurance", Description: "Life, health and property insurance providers."},
	} {
		category := c
		if err := categories.Create(ctx, &category); err != nil {
			log.Fatalf("Failed to create category %q: %v", c.Name, err)
		}
	}
	log.Println("Seeded categories")
}

func seedInstitutions(ctx context.Context, gormDB *gorm.DB) {
	institutions := repository.NewInstitutionRepository(gormDB)

	existing, err := institutions.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list institutions: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Institutions already seeded (%d present), skipping", len(existing))
		return
	}

	for _, i := range []model.FinancialInstitution{
		{
			Name:        "First Harbor Bank",
			Type:        model.InstitutionTypeBank,
			Description: "Retail bank with nationwide branches and online banking.",
			Location:    "Tokyo",
			Website:     "https://firstharbor.example.com",
		},
		{
			Name:        "Meridian Securities",
			Type:        model.InstitutionTypeSecurities,
			Description: "Online brokerage for equities and funds.",
			Location:    "Osaka",
			Website:     "https://meridian.example.com",
		},
		{
			Name:        "Coastline Mutual Insurance",
			Type:        model.InstitutionTypeInsurance,
			Description: "Life and medical insurance provider.",
			Location:    "Nagoya",
		},
	} {
		institution := i
		if err := institutions.Create(ctx, &institution); err != nil {
			log.Fatalf("Failed to create institution %q: %v", i.Name, err)
		}
	}
	log.Println("Seeded institutions")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
