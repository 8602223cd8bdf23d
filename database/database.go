package database

import (
	"fmt"
	"log"
	"os"

	"rategate-backend/internal/domain/billing"
	"rategate-backend/internal/domain/feedback"
	"rategate-backend/internal/domain/plans"
	"rategate-backend/internal/domain/subscriptions"
	"rategate-backend/internal/domain/tenants"
	"rategate-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},

		// billing
		&plans.Plan{},
		&subscriptions.Subscription{},
		&billing.Payment{},

		// product
		&tenants.Tenant{},
		&feedback.Feedback{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
