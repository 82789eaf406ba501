package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Indrani-08/recosave-backend/models"
)

var DB *gorm.DB

// Connect opens the Postgres connection from environment configuration
// and runs migrations. It is called once at startup.
func Connect() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		envOrDefault("DB_HOST", "localhost"),
		envOrDefault("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		envOrDefault("DB_NAME", "recosave"),
		envOrDefault("DB_PORT", "5432"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection successfully opened.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migrated successfully.")
}

// Open attaches an already-constructed dialector (tests use SQLite, the
// original system's second backend) and runs the same migrations.
func Open(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate creates the users and enrollments tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Enrollment{})
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
