package database

import (
	"log"

	"github.com/fitclub/gym-registration-api/internal/config"
	"github.com/fitclub/gym-registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the record store and migrates the schema. TranslateError is
// on so duplicate-key violations surface as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	if err := db.AutoMigrate(&models.Registration{}); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
