package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wedsnap/wedsnap-backend/internal/models"
)

// New opens the connection and migrates the schema. TranslateError is on
// so unique-constraint violations surface as gorm.ErrDuplicatedKey; the
// event slug constraint is the single source of slug-conflict errors.
func New(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Event{},
		&models.Photo{},
		&models.FaceEncoding{},
		&models.GuestSearch{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
