package repository

import (
	"github.com/wedsnap/wedsnap-backend/internal/models"
	"gorm.io/gorm"
)

type GuestSearchRepository struct {
	db *gorm.DB
}

func NewGuestSearchRepository(db *gorm.DB) *GuestSearchRepository {
	return &GuestSearchRepository{db: db}
}

// Searches are an append-only audit log; there is no update path.
func (r *GuestSearchRepository) Create(search *models.GuestSearch) error {
	return r.db.Create(search).Error
}
