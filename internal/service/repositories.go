package service

import (
	"github.com/wedsnap/wedsnap-backend/internal/models"
)

// Narrow views of the repository layer, satisfied by the structs in
// internal/repository. Services depend on these so they can be exercised
// without a database.

type AdminRepository interface {
	GetByID(id uint) (*models.Admin, error)
	GetByUsername(username string) (*models.Admin, error)
}

type EventRepository interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	GetActiveBySlug(slug string) (*models.Event, error)
	ListWithCounts() ([]models.EventWithCounts, error)
	GetBySlugWithCounts(slug string) (*models.EventWithCounts, error)
}

type PhotoRepository interface {
	Create(photo *models.Photo) error
	Delete(id uint) error
	ListByEvent(eventID uint, status string, limit, offset int) ([]models.PhotoWithFaceCount, error)
	CountByEvent(eventID uint, status string) (int64, error)
}

type GuestSearchRepository interface {
	Create(search *models.GuestSearch) error
}
