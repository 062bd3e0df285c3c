package repository

import (
	"github.com/wedsnap/wedsnap-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create relies on the unique constraint on event_slug; a duplicate slug
// comes back as gorm.ErrDuplicatedKey. There is no separate pre-check, so
// concurrent requests cannot race past it.
func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetActiveBySlug(slug string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("event_slug = ? AND is_active = ?", slug, true).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListWithCounts() ([]models.EventWithCounts, error) {
	var events []models.EventWithCounts
	err := r.db.Raw(`
		SELECT
			e.id, e.event_name, e.event_slug, e.event_date, e.description,
			e.admin_id, e.is_active, e.created_at,
			COUNT(DISTINCT p.id) AS photo_count,
			COUNT(DISTINCT CASE WHEN p.processing_status = 'ready' THEN p.id END) AS processed_photos,
			COUNT(DISTINCT gs.id) AS total_searches
		FROM events e
		LEFT JOIN photos p ON p.event_id = e.id
		LEFT JOIN guest_searches gs ON gs.event_id = e.id
		GROUP BY e.id
		ORDER BY e.created_at DESC`).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetBySlugWithCounts(slug string) (*models.EventWithCounts, error) {
	var event models.EventWithCounts
	result := r.db.Raw(`
		SELECT
			e.id, e.event_name, e.event_slug, e.event_date, e.description,
			e.admin_id, e.is_active, e.created_at,
			COUNT(p.id) AS photo_count,
			COUNT(CASE WHEN p.processing_status = 'ready' THEN p.id END) AS processed_photos
		FROM events e
		LEFT JOIN photos p ON p.event_id = e.id
		WHERE e.event_slug = ? AND e.is_active = ?
		GROUP BY e.id`, slug, true).Scan(&event)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &event, nil
}
