package models

import (
	"time"
)

type Event struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	EventName   string     `json:"event_name" gorm:"not null"`
	EventSlug   string     `json:"event_slug" gorm:"unique;not null"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Description string     `json:"description"`
	AdminID     uint       `json:"admin_id" gorm:"not null"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateEventRequest struct {
	EventName   string `json:"event_name" validate:"required"`
	EventSlug   string `json:"event_slug" validate:"required,slug"`
	EventDate   string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// EventWithCounts is the admin-facing listing row: the event joined with
// its photo, ready-photo and guest-search aggregates.
type EventWithCounts struct {
	ID              uint       `json:"id"`
	EventName       string     `json:"event_name"`
	EventSlug       string     `json:"event_slug"`
	EventDate       *time.Time `json:"event_date,omitempty"`
	Description     string     `json:"description"`
	AdminID         uint       `json:"admin_id"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	PhotoCount      int64      `json:"photo_count"`
	ProcessedPhotos int64      `json:"processed_photos"`
	TotalSearches   int64      `json:"total_searches"`
}

// PublicEvent is what guests see: no admin_id, no search stats.
type PublicEvent struct {
	ID              uint       `json:"id"`
	EventName       string     `json:"event_name"`
	EventSlug       string     `json:"event_slug"`
	EventDate       *time.Time `json:"event_date,omitempty"`
	Description     string     `json:"description"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	PhotoCount      int64      `json:"photo_count"`
	ProcessedPhotos int64      `json:"processed_photos"`
}

func (e *EventWithCounts) Public() PublicEvent {
	return PublicEvent{
		ID:              e.ID,
		EventName:       e.EventName,
		EventSlug:       e.EventSlug,
		EventDate:       e.EventDate,
		Description:     e.Description,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		PhotoCount:      e.PhotoCount,
		ProcessedPhotos: e.ProcessedPhotos,
	}
}
