package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wedsnap/wedsnap-backend/internal/models"
)

type EventService struct {
	eventRepo EventRepository
	logger    *zap.Logger
}

func NewEventService(eventRepo EventRepository, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *EventService) ListEvents() ([]models.EventWithCounts, error) {
	return s.eventRepo.ListWithCounts()
}

// GetEventBySlug only resolves active events and never exposes admin_id.
func (s *EventService) GetEventBySlug(slug string) (*models.PublicEvent, error) {
	event, err := s.eventRepo.GetBySlugWithCounts(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	public := event.Public()
	return &public, nil
}

func (s *EventService) CreateEvent(adminID uint, req models.CreateEventRequest) (*models.Event, error) {
	var eventDate *time.Time
	if req.EventDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		eventDate = &parsed
	}

	event := &models.Event{
		EventName:   req.EventName,
		EventSlug:   req.EventSlug,
		EventDate:   eventDate,
		Description: req.Description,
		AdminID:     adminID,
		IsActive:    true,
	}

	// The slug's unique constraint is the only conflict check; no
	// check-then-insert window.
	created, err := s.eventRepo.Create(event)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.logger.Info("event created",
		zap.Uint("event_id", created.ID),
		zap.String("event_slug", created.EventSlug),
		zap.Uint("admin_id", adminID),
	)

	return created, nil
}
