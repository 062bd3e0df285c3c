package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/wedsnap/wedsnap-backend/internal/models"
)

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := NewEventService(repo, zap.NewNop())

	event, err := svc.CreateEvent(3, models.CreateEventRequest{
		EventName: "Smith & Johnson Wedding",
		EventSlug: "smith-johnson-wedding",
		EventDate: "2026-09-12",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if event.ID == 0 {
		t.Error("event id not assigned")
	}
	if !event.IsActive {
		t.Error("new event not active")
	}
	if event.AdminID != 3 {
		t.Errorf("admin id = %d, want 3", event.AdminID)
	}
	if event.EventDate == nil || event.EventDate.Format("2006-01-02") != "2026-09-12" {
		t.Errorf("event date = %v, want 2026-09-12", event.EventDate)
	}
}

func TestCreateEventDuplicateSlug(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := NewEventService(repo, zap.NewNop())

	req := models.CreateEventRequest{EventName: "First", EventSlug: "smith-johnson-wedding"}
	if _, err := svc.CreateEvent(1, req); err != nil {
		t.Fatalf("first CreateEvent: %v", err)
	}

	req.EventName = "Second"
	if _, err := svc.CreateEvent(1, req); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	if len(repo.events) != 1 {
		t.Errorf("%d events stored, want 1", len(repo.events))
	}
}

func TestCreateEventBadDate(t *testing.T) {
	t.Parallel()

	svc := NewEventService(&fakeEventRepo{}, zap.NewNop())

	_, err := svc.CreateEvent(1, models.CreateEventRequest{
		EventName: "Bad Date",
		EventSlug: "bad-date",
		EventDate: "12/09/2026",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetEventBySlug(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	repo.Create(&models.Event{EventName: "Active", EventSlug: "active-wedding", AdminID: 9, IsActive: true})
	repo.Create(&models.Event{EventName: "Inactive", EventSlug: "inactive-wedding", AdminID: 9, IsActive: false})
	svc := NewEventService(repo, zap.NewNop())

	event, err := svc.GetEventBySlug("active-wedding")
	if err != nil {
		t.Fatalf("GetEventBySlug: %v", err)
	}
	if event.EventName != "Active" {
		t.Errorf("event name = %q", event.EventName)
	}

	// Inactive events are invisible to the public path.
	if _, err := svc.GetEventBySlug("inactive-wedding"); !errors.Is(err, ErrNotFound) {
		t.Errorf("inactive event err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetEventBySlug("no-such-wedding"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown slug err = %v, want ErrNotFound", err)
	}
}
