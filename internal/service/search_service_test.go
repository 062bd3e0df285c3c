package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/wedsnap/wedsnap-backend/internal/matcher"
	"github.com/wedsnap/wedsnap-backend/internal/models"
)

func newSearchFixture(t *testing.T) (*SearchService, *fakeSearchRepo) {
	t.Helper()

	eventRepo := &fakeEventRepo{}
	eventRepo.Create(&models.Event{EventName: "Wedding", EventSlug: "the-wedding", AdminID: 1, IsActive: true})
	eventRepo.Create(&models.Event{EventName: "Old", EventSlug: "old-wedding", AdminID: 1, IsActive: false})

	searchRepo := &fakeSearchRepo{}
	svc := NewSearchService(eventRepo, searchRepo, matcher.Noop{}, zap.NewNop())
	return svc, searchRepo
}

func probeGone(t *testing.T, filename string) {
	t.Helper()

	if filename == "" {
		t.Fatal("no probe filename recorded")
	}
	if _, err := os.Stat(filepath.Join(os.TempDir(), filename)); !os.IsNotExist(err) {
		t.Errorf("probe file %q still on disk", filename)
	}
}

func TestSearchRecordsAuditRow(t *testing.T) {
	t.Parallel()

	svc, searchRepo := newSearchFixture(t)
	probe := makeFileHeaders(t, "guestPhoto", []testFile{
		{name: "selfie.jpg", contentType: "image/jpeg", data: []byte("selfie")},
	})[0]

	resp, err := svc.Search(context.Background(), "the-wedding", probe, "203.0.113.9")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if !resp.Success {
		t.Error("response not successful")
	}
	if resp.SearchID == 0 {
		t.Error("search id not assigned")
	}
	if resp.Matches == nil || len(resp.Matches) != 0 {
		t.Errorf("matches = %v, want empty list", resp.Matches)
	}

	if len(searchRepo.searches) != 1 {
		t.Fatalf("%d audit rows, want 1", len(searchRepo.searches))
	}
	row := searchRepo.searches[0]
	if row.EventID != 1 || row.MatchesFound != 0 || row.IPAddress != "203.0.113.9" {
		t.Errorf("audit row = %+v", row)
	}

	probeGone(t, row.GuestPhotoFilename)
}

func TestSearchWorksOnNonImageProbe(t *testing.T) {
	t.Parallel()

	// The stub does not decode the probe; a garbage file still yields one
	// audit row and an empty match list.
	svc, searchRepo := newSearchFixture(t)
	probe := makeFileHeaders(t, "guestPhoto", []testFile{
		{name: "garbage.bin", contentType: "application/octet-stream", data: []byte{0xde, 0xad}},
	})[0]

	resp, err := svc.Search(context.Background(), "the-wedding", probe, "203.0.113.9")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Matches) != 0 {
		t.Errorf("matches = %v, want none", resp.Matches)
	}
	if len(searchRepo.searches) != 1 {
		t.Fatalf("%d audit rows, want 1", len(searchRepo.searches))
	}
	probeGone(t, searchRepo.searches[0].GuestPhotoFilename)
}

func TestSearchUnknownOrInactiveEvent(t *testing.T) {
	t.Parallel()

	svc, searchRepo := newSearchFixture(t)
	probe := makeFileHeaders(t, "guestPhoto", []testFile{
		{name: "selfie.jpg", contentType: "image/jpeg", data: []byte("selfie")},
	})[0]

	for _, slug := range []string{"no-such-wedding", "old-wedding"} {
		if _, err := svc.Search(context.Background(), slug, probe, "203.0.113.9"); !errors.Is(err, ErrNotFound) {
			t.Errorf("slug %q: err = %v, want ErrNotFound", slug, err)
		}
	}
	if len(searchRepo.searches) != 0 {
		t.Errorf("%d audit rows written for failed lookups", len(searchRepo.searches))
	}
}

func TestSearchCleansProbeOnAuditFailure(t *testing.T) {
	t.Parallel()

	svc, searchRepo := newSearchFixture(t)
	searchRepo.failCreate = true
	probe := makeFileHeaders(t, "guestPhoto", []testFile{
		{name: "selfie.jpg", contentType: "image/jpeg", data: []byte("selfie")},
	})[0]

	if _, err := svc.Search(context.Background(), "the-wedding", probe, "203.0.113.9"); err == nil {
		t.Fatal("expected error when the audit insert fails")
	}

	// The temp probe is removed on the failure path too.
	if len(searchRepo.searches) != 1 {
		t.Fatalf("attempt not recorded by fake")
	}
	probeGone(t, searchRepo.searches[0].GuestPhotoFilename)
}
