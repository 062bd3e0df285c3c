package service

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"gorm.io/gorm"

	"github.com/wedsnap/wedsnap-backend/internal/models"
)

// In-memory stand-ins for the repository layer. They return the same gorm
// sentinel errors the real repositories do.

type fakeAdminRepo struct {
	admins []*models.Admin
}

func (r *fakeAdminRepo) GetByID(id uint) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeEventRepo struct {
	events []*models.Event
	nextID uint
}

func (r *fakeEventRepo) Create(event *models.Event) (*models.Event, error) {
	for _, e := range r.events {
		if e.EventSlug == event.EventSlug {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	event.ID = r.nextID
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeEventRepo) GetByID(id uint) (*models.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) GetActiveBySlug(slug string) (*models.Event, error) {
	for _, e := range r.events {
		if e.EventSlug == slug && e.IsActive {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) ListWithCounts() ([]models.EventWithCounts, error) {
	var out []models.EventWithCounts
	for i := len(r.events) - 1; i >= 0; i-- {
		out = append(out, r.withCounts(r.events[i]))
	}
	return out, nil
}

func (r *fakeEventRepo) GetBySlugWithCounts(slug string) (*models.EventWithCounts, error) {
	event, err := r.GetActiveBySlug(slug)
	if err != nil {
		return nil, err
	}
	row := r.withCounts(event)
	return &row, nil
}

func (r *fakeEventRepo) withCounts(e *models.Event) models.EventWithCounts {
	return models.EventWithCounts{
		ID:          e.ID,
		EventName:   e.EventName,
		EventSlug:   e.EventSlug,
		EventDate:   e.EventDate,
		Description: e.Description,
		AdminID:     e.AdminID,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

type fakePhotoRepo struct {
	photos     []models.Photo
	nextID     uint
	failCreate bool
}

func (r *fakePhotoRepo) Create(photo *models.Photo) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.nextID++
	photo.ID = r.nextID
	r.photos = append(r.photos, *photo)
	return nil
}

func (r *fakePhotoRepo) Delete(id uint) error {
	for i, p := range r.photos {
		if p.ID == id {
			r.photos = append(r.photos[:i], r.photos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) ListByEvent(eventID uint, status string, limit, offset int) ([]models.PhotoWithFaceCount, error) {
	var matching []models.PhotoWithFaceCount
	// Newest first; the fake appends in upload order.
	for i := len(r.photos) - 1; i >= 0; i-- {
		p := r.photos[i]
		if p.EventID != eventID {
			continue
		}
		if status != "" && p.ProcessingStatus != status {
			continue
		}
		matching = append(matching, models.PhotoWithFaceCount{
			ID:               p.ID,
			EventID:          p.EventID,
			Filename:         p.Filename,
			OriginalFilename: p.OriginalFilename,
			FilePath:         p.FilePath,
			FileSize:         p.FileSize,
			MimeType:         p.MimeType,
			UploadBatch:      p.UploadBatch,
			ProcessingStatus: p.ProcessingStatus,
			UploadedAt:       p.UploadedAt,
		})
	}
	if offset >= len(matching) {
		return nil, nil
	}
	matching = matching[offset:]
	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching, nil
}

func (r *fakePhotoRepo) CountByEvent(eventID uint, status string) (int64, error) {
	var count int64
	for _, p := range r.photos {
		if p.EventID == eventID && (status == "" || p.ProcessingStatus == status) {
			count++
		}
	}
	return count, nil
}

type fakeSearchRepo struct {
	searches   []*models.GuestSearch
	nextID     uint
	failCreate bool
}

func (r *fakeSearchRepo) Create(search *models.GuestSearch) error {
	// Record the attempt even when failing so tests can find the probe
	// filename the service generated.
	r.searches = append(r.searches, search)
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.nextID++
	search.ID = r.nextID
	return nil
}

type testFile struct {
	name        string
	contentType string
	data        []byte
}

// makeFileHeaders builds real multipart.FileHeader values by writing and
// re-parsing a multipart body, the same shape a fiber handler hands over.
func makeFileHeaders(t *testing.T, field string, files []testFile) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("writing part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[field]
}
