package repository

import (
	"github.com/wedsnap/wedsnap-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Photo{}, id).Error
}

// ListByEvent joins in the face count (zero until the recognition pipeline
// writes encodings). An empty status means no status filter.
func (r *PhotoRepository) ListByEvent(eventID uint, status string, limit, offset int) ([]models.PhotoWithFaceCount, error) {
	query := `
		SELECT
			p.id, p.event_id, p.filename, p.original_filename, p.file_path,
			p.file_size, p.mime_type, p.upload_batch, p.processing_status, p.uploaded_at,
			COUNT(fe.id) AS face_count
		FROM photos p
		LEFT JOIN face_encodings fe ON fe.photo_id = p.id
		WHERE p.event_id = ?`
	args := []interface{}{eventID}

	if status != "" {
		query += ` AND p.processing_status = ?`
		args = append(args, status)
	}

	query += `
		GROUP BY p.id
		ORDER BY p.uploaded_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var photos []models.PhotoWithFaceCount
	err := r.db.Raw(query, args...).Scan(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// CountByEvent is the true total over the same filter as ListByEvent, so
// pagination reports the matching row count rather than the page size.
func (r *PhotoRepository) CountByEvent(eventID uint, status string) (int64, error) {
	q := r.db.Model(&models.Photo{}).Where("event_id = ?", eventID)
	if status != "" {
		q = q.Where("processing_status = ?", status)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}
