package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wedsnap/wedsnap-backend/internal/models"
	"github.com/wedsnap/wedsnap-backend/pkg/storage"
	"github.com/wedsnap/wedsnap-backend/pkg/utils"
)

type PhotoService struct {
	photoRepo   PhotoRepository
	eventRepo   EventRepository
	store       storage.PhotoStore
	maxFileSize int64
	maxBatch    int
	logger      *zap.Logger
}

func NewPhotoService(
	photoRepo PhotoRepository,
	eventRepo EventRepository,
	store storage.PhotoStore,
	maxFileSize int64,
	maxBatch int,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photoRepo:   photoRepo,
		eventRepo:   eventRepo,
		store:       store,
		maxFileSize: maxFileSize,
		maxBatch:    maxBatch,
		logger:      logger,
	}
}

// UploadBatch ingests a bounded batch of image files for one event. The
// batch is best-effort: each file gets an explicit accepted/rejected
// outcome, and one bad file never fails the others. Per file the order is
// stage, insert row, commit into events/{id}/ — so a failed insert leaves
// no file behind and a visible file always has a row.
func (s *PhotoService) UploadBatch(ctx context.Context, eventID uint, files []*multipart.FileHeader) (*models.UploadResponse, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(files) > s.maxBatch {
		return nil, fmt.Errorf("%w: batch exceeds %d files", ErrInvalidInput, s.maxBatch)
	}

	batchID := utils.BatchID()
	photos := []models.Photo{}
	results := make([]models.UploadResult, 0, len(files))

	for _, fh := range files {
		if photo, reason := s.ingestFile(ctx, eventID, batchID, fh); reason != "" {
			results = append(results, models.UploadResult{
				Filename: fh.Filename,
				Status:   models.UploadRejected,
				Reason:   reason,
			})
		} else {
			photos = append(photos, *photo)
			results = append(results, models.UploadResult{
				Filename: fh.Filename,
				Status:   models.UploadAccepted,
			})
		}
	}

	s.logger.Info("upload batch processed",
		zap.Uint("event_id", eventID),
		zap.String("upload_batch", batchID),
		zap.Int("submitted", len(files)),
		zap.Int("accepted", len(photos)),
	)

	return &models.UploadResponse{
		Success:     true,
		Message:     fmt.Sprintf("%d photos uploaded successfully", len(photos)),
		UploadBatch: batchID,
		Photos:      photos,
		Results:     results,
	}, nil
}

// ingestFile returns the created photo, or a rejection reason.
func (s *PhotoService) ingestFile(ctx context.Context, eventID uint, batchID string, fh *multipart.FileHeader) (*models.Photo, string) {
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "only image files are allowed"
	}
	if fh.Size > s.maxFileSize {
		return nil, fmt.Sprintf("file exceeds %d byte limit", s.maxFileSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "file could not be read"
	}
	defer src.Close()

	storedName := utils.StoredFilename(fh.Filename)
	key := fmt.Sprintf("events/%d/%s", eventID, storedName)

	staged, err := s.store.Stage(ctx, key, src, fh.Size)
	if err != nil {
		s.logger.Error("staging failed",
			zap.String("original_filename", fh.Filename),
			zap.Error(err),
		)
		return nil, "storage failure"
	}

	photo := models.Photo{
		EventID:          eventID,
		Filename:         storedName,
		OriginalFilename: fh.Filename,
		FilePath:         key,
		FileSize:         fh.Size,
		MimeType:         contentType,
		UploadBatch:      batchID,
		ProcessingStatus: models.StatusUploaded,
		UploadedAt:       time.Now(),
	}

	if err := s.photoRepo.Create(&photo); err != nil {
		if derr := staged.Discard(); derr != nil {
			s.logger.Error("failed to discard staged file", zap.String("key", key), zap.Error(derr))
		}
		s.logger.Error("photo metadata insert failed",
			zap.String("original_filename", fh.Filename),
			zap.Error(err),
		)
		return nil, "metadata write failure"
	}

	if err := staged.Commit(ctx); err != nil {
		// The row exists but the file never became visible; take the
		// row back out so the two never diverge.
		if derr := s.photoRepo.Delete(photo.ID); derr != nil {
			s.logger.Error("failed to remove row for uncommitted file",
				zap.Uint("photo_id", photo.ID), zap.Error(derr))
		}
		s.logger.Error("commit failed", zap.String("key", key), zap.Error(err))
		return nil, "storage failure"
	}

	return &photo, ""
}

// ListEventPhotos pages through an event's photos, newest upload first,
// with an optional exact-match status filter.
func (s *PhotoService) ListEventPhotos(eventID uint, status string, limit, offset int) (*models.PhotoListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	photos, err := s.photoRepo.ListByEvent(eventID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	if photos == nil {
		photos = []models.PhotoWithFaceCount{}
	}

	total, err := s.photoRepo.CountByEvent(eventID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}

	return &models.PhotoListResponse{
		Photos: photos,
		Pagination: models.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}, nil
}
