package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wedsnap/wedsnap-backend/internal/matcher"
	"github.com/wedsnap/wedsnap-backend/internal/models"
	"github.com/wedsnap/wedsnap-backend/pkg/utils"
)

type SearchService struct {
	eventRepo  EventRepository
	searchRepo GuestSearchRepository
	matcher    matcher.Matcher
	logger     *zap.Logger
}

func NewSearchService(
	eventRepo EventRepository,
	searchRepo GuestSearchRepository,
	m matcher.Matcher,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		eventRepo:  eventRepo,
		searchRepo: searchRepo,
		matcher:    m,
		logger:     logger,
	}
}

// Search runs a guest probe against an event. The probe lives in a temp
// file only for the duration of the call and is removed on every path;
// each attempt appends exactly one audit row.
func (s *SearchService) Search(ctx context.Context, eventSlug string, probe *multipart.FileHeader, ip string) (*models.SearchResponse, error) {
	event, err := s.eventRepo.GetActiveBySlug(eventSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	probeName := utils.StoredFilename(probe.Filename)
	probePath := filepath.Join(os.TempDir(), probeName)

	if err := saveProbe(probe, probePath); err != nil {
		return nil, fmt.Errorf("failed to save probe image: %w", err)
	}
	defer os.Remove(probePath)

	matches, err := s.matcher.Match(ctx, probePath, event.ID)
	if err != nil {
		// Matching is best-effort; the attempt is still audited.
		s.logger.Warn("matcher failed", zap.Uint("event_id", event.ID), zap.Error(err))
		matches = nil
	}
	if matches == nil {
		matches = []matcher.Match{}
	}

	search := &models.GuestSearch{
		EventID:            event.ID,
		GuestPhotoFilename: probeName,
		MatchesFound:       len(matches),
		IPAddress:          ip,
	}
	if err := s.searchRepo.Create(search); err != nil {
		return nil, fmt.Errorf("failed to record search: %w", err)
	}

	s.logger.Info("guest search recorded",
		zap.Uint("event_id", event.ID),
		zap.Uint("search_id", search.ID),
		zap.Int("matches_found", len(matches)),
	)

	return &models.SearchResponse{
		Success:  true,
		SearchID: search.ID,
		Message:  "Face recognition processing started",
		Matches:  matches,
	}, nil
}

func saveProbe(probe *multipart.FileHeader, path string) error {
	src, err := probe.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
