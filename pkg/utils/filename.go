package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// StoredFilename derives a stored name from the upload timestamp, a random
// disambiguator and the original extension. Names never collide within a
// directory, so uploads take no locks.
func StoredFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// BatchID groups all photo rows created by one upload request.
func BatchID() string {
	return fmt.Sprintf("batch-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
