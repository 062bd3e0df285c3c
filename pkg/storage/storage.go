package storage

import (
	"context"
	"io"
)

// PhotoStore persists photo binaries. Stage writes the bytes to a staging
// location that is invisible to readers; the returned StagedFile either
// moves them into their final place with Commit or removes them with
// Discard. A photo's metadata row is inserted between Stage and Commit,
// so a failed insert never leaves an orphaned file and a visible file
// always has a row.
type PhotoStore interface {
	Stage(ctx context.Context, key string, r io.Reader, size int64) (StagedFile, error)
	Delete(ctx context.Context, key string) error
}

type StagedFile interface {
	Commit(ctx context.Context) error
	Discard() error
}
