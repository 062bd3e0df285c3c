// Package matcher defines the face-matching extension point. The shipped
// implementation is a stub: embedding extraction and similarity search are
// a future capability, kept behind this interface so the CRUD core does
// not depend on how matching eventually works.
package matcher

import (
	"context"
)

type Match struct {
	PhotoID    uint    `json:"photo_id"`
	Confidence float64 `json:"confidence"`
}

// Matcher compares a probe image on disk against the stored photos of one
// event. Implementations must not retain probePath after returning.
type Matcher interface {
	Match(ctx context.Context, probePath string, eventID uint) ([]Match, error)
}

// Noop always reports no matches.
type Noop struct{}

func (Noop) Match(ctx context.Context, probePath string, eventID uint) ([]Match, error) {
	return nil, nil
}
