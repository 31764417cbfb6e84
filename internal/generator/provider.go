package generator

import (
	"context"
	"errors"

	"assessment-service/internal/models"
)

// Request describes the question to generate. RecentAccuracy only carries a
// signal when HasAccuracy is set; a fresh area has none.
type Request struct {
	Area           string
	Difficulty     int
	Language       string
	RecentAccuracy float64
	HasAccuracy    bool
	// Strict asks for a more constrained generation after a filtered result.
	Strict bool
}

// Provider produces one question per call. Implementations validate the
// question type and answer key before returning; the session engine never
// sees an untyped or keyless question.
type Provider interface {
	Generate(ctx context.Context, req Request) (*models.Question, error)
}

// ErrContentFiltered marks a generation rejected by the upstream content
// filter. The caller retries once with Strict set before giving up.
var ErrContentFiltered = errors.New("generation rejected by content filter")
