package generator

import (
	"context"

	"assessment-service/internal/models"
)

// Mock is a scriptable Provider for tests.
type Mock struct {
	// GenerateFunc handles each call when set.
	GenerateFunc func(ctx context.Context, req Request) (*models.Question, error)
	// Calls records every request, in order.
	Calls []Request
}

func (m *Mock) Generate(ctx context.Context, req Request) (*models.Question, error) {
	m.Calls = append(m.Calls, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &models.Question{
		ID:             "mock-question",
		Area:           req.Area,
		Text:           "placeholder",
		Type:           models.QuestionMCQ,
		Options:        []string{"a", "b", "c", "d"},
		CorrectAnswers: []string{"a"},
		Difficulty:     req.Difficulty,
	}, nil
}
