package service

import (
	"context"

	"assessment-service/internal/models"
)

// ResultService serves stored performance metrics for reporting views.
type ResultService struct {
	Repo ResultStore
}

func NewResultService(repo ResultStore) *ResultService {
	return &ResultService{Repo: repo}
}

func (s *ResultService) GetBySession(ctx context.Context, tenant, sessionID string) (*models.PerformanceMetrics, error) {
	m, err := s.Repo.FindBySession(ctx, tenant, sessionID)
	if err != nil {
		return nil, mapStoreErr(err, "result for session "+sessionID)
	}
	return m, nil
}

// ListByAssessment returns every stored result for one assessment, for
// cross-candidate comparison.
func (s *ResultService) ListByAssessment(ctx context.Context, tenant, assessmentID string) ([]models.PerformanceMetrics, error) {
	return s.Repo.FindByAssessment(ctx, tenant, assessmentID)
}
