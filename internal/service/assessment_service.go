package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"assessment-service/internal/models"
)

type AssessmentService struct {
	Repo      AssessmentStore
	Publisher EventPublisher
}

func NewAssessmentService(repo AssessmentStore, publisher EventPublisher) *AssessmentService {
	return &AssessmentService{Repo: repo, Publisher: publisher}
}

// Create validates and stores a new assessment. The area mix is validated
// here once; sessions rely on it afterwards without re-checking.
func (s *AssessmentService) Create(ctx context.Context, a *models.Assessment) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Active = true
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.Repo.Create(ctx, a); err != nil {
		return err
	}
	if s.Publisher != nil {
		_ = s.Publisher.Publish("assessment.created", map[string]interface{}{
			"tenant_id":     a.TenantID,
			"assessment_id": a.ID,
			"title":         a.Title,
		})
	}
	return nil
}

func (s *AssessmentService) Get(ctx context.Context, tenant, id string) (*models.Assessment, error) {
	a, err := s.Repo.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapStoreErr(err, "assessment "+id)
	}
	return a, nil
}

func (s *AssessmentService) List(ctx context.Context, tenant string, activeOnly bool) ([]models.Assessment, error) {
	return s.Repo.FindByTenant(ctx, tenant, activeOnly)
}

// SetActive flips the only mutable flag an assessment has.
func (s *AssessmentService) SetActive(ctx context.Context, tenant, id string, active bool) error {
	if err := s.Repo.SetActive(ctx, tenant, id, active); err != nil {
		return mapStoreErr(err, "assessment "+id)
	}
	return nil
}
