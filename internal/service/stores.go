package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"assessment-service/internal/models"
)

// Store contracts consumed by the services, implemented by the Mongo
// repositories. Everything is keyed by tenant plus id; the services never
// reach across tenants.

type SessionStore interface {
	FindByID(ctx context.Context, tenant, id string) (*models.CandidateSession, error)
	Create(ctx context.Context, s *models.CandidateSession) error
	UpdateVersioned(ctx context.Context, tenant, id string, version int64, fields bson.M) error
}

type AssessmentStore interface {
	FindByID(ctx context.Context, tenant, id string) (*models.Assessment, error)
	FindByTenant(ctx context.Context, tenant string, activeOnly bool) ([]models.Assessment, error)
	Create(ctx context.Context, a *models.Assessment) error
	SetActive(ctx context.Context, tenant, id string, active bool) error
}

type ResultStore interface {
	Create(ctx context.Context, m *models.PerformanceMetrics) error
	FindBySession(ctx context.Context, tenant, sessionID string) (*models.PerformanceMetrics, error)
	FindByAssessment(ctx context.Context, tenant, assessmentID string) ([]models.PerformanceMetrics, error)
}

// Locker serializes writers for one session.
type Locker interface {
	Acquire(ctx context.Context, tenant, sessionID string) (func(), error)
}

// EventPublisher hands events to downstream consumers.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}
