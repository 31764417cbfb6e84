package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// In-memory store fakes mirroring the Mongo repositories' semantics,
// including the version-checked session update.

type fakeSessionStore struct {
	sessions map[string]*models.CandidateSession
	// afterFind runs after each read, for interleaving a concurrent writer.
	afterFind func()
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*models.CandidateSession{}}
}

func storeKey(tenant, id string) string { return tenant + "/" + id }

func (f *fakeSessionStore) FindByID(_ context.Context, tenant, id string) (*models.CandidateSession, error) {
	s, ok := f.sessions[storeKey(tenant, id)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	if f.afterFind != nil {
		f.afterFind()
	}
	return &cp, nil
}

func (f *fakeSessionStore) Create(_ context.Context, s *models.CandidateSession) error {
	cp := *s
	f.sessions[storeKey(s.TenantID, s.ID)] = &cp
	return nil
}

func (f *fakeSessionStore) UpdateVersioned(_ context.Context, tenant, id string, version int64, fields bson.M) error {
	s, ok := f.sessions[storeKey(tenant, id)]
	if !ok || s.Version != version {
		return repository.ErrVersionConflict
	}
	for key, value := range fields {
		switch key {
		case "responses":
			s.Responses = value.([]models.QuestionResponse)
		case "difficulties":
			s.Difficulties = value.(map[string]int)
		case "pending_question":
			if value == nil {
				s.Pending = nil
			} else {
				s.Pending = value.(*models.Question)
			}
		case "status":
			s.Status = value.(models.SessionStatus)
		case "completed_at":
			t := value.(time.Time)
			s.CompletedAt = &t
		}
	}
	s.Version++
	return nil
}

type fakeAssessmentStore struct {
	assessments map[string]*models.Assessment
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{assessments: map[string]*models.Assessment{}}
}

func (f *fakeAssessmentStore) FindByID(_ context.Context, tenant, id string) (*models.Assessment, error) {
	a, ok := f.assessments[storeKey(tenant, id)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

func (f *fakeAssessmentStore) FindByTenant(_ context.Context, tenant string, activeOnly bool) ([]models.Assessment, error) {
	var out []models.Assessment
	for _, a := range f.assessments {
		if a.TenantID == tenant && (!activeOnly || a.Active) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssessmentStore) Create(_ context.Context, a *models.Assessment) error {
	f.assessments[storeKey(a.TenantID, a.ID)] = a
	return nil
}

func (f *fakeAssessmentStore) SetActive(_ context.Context, tenant, id string, active bool) error {
	a, ok := f.assessments[storeKey(tenant, id)]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Active = active
	return nil
}

type fakeResultStore struct {
	results map[string]*models.PerformanceMetrics
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{results: map[string]*models.PerformanceMetrics{}}
}

func (f *fakeResultStore) Create(_ context.Context, m *models.PerformanceMetrics) error {
	f.results[storeKey(m.TenantID, m.SessionID)] = m
	return nil
}

func (f *fakeResultStore) FindBySession(_ context.Context, tenant, sessionID string) (*models.PerformanceMetrics, error) {
	m, ok := f.results[storeKey(tenant, sessionID)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return m, nil
}

func (f *fakeResultStore) FindByAssessment(_ context.Context, tenant, assessmentID string) ([]models.PerformanceMetrics, error) {
	var out []models.PerformanceMetrics
	for _, m := range f.results {
		if m.TenantID == tenant && m.AssessmentID == assessmentID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeLocker struct {
	acquired int
	released int
}

func (f *fakeLocker) Acquire(_ context.Context, _, _ string) (func(), error) {
	f.acquired++
	return func() { f.released++ }, nil
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) Publish(eventType string, _ interface{}) error {
	f.events = append(f.events, eventType)
	return nil
}
