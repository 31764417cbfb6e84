package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/models"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) Create(ctx context.Context, m *models.PerformanceMetrics) error {
	_, err := r.Col.InsertOne(ctx, m)
	return err
}

func (r *ResultRepository) FindBySession(ctx context.Context, tenant, sessionID string) (*models.PerformanceMetrics, error) {
	var m models.PerformanceMetrics
	err := r.Col.FindOne(ctx, bson.M{"tenant_id": tenant, "session_id": sessionID}).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ResultRepository) FindByAssessment(ctx context.Context, tenant, assessmentID string) ([]models.PerformanceMetrics, error) {
	cur, err := r.Col.Find(ctx, bson.M{"tenant_id": tenant, "assessment_id": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.PerformanceMetrics
	for cur.Next(ctx) {
		var m models.PerformanceMetrics
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
