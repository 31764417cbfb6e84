package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/models"
)

type AssessmentRepository struct {
	Col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{Col: db.Collection("assessments")}
}

func (r *AssessmentRepository) FindByID(ctx context.Context, tenant, id string) (*models.Assessment, error) {
	var a models.Assessment
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "tenant_id": tenant}).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) FindByTenant(ctx context.Context, tenant string, activeOnly bool) ([]models.Assessment, error) {
	filter := bson.M{"tenant_id": tenant}
	if activeOnly {
		filter["active"] = true
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Assessment
	for cur.Next(ctx) {
		var a models.Assessment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

func (r *AssessmentRepository) Create(ctx context.Context, a *models.Assessment) error {
	_, err := r.Col.InsertOne(ctx, a)
	return err
}

func (r *AssessmentRepository) SetActive(ctx context.Context, tenant, id string, active bool) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "tenant_id": tenant},
		bson.M{"$set": bson.M{"active": active, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
