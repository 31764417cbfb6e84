package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assessment-service/internal/models"
)

// ErrVersionConflict is returned when a versioned write matched no document:
// another writer updated the session between this caller's read and write.
var ErrVersionConflict = errors.New("session version conflict")

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, tenant, id string) (*models.CandidateSession, error) {
	var s models.CandidateSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "tenant_id": tenant}).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, s *models.CandidateSession) error {
	_, err := r.Col.InsertOne(ctx, s)
	return err
}

// UpdateVersioned applies the $set fields only when the stored version still
// matches the one the caller read, and increments the version in the same
// write. A zero match means a concurrent writer got there first.
func (r *SessionRepository) UpdateVersioned(ctx context.Context, tenant, id string, version int64, fields bson.M) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "tenant_id": tenant, "version": version},
		bson.M{"$set": fields, "$inc": bson.M{"version": int64(1)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *SessionRepository) FindByAssessment(ctx context.Context, tenant, assessmentID string) ([]models.CandidateSession, error) {
	cur, err := r.Col.Find(ctx, bson.M{"tenant_id": tenant, "assessment_id": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.CandidateSession
	for cur.Next(ctx) {
		var s models.CandidateSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}
