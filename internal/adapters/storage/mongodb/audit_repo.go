package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"animal-shelter-dashboard/internal/domain/audit"
)

const auditCollection = "audit_log"

type AuditRepo struct {
	coll *mongo.Collection
}

func NewAuditRepo(db *mongo.Database) *AuditRepo {
	return &AuditRepo{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID       string    `bson:"entry_id"`
	At       time.Time `bson:"at"`
	Action   string    `bson:"action"`
	AnimalID string    `bson:"animal_id,omitempty"`
	Detail   string    `bson:"detail,omitempty"`
	Matched  int64     `bson:"matched,omitempty"`
	Modified int64     `bson:"modified,omitempty"`
	Deleted  int64     `bson:"deleted,omitempty"`
}

func (r *AuditRepo) Record(ctx context.Context, e audit.Entry) error {
	_, err := r.coll.InsertOne(ctx, auditDoc{
		ID:       e.ID,
		At:       e.At,
		Action:   string(e.Action),
		AnimalID: e.AnimalID,
		Detail:   e.Detail,
		Matched:  e.Matched,
		Modified: e.Modified,
		Deleted:  e.Deleted,
	})
	return err
}

func (r *AuditRepo) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]audit.Entry, 0, len(docs))
	for _, d := range docs {
		out = append(out, audit.Entry{
			ID:       d.ID,
			At:       d.At,
			Action:   audit.Action(d.Action),
			AnimalID: d.AnimalID,
			Detail:   d.Detail,
			Matched:  d.Matched,
			Modified: d.Modified,
			Deleted:  d.Deleted,
		})
	}
	return out, nil
}
