package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// RefCounterMongo counts policy and application documents referencing a
// plan code. Plan hard-deletes are gated on this count; the policy and
// application lifecycles themselves are owned by other services.
type RefCounterMongo struct {
	policies  *mongodrv.Collection
	apps      *mongodrv.Collection
	opTimeout time.Duration
}

func NewRefCounter(db *mongodrv.Database, opTimeout time.Duration) *RefCounterMongo {
	return &RefCounterMongo{
		policies:  db.Collection(ColPolicies),
		apps:      db.Collection(ColApplications),
		opTimeout: opTimeout,
	}
}

func (r *RefCounterMongo) CountPlanReferences(ctx context.Context, planCode string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	filter := bson.M{"plan_code": planCode}

	policies, err := r.policies.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("policies.count: %w", err)
	}
	apps, err := r.apps.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("applications.count: %w", err)
	}
	return policies + apps, nil
}
