package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverledger/go-rating/internal/core"
)

type RatePlanRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewRatePlanRepo(db *mongodrv.Database, opTimeout time.Duration) *RatePlanRepoMongo {
	return &RatePlanRepoMongo{
		coll:      db.Collection(ColRatePlans),
		opTimeout: opTimeout,
	}
}

// ListByProduct returns all plans (active and disabled) of a product,
// ordered by code. Callers filter on Active where it matters.
func (r *RatePlanRepoMongo) ListByProduct(ctx context.Context, productID string) ([]core.RatePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"product_id": productID},
		options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("rate_plans.find: %w", err)
	}
	defer cur.Close(ctx)

	var plans []core.RatePlan
	for cur.Next(ctx) {
		var doc RatePlanDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("rate_plans.decode: %w", err)
		}
		plans = append(plans, fromRatePlanDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("rate_plans.cursor: %w", err)
	}
	return plans, nil
}

func (r *RatePlanRepoMongo) GetByCode(ctx context.Context, code string) (core.RatePlan, error) {
	return r.findOne(ctx, bson.M{"code": code}, "rate_plans.getByCode")
}

func (r *RatePlanRepoMongo) GetByID(ctx context.Context, id string) (core.RatePlan, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "rate_plans.getByID")
}

func (r *RatePlanRepoMongo) findOne(ctx context.Context, filter bson.M, op string) (core.RatePlan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc RatePlanDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.RatePlan{}, core.ErrNotFound
		}
		return core.RatePlan{}, fmt.Errorf("%s: %w", op, err)
	}
	return fromRatePlanDoc(doc), nil
}

func (r *RatePlanRepoMongo) Create(ctx context.Context, p core.RatePlan) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toRatePlanDoc(p)); err != nil {
		if mongodrv.IsDuplicateKeyError(err) {
			return core.ErrConflict
		}
		return fmt.Errorf("rate_plans.insert: %w", err)
	}
	return nil
}

func (r *RatePlanRepoMongo) Update(ctx context.Context, p core.RatePlan) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, toRatePlanDoc(p))
	if err != nil {
		return fmt.Errorf("rate_plans.replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *RatePlanRepoMongo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("rate_plans.delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
