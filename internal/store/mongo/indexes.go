package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := ensureProductsIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure products indexes: %w", err)
	}
	if err := ensureRatePlansIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure rate_plans indexes: %w", err)
	}
	if err := ensureReferenceIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure reference indexes: %w", err)
	}
	return nil
}

func ensureProductsIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColProducts)
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetName("products_code_unique").SetUnique(true),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureRatePlansIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColRatePlans)
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetName("rate_plans_code_unique").SetUnique(true),
		},
		{Keys: bson.D{{Key: "product_id", Value: 1}},
			Options: options.Index().SetName("rate_plans_product_id"),
		},
		{Keys: bson.D{{Key: "term_years", Value: 1}},
			Options: options.Index().SetName("rate_plans_term_years"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

// Reference counts scan policies and applications by plan_code; keep
// that lookup indexed even though those collections are written
// elsewhere.
func ensureReferenceIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{ColPolicies, ColApplications} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "plan_code", Value: 1}},
			Options: options.Index().SetName(name + "_plan_code"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
