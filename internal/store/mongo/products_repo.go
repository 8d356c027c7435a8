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

type ProductRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewProductRepo(db *mongodrv.Database, opTimeout time.Duration) *ProductRepoMongo {
	return &ProductRepoMongo{
		coll:      db.Collection(ColProducts),
		opTimeout: opTimeout,
	}
}

// List returns all products ordered by code.
func (r *ProductRepoMongo) List(ctx context.Context) ([]core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("products.find: %w", err)
	}
	defer cur.Close(ctx)

	var products []core.Product
	for cur.Next(ctx) {
		var doc ProductDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("products.decode: %w", err)
		}
		products = append(products, fromProductDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("products.cursor: %w", err)
	}
	return products, nil
}

// GetByCode returns core.ErrNotFound when no product has the code.
func (r *ProductRepoMongo) GetByCode(ctx context.Context, code string) (core.Product, error) {
	return r.findOne(ctx, bson.M{"code": code}, "products.getByCode")
}

// GetByID returns core.ErrNotFound when the ID is unknown.
func (r *ProductRepoMongo) GetByID(ctx context.Context, id string) (core.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "products.getByID")
}

func (r *ProductRepoMongo) findOne(ctx context.Context, filter bson.M, op string) (core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc ProductDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Product{}, core.ErrNotFound
		}
		return core.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return fromProductDoc(doc), nil
}

func (r *ProductRepoMongo) Create(ctx context.Context, p core.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toProductDoc(p)); err != nil {
		if mongodrv.IsDuplicateKeyError(err) {
			return core.ErrConflict
		}
		return fmt.Errorf("products.insert: %w", err)
	}
	return nil
}

func (r *ProductRepoMongo) Update(ctx context.Context, p core.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, toProductDoc(p))
	if err != nil {
		return fmt.Errorf("products.replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *ProductRepoMongo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("products.delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
