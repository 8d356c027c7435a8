package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/coverledger/go-rating/internal/core"
)

type ProductRepo struct {
	client *dynamodb.Client
}

func NewProductRepo(client *dynamodb.Client) *ProductRepo {
	return &ProductRepo{client: client}
}

func (r *ProductRepo) List(ctx context.Context) ([]core.Product, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(TableProducts),
	})
	if err != nil {
		return nil, fmt.Errorf("products.scan: %w", err)
	}

	var items []ProductItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("products.unmarshal: %w", err)
	}

	products := make([]core.Product, len(items))
	for i, item := range items {
		products[i] = item.ToCore()
	}
	return products, nil
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (core.Product, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(TableProducts),
		IndexName:              aws.String(GSIProductsCode),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return core.Product{}, fmt.Errorf("products.queryByCode: %w", err)
	}
	if len(out.Items) == 0 {
		return core.Product{}, core.ErrNotFound
	}

	var item ProductItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return core.Product{}, fmt.Errorf("products.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (core.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableProducts),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.Product{}, fmt.Errorf("products.getItem: %w", err)
	}
	if out.Item == nil {
		return core.Product{}, core.ErrNotFound
	}

	var item ProductItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Product{}, fmt.Errorf("products.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *ProductRepo) Create(ctx context.Context, p core.Product) error {
	return putNew(ctx, r.client, TableProducts, productItemFromCore(p), "products")
}

func (r *ProductRepo) Update(ctx context.Context, p core.Product) error {
	return putExisting(ctx, r.client, TableProducts, productItemFromCore(p), "products")
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.client, TableProducts, id, "products")
}

// putNew inserts an item, failing with core.ErrConflict when the ID is
// already taken.
func putNew(ctx context.Context, client *dynamodb.Client, table string, item any, op string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("%s.marshal: %w", op, err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("%s.buildExpr: %w", op, err)
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return core.ErrConflict
		}
		return fmt.Errorf("%s.putItem: %w", op, err)
	}
	return nil
}

// putExisting replaces an item, failing with core.ErrNotFound when no
// item with the ID exists.
func putExisting(ctx context.Context, client *dynamodb.Client, table string, item any, op string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("%s.marshal: %w", op, err)
	}

	cond := expression.AttributeExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("%s.buildExpr: %w", op, err)
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return core.ErrNotFound
		}
		return fmt.Errorf("%s.putItem: %w", op, err)
	}
	return nil
}

func deleteByID(ctx context.Context, client *dynamodb.Client, table, id, op string) error {
	cond := expression.AttributeExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("%s.buildExpr: %w", op, err)
	}

	_, err = client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return core.ErrNotFound
		}
		return fmt.Errorf("%s.deleteItem: %w", op, err)
	}
	return nil
}
