package dynamo

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/coverledger/go-rating/internal/core"
)

type RatePlanRepo struct {
	client *dynamodb.Client
}

func NewRatePlanRepo(client *dynamodb.Client) *RatePlanRepo {
	return &RatePlanRepo{client: client}
}

// ListByProduct queries the product_id GSI. Results are sorted by code
// client-side; the GSI has no range key.
func (r *RatePlanRepo) ListByProduct(ctx context.Context, productID string) ([]core.RatePlan, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(TableRatePlans),
		IndexName:              aws.String(GSIRatePlansProductID),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rate_plans.queryByProduct: %w", err)
	}

	var items []RatePlanItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("rate_plans.unmarshal: %w", err)
	}

	plans := make([]core.RatePlan, len(items))
	for i, item := range items {
		plans[i] = item.ToCore()
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Code < plans[j].Code })
	return plans, nil
}

func (r *RatePlanRepo) GetByCode(ctx context.Context, code string) (core.RatePlan, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(TableRatePlans),
		IndexName:              aws.String(GSIRatePlansCode),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return core.RatePlan{}, fmt.Errorf("rate_plans.queryByCode: %w", err)
	}
	if len(out.Items) == 0 {
		return core.RatePlan{}, core.ErrNotFound
	}

	var item RatePlanItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return core.RatePlan{}, fmt.Errorf("rate_plans.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *RatePlanRepo) GetByID(ctx context.Context, id string) (core.RatePlan, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableRatePlans),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.RatePlan{}, fmt.Errorf("rate_plans.getItem: %w", err)
	}
	if out.Item == nil {
		return core.RatePlan{}, core.ErrNotFound
	}

	var item RatePlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.RatePlan{}, fmt.Errorf("rate_plans.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *RatePlanRepo) Create(ctx context.Context, p core.RatePlan) error {
	return putNew(ctx, r.client, TableRatePlans, ratePlanItemFromCore(p), "rate_plans")
}

func (r *RatePlanRepo) Update(ctx context.Context, p core.RatePlan) error {
	return putExisting(ctx, r.client, TableRatePlans, ratePlanItemFromCore(p), "rate_plans")
}

func (r *RatePlanRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.client, TableRatePlans, id, "rate_plans")
}
