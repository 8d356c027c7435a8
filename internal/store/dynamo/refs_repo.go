package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RefCounter counts policy and application items referencing a plan
// code via the plan_code GSI on each table.
type RefCounter struct {
	client *dynamodb.Client
}

func NewRefCounter(client *dynamodb.Client) *RefCounter {
	return &RefCounter{client: client}
}

func (r *RefCounter) CountPlanReferences(ctx context.Context, planCode string) (int64, error) {
	var total int64
	for _, table := range []string{TablePolicies, TableApplications} {
		n, err := r.countInTable(ctx, table, planCode)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *RefCounter) countInTable(ctx context.Context, table, planCode string) (int64, error) {
	var total int64
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(GSIPlanCode),
			KeyConditionExpression: aws.String("plan_code = :code"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":code": &types.AttributeValueMemberS{Value: planCode},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("%s.countByPlanCode: %w", table, err)
		}
		total += int64(out.Count)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}
