package repository

import (
	"context"
	"fmt"
	"strconv"

	"uniformes_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFiscalCountersTableName = "fiscal_counters"

// FiscalCounterDynamoRepository holds the per-year nota fiscal sequence.
//
// Table requirements:
//   - PK: year (number)
//
// The increment is a single UpdateItem with ADD and ReturnValues=UPDATED_NEW:
// DynamoDB applies it atomically and upserts the row, so the first allocation of a
// year returns 1 and concurrent allocations never collide or skip. There is no
// separate read anywhere in this path.

type FiscalCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFiscalCounterRepository = (*FiscalCounterDynamoRepository)(nil)

func NewFiscalCounterDynamoRepository(ddb *dynamodb.Client) *FiscalCounterDynamoRepository {
	return &FiscalCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FISCAL_COUNTERS_TABLE", defaultFiscalCountersTableName),
	}
}

func (r *FiscalCounterDynamoRepository) IncrementAndGet(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("fiscal counter update returned no seq attribute for year %d", year)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("fiscal counter seq has unexpected type %T", attr)
	}

	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("fiscal counter seq parse: %w", err)
	}
	return seq, nil
}
