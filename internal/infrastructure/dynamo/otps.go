package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/focus-functions/internal/domain"
)

// ErrBatchTooLarge is returned when a delete would need more than one transaction.
var ErrBatchTooLarge = errors.New("batch exceeds one transaction")

// otpAPI is the subset of *dynamodb.Client the OTP repo uses.
type otpAPI interface {
	dynamodb.ScanAPIClient
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// OTPRepo reads and purges OTP records.
// PK: otp_id. createdAt is ms since epoch, stored as N or a numeric S.
type OTPRepo struct {
	client    otpAPI
	tableName string
}

func NewOTPRepo(client otpAPI, tableName string) *OTPRepo {
	return &OTPRepo{client: client, tableName: tableName}
}

// BatchLimit is the most keys DeleteBatch accepts: one transaction's worth.
func (r *OTPRepo) BatchLimit() int { return maxTransactItems }

// Snapshot scans the full table with consistent reads, following pagination.
func (r *OTPRepo) Snapshot(ctx context.Context) (domain.OTPSnapshot, error) {
	snapshot := domain.OTPSnapshot{}
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#id, #ca"),
		ExpressionAttributeNames: map[string]string{
			"#id": fieldOTPID,
			"#ca": fieldCreatedAt,
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan otps: %w", err)
		}
		for _, item := range page.Items {
			var key string
			if err := attributevalue.Unmarshal(item[fieldOTPID], &key); err != nil {
				return nil, fmt.Errorf("unmarshal otp key: %w", err)
			}
			snapshot[key] = domain.OTPRecord{Key: key, CreatedAt: createdAt(item[fieldCreatedAt])}
		}
	}
	return snapshot, nil
}

// createdAt reads a number or numeric string. Anything else, including a
// missing attribute, has no timestamp.
func createdAt(av types.AttributeValue) domain.Millis {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return domain.ParseMillis(v.Value)
	case *types.AttributeValueMemberS:
		return domain.ParseMillis(v.Value)
	default:
		return domain.Millis{}
	}
}

// DeleteBatch removes keys in a single TransactWriteItems call, so either every
// key is deleted or none is. More than BatchLimit keys is rejected without writing.
func (r *OTPRepo) DeleteBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if len(keys) > maxTransactItems {
		return fmt.Errorf("delete %d otps: %w", len(keys), ErrBatchTooLarge)
	}
	_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: deleteItems(r.tableName, keys),
	})
	if err != nil {
		return fmt.Errorf("delete %d otps: %w", len(keys), err)
	}
	return nil
}
