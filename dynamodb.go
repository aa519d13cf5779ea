package dynamodbcopy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/cenkalti/backoff/v4"
)

// DynamoDBAPI is the subset of dynamodbiface.DynamoDBAPI used by the copy, kept small for mocking purposes
type DynamoDBAPI interface {
	DescribeTableWithContext(
		ctx aws.Context,
		input *dynamodb.DescribeTableInput,
		opts ...request.Option,
	) (*dynamodb.DescribeTableOutput, error)
	CreateTableWithContext(
		ctx aws.Context,
		input *dynamodb.CreateTableInput,
		opts ...request.Option,
	) (*dynamodb.CreateTableOutput, error)
	ScanWithContext(ctx aws.Context, input *dynamodb.ScanInput, opts ...request.Option) (*dynamodb.ScanOutput, error)
	PutItemWithContext(
		ctx aws.Context,
		input *dynamodb.PutItemInput,
		opts ...request.Option,
	) (*dynamodb.PutItemOutput, error)
}

var _ DynamoDBAPI = dynamodbiface.DynamoDBAPI(nil)

type DynamoDBItem map[string]*dynamodb.AttributeValue

// ScanPage holds the items returned by a single scan request
type ScanPage struct {
	Items     []DynamoDBItem
	Truncated bool
}

type DynamoDBService interface {
	TableName() string
	DescribeTable(ctx context.Context) (*dynamodb.TableDescription, error)
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	WaitForReadyTable(ctx context.Context) error
	Scan(ctx context.Context) (ScanPage, error)
	PutItem(ctx context.Context, item DynamoDBItem) error
}

// ReadyPolicy controls how WaitForReadyTable polls a table status
type ReadyPolicy struct {
	InitialDelay time.Duration
	PollInterval time.Duration
	MaxAttempts  int
	Timeout      time.Duration
}

type dynamoDBService struct {
	tableName string
	api       DynamoDBAPI
	sleep     Sleeper
	policy    ReadyPolicy
}

func NewDynamoDBService(tableName string, api DynamoDBAPI, sleepFn Sleeper, policy ReadyPolicy) DynamoDBService {
	return dynamoDBService{
		tableName: tableName,
		api:       api,
		sleep:     sleepFn,
		policy:    policy,
	}
}

func (db dynamoDBService) TableName() string {
	return db.tableName
}

func (db dynamoDBService) DescribeTable(ctx context.Context) (*dynamodb.TableDescription, error) {
	input := &dynamodb.DescribeTableInput{
		TableName: aws.String(db.tableName),
	}

	output, err := db.api.DescribeTableWithContext(ctx, input)
	if err != nil {
		if hasErrorCode(err, dynamodb.ErrCodeResourceNotFoundException) {
			return nil, fmt.Errorf("unable to describe table %s: %w", db.tableName, ErrTableNotFound)
		}

		return nil, fmt.Errorf("unable to describe table %s: %w", db.tableName, err)
	}

	return output.Table, nil
}

func (db dynamoDBService) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	input.TableName = aws.String(db.tableName)

	if _, err := db.api.CreateTableWithContext(ctx, input); err != nil {
		return fmt.Errorf("unable to create table %s: %w", db.tableName, err)
	}

	return nil
}

// WaitForReadyTable blocks until the table reports ACTIVE, the attempt ceiling or the timeout is hit or ctx is done.
// Both ceilings yield ErrTableNotReady, cancellation of ctx yields its own error.
func (db dynamoDBService) WaitForReadyTable(ctx context.Context) error {
	if db.policy.Timeout <= 0 {
		return db.pollReadyTable(ctx)
	}

	waitCtx, cancel := context.WithTimeout(ctx, db.policy.Timeout)
	defer cancel()

	err := db.pollReadyTable(waitCtx)
	if err != nil && ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("table %s not active after %s: %w", db.tableName, db.policy.Timeout, ErrTableNotReady)
	}

	return err
}

func (db dynamoDBService) pollReadyTable(ctx context.Context) error {
	if err := db.sleep(ctx, db.policy.InitialDelay); err != nil {
		return fmt.Errorf("waiting for table %s: %w", db.tableName, err)
	}

	var policy backoff.BackOff = backoff.NewConstantBackOff(db.policy.PollInterval)
	if db.policy.MaxAttempts > 0 {
		policy = backoff.WithMaxRetries(policy, uint64(db.policy.MaxAttempts))
	}
	policy = backoff.WithContext(policy, ctx)

	for {
		description, err := db.DescribeTable(ctx)
		if err != nil {
			return err
		}

		if aws.StringValue(description.TableStatus) == dynamodb.TableStatusActive {
			return nil
		}

		next := policy.NextBackOff()
		if next == backoff.Stop {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("waiting for table %s: %w", db.tableName, err)
			}

			return fmt.Errorf("table %s is %s: %w", db.tableName, aws.StringValue(description.TableStatus), ErrTableNotReady)
		}

		if err := db.sleep(ctx, next); err != nil {
			return fmt.Errorf("waiting for table %s: %w", db.tableName, err)
		}
	}
}

// Scan reads a single page of items, the continuation key is reported but not followed
func (db dynamoDBService) Scan(ctx context.Context) (ScanPage, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(db.tableName),
	}

	output, err := db.api.ScanWithContext(ctx, input)
	if err != nil {
		return ScanPage{}, fmt.Errorf("unable to scan table %s: %w", db.tableName, err)
	}

	items := make([]DynamoDBItem, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, item)
	}

	return ScanPage{Items: items, Truncated: len(output.LastEvaluatedKey) > 0}, nil
}

func (db dynamoDBService) PutItem(ctx context.Context, item DynamoDBItem) error {
	input := &dynamodb.PutItemInput{
		TableName: aws.String(db.tableName),
		Item:      item,
	}

	if _, err := db.api.PutItemWithContext(ctx, input); err != nil {
		return fmt.Errorf("unable to put item to table %s: %w", db.tableName, err)
	}

	return nil
}
