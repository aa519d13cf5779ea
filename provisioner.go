package dynamodbcopy

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// ProvisionOutcome tells the caller what happened to the target table
type ProvisionOutcome int

const (
	// TableCreated means the target table did not exist and was created and is active
	TableCreated ProvisionOutcome = iota + 1
	// TableExists means the target table exists and there is nothing left to do
	TableExists
	// CreationSkipped means the target table exists and creation is disabled, the copy should proceed
	CreationSkipped
)

func (o ProvisionOutcome) String() string {
	switch o {
	case TableCreated:
		return "created"
	case TableExists:
		return "exists"
	case CreationSkipped:
		return "creation-skipped"
	default:
		return "unknown"
	}
}

type Provisioner interface {
	Ensure(ctx context.Context, source TableSchema) (ProvisionOutcome, error)
}

type provisioningService struct {
	trgTable         DynamoDBService
	disableCreation  bool
	preserveKeyTypes bool
	logger           Logger
	debug            Logger
}

func NewProvisioner(trgTableService DynamoDBService, config Config, logger, debug Logger) Provisioner {
	return provisioningService{
		trgTable:         trgTableService,
		disableCreation:  config.DisableCreation,
		preserveKeyTypes: config.PreserveKeyTypes,
		logger:           logger,
		debug:            debug,
	}
}

func (p provisioningService) Ensure(ctx context.Context, source TableSchema) (ProvisionOutcome, error) {
	tableName := p.trgTable.TableName()

	description, err := p.trgTable.DescribeTable(ctx)
	if err == nil {
		p.debug.Printf("target table description %s", description)

		if p.disableCreation {
			p.logger.Printf("creation of table %s is disabled, skipping", tableName)

			return CreationSkipped, nil
		}

		p.logger.Printf("table %s already exists", tableName)

		return TableExists, nil
	}

	if !errors.Is(err, ErrTableNotFound) {
		return 0, err
	}

	input := BuildCreateTableInput(source, p.preserveKeyTypes)
	p.debug.Printf("creating table %s %s", tableName, input)

	if err := p.trgTable.CreateTable(ctx, input); err != nil {
		return 0, err
	}

	p.logger.Printf("waiting for table %s to become active", tableName)

	if err := p.trgTable.WaitForReadyTable(ctx); err != nil {
		return 0, err
	}

	return TableCreated, nil
}

// BuildCreateTableInput mirrors the source key schema, billing mode and throughput.
// Key attributes are declared as strings unless preserveKeyTypes is set.
func BuildCreateTableInput(source TableSchema, preserveKeyTypes bool) *dynamodb.CreateTableInput {
	description := source.Description
	key := source.Key

	keySchema := []*dynamodb.KeySchemaElement{
		{AttributeName: aws.String(key.HashKey), KeyType: aws.String(dynamodb.KeyTypeHash)},
	}
	definitions := []*dynamodb.AttributeDefinition{
		{
			AttributeName: aws.String(key.HashKey),
			AttributeType: aws.String(keyAttributeType(description, key.HashKey, preserveKeyTypes)),
		},
	}

	if key.HasRangeKey() {
		keySchema = append(
			keySchema,
			&dynamodb.KeySchemaElement{AttributeName: aws.String(key.RangeKey), KeyType: aws.String(dynamodb.KeyTypeRange)},
		)
		definitions = append(
			definitions,
			&dynamodb.AttributeDefinition{
				AttributeName: aws.String(key.RangeKey),
				AttributeType: aws.String(keyAttributeType(description, key.RangeKey, preserveKeyTypes)),
			},
		)
	}

	input := &dynamodb.CreateTableInput{
		KeySchema:            keySchema,
		AttributeDefinitions: definitions,
		BillingMode:          aws.String(billingMode(description)),
	}

	if throughput := description.ProvisionedThroughput; throughput != nil {
		read := aws.Int64Value(throughput.ReadCapacityUnits)
		write := aws.Int64Value(throughput.WriteCapacityUnits)

		if read > 0 && write > 0 {
			input.ProvisionedThroughput = &dynamodb.ProvisionedThroughput{
				ReadCapacityUnits:  aws.Int64(read),
				WriteCapacityUnits: aws.Int64(write),
			}
		}
	}

	return input
}

// tables created before on-demand billing existed carry no billing mode summary
func billingMode(description *dynamodb.TableDescription) string {
	if description.BillingModeSummary == nil || description.BillingModeSummary.BillingMode == nil {
		return dynamodb.BillingModeProvisioned
	}

	return aws.StringValue(description.BillingModeSummary.BillingMode)
}

func keyAttributeType(description *dynamodb.TableDescription, attributeName string, preserve bool) string {
	if !preserve {
		return dynamodb.ScalarAttributeTypeS
	}

	for _, definition := range description.AttributeDefinitions {
		if aws.StringValue(definition.AttributeName) == attributeName {
			return aws.StringValue(definition.AttributeType)
		}
	}

	return dynamodb.ScalarAttributeTypeS
}
