package dynamodbcopy

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// KeySchema names the primary key attributes of a table. RangeKey is empty for hash-only keys.
type KeySchema struct {
	HashKey  string
	RangeKey string
}

func (k KeySchema) HasRangeKey() bool {
	return k.RangeKey != ""
}

func (k KeySchema) IsKey(attributeName string) bool {
	return attributeName == k.HashKey || (k.HasRangeKey() && attributeName == k.RangeKey)
}

// TableSchema is the source table description together with its derived key schema
type TableSchema struct {
	Description *dynamodb.TableDescription
	Key         KeySchema
}

// NewKeySchema classifies the key schema entries of a description by their key type
func NewKeySchema(description *dynamodb.TableDescription) (KeySchema, error) {
	key := KeySchema{}

	for _, element := range description.KeySchema {
		switch aws.StringValue(element.KeyType) {
		case dynamodb.KeyTypeHash:
			key.HashKey = aws.StringValue(element.AttributeName)
		case dynamodb.KeyTypeRange:
			key.RangeKey = aws.StringValue(element.AttributeName)
		}
	}

	if key.HashKey == "" {
		return KeySchema{}, fmt.Errorf("table %s has no hash key", aws.StringValue(description.TableName))
	}

	return key, nil
}

type SchemaReader interface {
	Read(ctx context.Context) (TableSchema, error)
}

type schemaService struct {
	srcTable DynamoDBService
	logger   Logger
	debug    Logger
}

func NewSchemaReader(srcTableService DynamoDBService, logger, debug Logger) SchemaReader {
	return schemaService{
		srcTable: srcTableService,
		logger:   logger,
		debug:    debug,
	}
}

func (s schemaService) Read(ctx context.Context) (TableSchema, error) {
	description, err := s.srcTable.DescribeTable(ctx)
	if err != nil {
		return TableSchema{}, err
	}

	s.debug.Printf("source table description %s", description)

	key, err := NewKeySchema(description)
	if err != nil {
		return TableSchema{}, err
	}

	s.logger.Printf("source table %s hash key %q range key %q", s.srcTable.TableName(), key.HashKey, key.RangeKey)

	return TableSchema{Description: description, Key: key}, nil
}
