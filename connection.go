package dynamodbcopy

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Connection identifies the credentials and location used to reach a table
type Connection struct {
	Profile  string
	RoleArn  string
	Region   string
	Endpoint string
}

// APIFactory builds a DynamoDBAPI for a connection
type APIFactory func(conn Connection) DynamoDBAPI

// NewDynamoDBAPI creates a client from the shared aws config. No request is sent until first use.
func NewDynamoDBAPI(conn Connection) DynamoDBAPI {
	config := aws.Config{}
	if conn.Region != "" {
		config.Region = aws.String(conn.Region)
	}
	if conn.Endpoint != "" {
		config.Endpoint = aws.String(conn.Endpoint)
	}

	options := session.Options{
		Config:            config,
		Profile:           conn.Profile,
		SharedConfigState: session.SharedConfigEnable,
	}

	currentSession := session.Must(session.NewSessionWithOptions(options))
	if conn.RoleArn != "" {
		roleCredentials := stscreds.NewCredentials(currentSession, conn.RoleArn)

		return dynamodb.New(currentSession, &aws.Config{Credentials: roleCredentials})
	}

	return dynamodb.New(currentSession)
}

// ResolveAPIs returns the source and target clients, sharing a single client when both connections are equal
func ResolveAPIs(config Config, factory APIFactory) (DynamoDBAPI, DynamoDBAPI) {
	src := config.SourceConnection()
	trg := config.TargetConnection()

	srcAPI := factory(src)
	if src == trg {
		return srcAPI, srcAPI
	}

	return srcAPI, factory(trg)
}
