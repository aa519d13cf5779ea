package dynamodbcopy_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tablecopy/dynamodbcopy"
	"github.com/tablecopy/dynamodbcopy/mocks"
)

const (
	expectedTableName = "test-table-name"
)

var testPolicy = dynamodbcopy.ReadyPolicy{
	InitialDelay: 5 * time.Second,
	PollInterval: 3 * time.Second,
}

func testSleeper(ctx context.Context, d time.Duration) error {
	return nil
}

func TestDescribeTable(t *testing.T) {
	t.Parallel()

	expectedDescription := buildDescribeTableOutput(expectedTableName, dynamodb.TableStatusActive)
	expectedError := errors.New("describeTableError")
	notFoundError := awserr.New(dynamodb.ErrCodeResourceNotFoundException, "table not found", nil)

	descriptionMock := mock.AnythingOfType("*dynamodb.DescribeTableInput")

	testCases := []struct {
		subTestName         string
		mocker              func(api *mocks.DynamoDBAPI)
		expectedError       error
		expectedDescription *dynamodb.TableDescription
	}{
		{
			"Error",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(nil, expectedError).Once()
			},
			expectedError,
			nil,
		},
		{
			"NotFound",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(nil, notFoundError).Once()
			},
			dynamodbcopy.ErrTableNotFound,
			nil,
		},
		{
			"Success",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(expectedDescription, nil).Once()
			},
			nil,
			expectedDescription.Table,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(
			testCase.subTestName,
			func(st *testing.T) {
				api := &mocks.DynamoDBAPI{}

				testCase.mocker(api)

				service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, testSleeper, testPolicy)

				description, err := service.DescribeTable(context.Background())

				if testCase.expectedError == nil {
					assert.NoError(st, err)
				} else {
					assert.ErrorIs(st, err, testCase.expectedError)
				}
				assert.Equal(st, testCase.expectedDescription, description)

				api.AssertExpectations(st)
			},
		)
	}
}

func TestCreateTable(t *testing.T) {
	t.Parallel()

	expectedError := errors.New("createTableError")

	testCases := []struct {
		subTestName   string
		mocker        func(api *mocks.DynamoDBAPI, expectedInput *dynamodb.CreateTableInput)
		expectedError error
	}{
		{
			"Error",
			func(api *mocks.DynamoDBAPI, expectedInput *dynamodb.CreateTableInput) {
				api.On("CreateTableWithContext", mock.Anything, expectedInput).Return(nil, expectedError).Once()
			},
			expectedError,
		},
		{
			"Success",
			func(api *mocks.DynamoDBAPI, expectedInput *dynamodb.CreateTableInput) {
				api.On("CreateTableWithContext", mock.Anything, expectedInput).
					Return(&dynamodb.CreateTableOutput{}, nil).
					Once()
			},
			nil,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(
			testCase.subTestName,
			func(st *testing.T) {
				api := &mocks.DynamoDBAPI{}

				expectedInput := buildCreateTableInput()
				expectedInput.TableName = aws.String(expectedTableName)

				testCase.mocker(api, expectedInput)

				service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, testSleeper, testPolicy)

				err := service.CreateTable(context.Background(), buildCreateTableInput())

				if testCase.expectedError == nil {
					assert.NoError(st, err)
				} else {
					assert.ErrorIs(st, err, testCase.expectedError)
				}

				api.AssertExpectations(st)
			},
		)
	}
}

func TestWaitForReadyTable(t *testing.T) {
	t.Parallel()

	expectedError := errors.New("waitForReadyTableError")

	activeDescribeOutput := buildDescribeTableOutput(expectedTableName, dynamodb.TableStatusActive)
	creatingDescribeOutput := buildDescribeTableOutput(expectedTableName, dynamodb.TableStatusCreating)

	descriptionMock := mock.AnythingOfType("*dynamodb.DescribeTableInput")

	canceledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	testCases := []struct {
		subTestName    string
		mocker         func(api *mocks.DynamoDBAPI)
		ctx            context.Context
		maxAttempts    int
		expectedCalled int
		expectedError  error
	}{
		{
			"Error",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(nil, expectedError).Once()
			},
			context.Background(),
			0,
			1,
			expectedError,
		},
		{
			"SuccessOnFirstAttempt",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(activeDescribeOutput, nil).Once()
			},
			context.Background(),
			0,
			1,
			nil,
		},
		{
			"SuccessOnMultipleAttempts",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(creatingDescribeOutput, nil).Times(4)
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(activeDescribeOutput, nil).Once()
			},
			context.Background(),
			0,
			5,
			nil,
		},
		{
			"MaxAttemptsReached",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(creatingDescribeOutput, nil).Times(3)
			},
			context.Background(),
			2,
			3,
			dynamodbcopy.ErrTableNotReady,
		},
		{
			"Canceled",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(creatingDescribeOutput, nil).Once()
			},
			canceledCtx,
			0,
			1,
			context.Canceled,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(
			testCase.subTestName,
			func(st *testing.T) {
				api := &mocks.DynamoDBAPI{}

				testCase.mocker(api)

				called := 0
				sleeperFn := func(ctx context.Context, d time.Duration) error {
					called++

					return nil
				}

				policy := testPolicy
				policy.MaxAttempts = testCase.maxAttempts

				service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, sleeperFn, policy)

				err := service.WaitForReadyTable(testCase.ctx)

				if testCase.expectedError == nil {
					assert.NoError(st, err)
				} else {
					assert.ErrorIs(st, err, testCase.expectedError)
				}
				assert.Equal(st, testCase.expectedCalled, called)

				api.AssertExpectations(st)
			},
		)
	}
}

func TestWaitForReadyTable_Timeout(t *testing.T) {
	t.Parallel()

	creatingDescribeOutput := buildDescribeTableOutput(expectedTableName, dynamodb.TableStatusCreating)
	descriptionMock := mock.AnythingOfType("*dynamodb.DescribeTableInput")

	blockingSleeper := func(ctx context.Context, d time.Duration) error {
		<-ctx.Done()

		return ctx.Err()
	}

	canceledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	testCases := []struct {
		subTestName   string
		mocker        func(api *mocks.DynamoDBAPI)
		ctx           context.Context
		sleeper       dynamodbcopy.Sleeper
		policy        dynamodbcopy.ReadyPolicy
		expectedError error
	}{
		{
			"TimeoutWhilePolling",
			func(api *mocks.DynamoDBAPI) {
				api.On("DescribeTableWithContext", mock.Anything, descriptionMock).Return(creatingDescribeOutput, nil)
			},
			context.Background(),
			dynamodbcopy.ContextSleeper,
			dynamodbcopy.ReadyPolicy{PollInterval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond},
			dynamodbcopy.ErrTableNotReady,
		},
		{
			"TimeoutDuringInitialDelay",
			func(api *mocks.DynamoDBAPI) {},
			context.Background(),
			blockingSleeper,
			dynamodbcopy.ReadyPolicy{InitialDelay: time.Hour, PollInterval: time.Second, Timeout: 10 * time.Millisecond},
			dynamodbcopy.ErrTableNotReady,
		},
		{
			"CanceledBeforeTimeout",
			func(api *mocks.DynamoDBAPI) {},
			canceledCtx,
			blockingSleeper,
			dynamodbcopy.ReadyPolicy{InitialDelay: time.Hour, PollInterval: time.Second, Timeout: time.Hour},
			context.Canceled,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(
			testCase.subTestName,
			func(st *testing.T) {
				api := &mocks.DynamoDBAPI{}

				testCase.mocker(api)

				service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, testCase.sleeper, testCase.policy)

				err := service.WaitForReadyTable(testCase.ctx)

				assert.ErrorIs(st, err, testCase.expectedError)
				if testCase.expectedError == dynamodbcopy.ErrTableNotReady {
					assert.NotErrorIs(st, err, context.DeadlineExceeded)
				} else {
					assert.NotErrorIs(st, err, dynamodbcopy.ErrTableNotReady)
				}

				api.AssertExpectations(st)
			},
		)
	}
}

func TestWaitForReadyTable_SleepDurations(t *testing.T) {
	t.Parallel()

	descriptionMock := mock.AnythingOfType("*dynamodb.DescribeTableInput")

	api := &mocks.DynamoDBAPI{}
	api.On("DescribeTableWithContext", mock.Anything, descriptionMock).
		Return(buildDescribeTableOutput(expectedTableName, dynamodb.TableStatusCreating), nil).
		Twice()
	api.On("DescribeTableWithContext", mock.Anything, descriptionMock).
		Return(buildDescribeTableOutput(expectedTableName, dynamodb.TableStatusActive), nil).
		Once()

	var slept []time.Duration
	sleeperFn := func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)

		return nil
	}

	service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, sleeperFn, testPolicy)

	err := service.WaitForReadyTable(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []time.Duration{5 * time.Second, 3 * time.Second, 3 * time.Second}, slept)

	api.AssertExpectations(t)
}

func TestScan(t *testing.T) {
	t.Parallel()

	expectedError := errors.New("scan error")
	items := []map[string]*dynamodb.AttributeValue{
		{"id": {S: aws.String("1")}},
		{"id": {S: aws.String("2")}},
	}

	testCases := []struct {
		subTestName   string
		mocker        func(api *mocks.DynamoDBAPI)
		expectedPage  dynamodbcopy.ScanPage
		expectedError error
	}{
		{
			"Error",
			func(api *mocks.DynamoDBAPI) {
				api.On("ScanWithContext", mock.Anything, buildScanInput()).Return(nil, expectedError).Once()
			},
			dynamodbcopy.ScanPage{},
			expectedError,
		},
		{
			"SinglePage",
			func(api *mocks.DynamoDBAPI) {
				api.On("ScanWithContext", mock.Anything, buildScanInput()).
					Return(&dynamodb.ScanOutput{Items: items}, nil).
					Once()
			},
			dynamodbcopy.ScanPage{Items: []dynamodbcopy.DynamoDBItem{items[0], items[1]}},
			nil,
		},
		{
			"Truncated",
			func(api *mocks.DynamoDBAPI) {
				output := &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: items[1]}
				api.On("ScanWithContext", mock.Anything, buildScanInput()).Return(output, nil).Once()
			},
			dynamodbcopy.ScanPage{Items: []dynamodbcopy.DynamoDBItem{items[0], items[1]}, Truncated: true},
			nil,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(
			testCase.subTestName,
			func(st *testing.T) {
				api := &mocks.DynamoDBAPI{}

				testCase.mocker(api)

				service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, testSleeper, testPolicy)

				page, err := service.Scan(context.Background())

				if testCase.expectedError == nil {
					assert.NoError(st, err)
				} else {
					assert.ErrorIs(st, err, testCase.expectedError)
				}
				assert.Equal(st, testCase.expectedPage, page)

				api.AssertExpectations(st)
			},
		)
	}
}

func TestPutItem(t *testing.T) {
	t.Parallel()

	item := dynamodbcopy.DynamoDBItem{"id": {S: aws.String("1")}}
	expectedInput := &dynamodb.PutItemInput{
		TableName: aws.String(expectedTableName),
		Item:      item,
	}

	validationError := awserr.New("ValidationException", "One or more parameter values were invalid", nil)
	expectedError := errors.New("put item error")

	testCases := []struct {
		subTestName        string
		mocker             func(api *mocks.DynamoDBAPI)
		expectedError      error
		expectedValidation bool
	}{
		{
			"Error",
			func(api *mocks.DynamoDBAPI) {
				api.On("PutItemWithContext", mock.Anything, expectedInput).Return(nil, expectedError).Once()
			},
			expectedError,
			false,
		},
		{
			"ValidationError",
			func(api *mocks.DynamoDBAPI) {
				api.On("PutItemWithContext", mock.Anything, expectedInput).Return(nil, validationError).Once()
			},
			validationError,
			true,
		},
		{
			"Success",
			func(api *mocks.DynamoDBAPI) {
				api.On("PutItemWithContext", mock.Anything, expectedInput).Return(&dynamodb.PutItemOutput{}, nil).Once()
			},
			nil,
			false,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(
			testCase.subTestName,
			func(st *testing.T) {
				api := &mocks.DynamoDBAPI{}

				testCase.mocker(api)

				service := dynamodbcopy.NewDynamoDBService(expectedTableName, api, testSleeper, testPolicy)

				err := service.PutItem(context.Background(), item)

				if testCase.expectedError == nil {
					assert.NoError(st, err)
				} else {
					assert.ErrorIs(st, err, testCase.expectedError)
				}
				assert.Equal(st, testCase.expectedValidation, dynamodbcopy.IsValidationError(err))

				api.AssertExpectations(st)
			},
		)
	}
}

func buildScanInput() *dynamodb.ScanInput {
	return &dynamodb.ScanInput{
		TableName: aws.String(expectedTableName),
	}
}

func buildCreateTableInput() *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		KeySchema: []*dynamodb.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: aws.String(dynamodb.KeyTypeHash)},
		},
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
		},
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
	}
}

func buildDescribeTableOutput(tableName, status string) *dynamodb.DescribeTableOutput {
	return &dynamodb.DescribeTableOutput{
		Table: &dynamodb.TableDescription{
			TableName:   aws.String(tableName),
			TableStatus: aws.String(status),
		},
	}
}
