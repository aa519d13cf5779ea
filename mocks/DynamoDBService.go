package mocks

import (
	context "context"

	dynamodb "github.com/aws/aws-sdk-go/service/dynamodb"
	dynamodbcopy "github.com/tablecopy/dynamodbcopy"

	mock "github.com/stretchr/testify/mock"
)

// DynamoDBService is a testify mock for the DynamoDBService type
type DynamoDBService struct {
	mock.Mock
}

// CreateTable provides a mock function with given fields: ctx, input
func (_m *DynamoDBService) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	ret := _m.Called(ctx, input)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *dynamodb.CreateTableInput) error); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DescribeTable provides a mock function with given fields: ctx
func (_m *DynamoDBService) DescribeTable(ctx context.Context) (*dynamodb.TableDescription, error) {
	ret := _m.Called(ctx)

	var r0 *dynamodb.TableDescription
	if rf, ok := ret.Get(0).(func(context.Context) *dynamodb.TableDescription); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dynamodb.TableDescription)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PutItem provides a mock function with given fields: ctx, item
func (_m *DynamoDBService) PutItem(ctx context.Context, item dynamodbcopy.DynamoDBItem) error {
	ret := _m.Called(ctx, item)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, dynamodbcopy.DynamoDBItem) error); ok {
		r0 = rf(ctx, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Scan provides a mock function with given fields: ctx
func (_m *DynamoDBService) Scan(ctx context.Context) (dynamodbcopy.ScanPage, error) {
	ret := _m.Called(ctx)

	var r0 dynamodbcopy.ScanPage
	if rf, ok := ret.Get(0).(func(context.Context) dynamodbcopy.ScanPage); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(dynamodbcopy.ScanPage)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TableName provides a mock function with given fields:
func (_m *DynamoDBService) TableName() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// WaitForReadyTable provides a mock function with given fields: ctx
func (_m *DynamoDBService) WaitForReadyTable(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
