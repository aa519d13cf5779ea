package mocks

import (
	aws "github.com/aws/aws-sdk-go/aws"
	dynamodb "github.com/aws/aws-sdk-go/service/dynamodb"
	mock "github.com/stretchr/testify/mock"

	request "github.com/aws/aws-sdk-go/aws/request"
)

// DynamoDBAPI is a testify mock for the DynamoDBAPI type
type DynamoDBAPI struct {
	mock.Mock
}

// CreateTableWithContext provides a mock function with given fields: ctx, input, opts
func (_m *DynamoDBAPI) CreateTableWithContext(ctx aws.Context, input *dynamodb.CreateTableInput, opts ...request.Option) (*dynamodb.CreateTableOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *dynamodb.CreateTableOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *dynamodb.CreateTableInput) *dynamodb.CreateTableOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dynamodb.CreateTableOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *dynamodb.CreateTableInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DescribeTableWithContext provides a mock function with given fields: ctx, input, opts
func (_m *DynamoDBAPI) DescribeTableWithContext(ctx aws.Context, input *dynamodb.DescribeTableInput, opts ...request.Option) (*dynamodb.DescribeTableOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *dynamodb.DescribeTableOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *dynamodb.DescribeTableInput) *dynamodb.DescribeTableOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dynamodb.DescribeTableOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *dynamodb.DescribeTableInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PutItemWithContext provides a mock function with given fields: ctx, input, opts
func (_m *DynamoDBAPI) PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *dynamodb.PutItemOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *dynamodb.PutItemInput) *dynamodb.PutItemOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dynamodb.PutItemOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *dynamodb.PutItemInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ScanWithContext provides a mock function with given fields: ctx, input, opts
func (_m *DynamoDBAPI) ScanWithContext(ctx aws.Context, input *dynamodb.ScanInput, opts ...request.Option) (*dynamodb.ScanOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *dynamodb.ScanOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *dynamodb.ScanInput) *dynamodb.ScanOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dynamodb.ScanOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *dynamodb.ScanInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
