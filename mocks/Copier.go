package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	dynamodbcopy "github.com/tablecopy/dynamodbcopy"
)

// Copier is a testify mock for the Copier type
type Copier struct {
	mock.Mock
}

// Copy provides a mock function with given fields: ctx, key, observe
func (_m *Copier) Copy(ctx context.Context, key dynamodbcopy.KeySchema, observe func(dynamodbcopy.ItemOutcome)) (dynamodbcopy.CopySummary, error) {
	ret := _m.Called(ctx, key, observe)

	var r0 dynamodbcopy.CopySummary
	if rf, ok := ret.Get(0).(func(context.Context, dynamodbcopy.KeySchema, func(dynamodbcopy.ItemOutcome)) dynamodbcopy.CopySummary); ok {
		r0 = rf(ctx, key, observe)
	} else {
		r0 = ret.Get(0).(dynamodbcopy.CopySummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, dynamodbcopy.KeySchema, func(dynamodbcopy.ItemOutcome)) error); ok {
		r1 = rf(ctx, key, observe)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
