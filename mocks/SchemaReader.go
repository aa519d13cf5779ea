package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	dynamodbcopy "github.com/tablecopy/dynamodbcopy"
)

// SchemaReader is a testify mock for the SchemaReader type
type SchemaReader struct {
	mock.Mock
}

// Read provides a mock function with given fields: ctx
func (_m *SchemaReader) Read(ctx context.Context) (dynamodbcopy.TableSchema, error) {
	ret := _m.Called(ctx)

	var r0 dynamodbcopy.TableSchema
	if rf, ok := ret.Get(0).(func(context.Context) dynamodbcopy.TableSchema); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(dynamodbcopy.TableSchema)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
