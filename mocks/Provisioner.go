package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	dynamodbcopy "github.com/tablecopy/dynamodbcopy"
)

// Provisioner is a testify mock for the Provisioner type
type Provisioner struct {
	mock.Mock
}

// Ensure provides a mock function with given fields: ctx, source
func (_m *Provisioner) Ensure(ctx context.Context, source dynamodbcopy.TableSchema) (dynamodbcopy.ProvisionOutcome, error) {
	ret := _m.Called(ctx, source)

	var r0 dynamodbcopy.ProvisionOutcome
	if rf, ok := ret.Get(0).(func(context.Context, dynamodbcopy.TableSchema) dynamodbcopy.ProvisionOutcome); ok {
		r0 = rf(ctx, source)
	} else {
		r0 = ret.Get(0).(dynamodbcopy.ProvisionOutcome)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, dynamodbcopy.TableSchema) error); ok {
		r1 = rf(ctx, source)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
