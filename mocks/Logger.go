package mocks

import mock "github.com/stretchr/testify/mock"

// Logger is a testify mock for the Logger type
type Logger struct {
	mock.Mock
}

// Printf provides a mock function with given fields: format, msg
func (_m *Logger) Printf(format string, msg ...interface{}) {
	var _ca []interface{}
	_ca = append(_ca, format)
	_ca = append(_ca, msg...)
	_m.Called(_ca...)
}
