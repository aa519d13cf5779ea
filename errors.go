package dynamodbcopy

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

const validationExceptionCode = "ValidationException"

var (
	// ErrTableNotFound is returned when a described table does not exist
	ErrTableNotFound = errors.New("table not found")
	// ErrTableNotReady is returned when a table did not become active within the poll ceiling
	ErrTableNotReady = errors.New("table not ready")
)

// IsValidationError reports whether the service rejected a request because of its shape
func IsValidationError(err error) bool {
	return hasErrorCode(err, validationExceptionCode)
}

func hasErrorCode(err error, code string) bool {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		return aerr.Code() == code
	}

	return false
}
