package services

import "fmt"

// ValidationError reports a request the service refuses to process
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NotFoundError reports a missing resource
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}
