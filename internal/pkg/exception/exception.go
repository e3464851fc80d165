package exception

import (
	"errors"
	"fmt"
)

// ApplicationError carries an application level error together with the
// HTTP status code it should be reported with.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns the HTTP status code for the error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
