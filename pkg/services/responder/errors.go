package responder

import (
	"errors"
	"fmt"
)

// ErrMissingConfig is returned when no notification topic is configured.
var ErrMissingConfig = errors.New("SNS_TOPIC_ARN environment variable not set")

type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Path)
}

type ServiceCallError struct {
	Service   string
	Operation string
	Err       error
}

func (e *ServiceCallError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

func (e *ServiceCallError) Unwrap() error {
	return e.Err
}
