package osv

import (
	"fmt"
)

const (
	opRequest  = "request to OSV failed"
	opReadBody = "reading OSV body failed"
)

// TransportError means no complete response was received.
// Op names the phase that failed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is returned for a non-2xx response. Body is kept verbatim.
type ServiceError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("OSV error %s: %s", e.Status, e.Body)
}

// DecodeError means the body did not match the expected schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("parsing OSV JSON failed: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
