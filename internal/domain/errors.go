package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when caller-supplied data fails a
// precondition (empty code, missing session id or message, policy block).
// Surfaced as HTTP 400; everything else in the taxonomy maps to 500.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// UpstreamError reports a non-success HTTP status from the reasoning
// service. No retry is performed; the single attempt's status and reason
// are carried to the caller.
type UpstreamError struct {
	Status int
	Reason string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("reasoning service error [%d]: %s", e.Status, e.Reason)
}

// ContractError reports a 200 response from the reasoning service whose
// body does not satisfy the expected shape: missing choices, empty
// completion content, or content that does not parse as the fixed JSON
// contract. No partial recovery is attempted.
type ContractError struct {
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("reasoning service contract violation: %s", e.Detail)
}

// StorageError wraps a failed store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
