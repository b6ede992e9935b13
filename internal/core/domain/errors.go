package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrInvalidViewMode      = errors.New("invalid view mode")

	ErrEmptyField       = errors.New("field is required")
	ErrDueDateInPast    = errors.New("due date cannot be in the past")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrNoProfileChanges = errors.New("no profile field to update")
)

type Failure string

const (
	FailureLoad         Failure = "load failed"
	FailureValidation   Failure = "validation failed"
	FailureSubmission   Failure = "submission failed"
	FailureStatusUpdate Failure = "status update failed"
	FailureDelete       Failure = "delete failed"
	FailureAuth         Failure = "authentication failed"
)

// ValidationError is raised before any remote call is made.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ServiceError describes a failed call to the remote service. Message holds
// the field-level message from the error payload, if any.
type ServiceError struct {
	StatusCode int
	Field      string
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("remote service error (status %d)", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// OperationError is the typed outcome of a failed synchronizer or
// authenticator operation.
type OperationError struct {
	Op      string
	Failure Failure
	Err     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Failure, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func NewOperationError(op string, failure Failure, err error) *OperationError {
	return &OperationError{Op: op, Failure: failure, Err: err}
}

// FailureOf reports the failure kind carried by err, if any.
func FailureOf(err error) (Failure, bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Failure, true
	}
	return "", false
}

// ServiceMessage returns the remote field-level message carried by err.
func ServiceMessage(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return ""
}
