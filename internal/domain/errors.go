package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// UnauthenticatedError is raised before any network I/O when no session
// credential is available for an outbound call.
type UnauthenticatedError struct {
	Msg string
}

func (e UnauthenticatedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "not authenticated"
}

// RemoteError carries a non-success response from the hotel backend. Message
// is the backend's own "message" field when the body was parseable.
type RemoteError struct {
	Status  int
	Message string
}

func (e RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	return msg
}

// MalformedResponseError means the backend answered success but the body
// matched neither of the two known envelope shapes.
type MalformedResponseError struct {
	Msg string
}

func (e MalformedResponseError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "malformed backend response"
}

// TimeoutError wraps a request that exceeded the gateway deadline.
type TimeoutError struct {
	Err error
}

func (e TimeoutError) Error() string { return "request timed out" }

func (e TimeoutError) Unwrap() error { return e.Err }

// ExportInProgressError rejects a repeat export while one is still preparing.
type ExportInProgressError struct{}

func (e ExportInProgressError) Error() string { return "an export is already in progress" }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsUnauthenticated(err error) bool {
	var target UnauthenticatedError
	return errors.As(err, &target)
}

func IsRemote(err error) bool {
	var target RemoteError
	return errors.As(err, &target)
}

func IsMalformedResponse(err error) bool {
	var target MalformedResponseError
	return errors.As(err, &target)
}

func IsTimeout(err error) bool {
	var target TimeoutError
	return errors.As(err, &target)
}

func IsExportInProgress(err error) bool {
	var target ExportInProgressError
	return errors.As(err, &target)
}
