package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify every caller-facing failure the core can produce.
// Handlers and the HTTP layer branch on these via errors.Is; the concrete
// error types below carry the detail.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrObjectNotFound  = errors.New("object not found")
	ErrConflict        = errors.New("conflict")
	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInternal        = errors.New("internal error")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// UnauthorizedError indicates that no actor identity was supplied at all.
type UnauthorizedError struct {
	Action string
}

func NewUnauthorizedError(action string) *UnauthorizedError {
	return &UnauthorizedError{Action: action}
}

func (e *UnauthorizedError) Error() string {
	if e.Action == "" {
		return ErrUnauthorized.Error()
	}
	return fmt.Sprintf("unauthorized: %s", sanitize(e.Action))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ForbiddenError indicates the actor is known but lacks the role or ownership
// required for the action. The message deliberately names only the action, not
// the resource state, so it cannot leak whether the resource exists.
type ForbiddenError struct {
	Action string
}

func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

func (e *ForbiddenError) Error() string {
	if e.Action == "" {
		return ErrForbidden.Error()
	}
	return fmt.Sprintf("forbidden: %s", sanitize(e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ObjectNotFoundError indicates a referenced entity id did not resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %v)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates the entity exists but is not in the state required
// for the requested transition (e.g. a load already matched to another carrier).
type ConflictError struct {
	ParamName string
	Detail    string
	Cause     error
}

func NewConflictError(paramName, detail string) *ConflictError {
	return &ConflictError{ParamName: paramName, Detail: detail}
}

func NewConflictErrorWithCause(paramName, detail string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	switch {
	case e.Detail != "" && e.Cause != nil:
		return sanitize(fmt.Sprintf("conflict: %s: %s (cause: %v)", e.ParamName, e.Detail, e.Cause))
	case e.Detail != "":
		return sanitize(fmt.Sprintf("conflict: %s: %s", e.ParamName, e.Detail))
	default:
		return sanitize(fmt.Sprintf("conflict: %s", e.ParamName))
	}
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %v)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a malformed or out-of-domain value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %v)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// InvalidStatusError indicates an unrecognized status transition target.
type InvalidStatusError struct {
	Target string
}

func NewInvalidStatusError(target string) *InvalidStatusError {
	return &InvalidStatusError{Target: target}
}

func (e *InvalidStatusError) Error() string {
	return sanitize(fmt.Sprintf("invalid status: %s", e.Target))
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// InternalError wraps unexpected storage-layer failures. It always triggers a
// transaction rollback in the layer that observes it.
type InternalError struct {
	Op    string
	Cause error
}

func NewInternalError(op string, cause error) *InternalError {
	return &InternalError{Op: op, Cause: cause}
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("internal error: %s (cause: %v)", e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("internal error: %s", e.Op))
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}
