package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for missing users, products, orders,
	// order items, return requests and notifications.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid is the sentinel for invalid argument values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrUnauthorized is the sentinel for acting on a resource owned by
	// someone else.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInsufficientStock is the sentinel for checkout-time oversell
	// attempts.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidTransition is the sentinel for illegal status changes.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports that an object could not be located.
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
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a parameter carried an invalid value.
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
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that a required parameter was missing.
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
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UnauthorizedError reports that the caller does not own the resource it
// tried to act on. It is never silently absorbed into success.
type UnauthorizedError struct {
	Actor    string
	Resource string
	Cause    error
}

func NewUnauthorizedError(actor, resource string) *UnauthorizedError {
	return &UnauthorizedError{Actor: actor, Resource: resource}
}

func NewUnauthorizedErrorWithCause(actor, resource string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Actor: actor, Resource: resource, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s may not act on %s (cause: %s)",
			ErrUnauthorized, e.Actor, e.Resource, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s may not act on %s", ErrUnauthorized, e.Actor, e.Resource))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InsufficientStockError reports that a checkout requested more units of a
// product than are available. Requested and Available describe the losing
// comparison when known.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func NewInsufficientStockError(productName string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductName: productName, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return sanitize(fmt.Sprintf("%s: product %q: requested %d, available %d",
		ErrInsufficientStock, e.ProductName, e.Requested, e.Available))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InvalidTransitionError reports an illegal status change request.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s may not move from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
