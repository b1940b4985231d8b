package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for classification with errors.Is. Every constructed error
// in this package unwraps to exactly one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrIllegalState      = errors.New("illegal state")
	ErrDeadlineExceeded  = errors.New("deadline exceeded")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates that a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter
// and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthorizationError indicates that the caller lacks the role required for an
// operation. Address identifies the caller, Operation the gated action.
type AuthorizationError struct {
	Operation string
	Address   string
	Cause     error
}

// NewAuthorizationError creates an AuthorizationError for the given caller and
// operation.
func NewAuthorizationError(operation, address string) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Address: address}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an
// underlying cause.
func NewAuthorizationErrorWithCause(operation, address string, cause error) *AuthorizationError {
	return &AuthorizationError{Operation: operation, Address: address, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s cannot %s (cause: %s)",
			ErrNotAuthorized, sanitize(e.Address), sanitize(e.Operation), e.Cause)
	}
	return fmt.Sprintf("%s: %s cannot %s", ErrNotAuthorized, sanitize(e.Address), sanitize(e.Operation))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrNotAuthorized
}

// StateError indicates that an operation is not admissible from the object's
// current state, such as a non-sequential lifecycle transition or an operation
// on an inactive escrow.
type StateError struct {
	Operation string
	Reason    string
	Cause     error
}

// NewStateError creates a StateError for the given operation and reason.
func NewStateError(operation, reason string) *StateError {
	return &StateError{Operation: operation, Reason: reason}
}

// NewStateErrorWithCause creates a StateError wrapping an underlying cause.
func NewStateErrorWithCause(operation, reason string, cause error) *StateError {
	return &StateError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *StateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s: %s (cause: %s)",
			ErrIllegalState, sanitize(e.Operation), sanitize(e.Reason), e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s: %s", ErrIllegalState, sanitize(e.Operation), sanitize(e.Reason))
}

func (e *StateError) Unwrap() error {
	return ErrIllegalState
}

// DeadlineError indicates that an action was attempted outside its allowed
// time window.
type DeadlineError struct {
	Operation string
	Deadline  time.Time
	Cause     error
}

// NewDeadlineError creates a DeadlineError for the given operation and deadline.
func NewDeadlineError(operation string, deadline time.Time) *DeadlineError {
	return &DeadlineError{Operation: operation, Deadline: deadline}
}

// NewDeadlineErrorWithCause creates a DeadlineError wrapping an underlying cause.
func NewDeadlineErrorWithCause(operation string, deadline time.Time, cause error) *DeadlineError {
	return &DeadlineError{Operation: operation, Deadline: deadline, Cause: cause}
}

func (e *DeadlineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s after %s (cause: %s)",
			ErrDeadlineExceeded, sanitize(e.Operation), e.Deadline.UTC().Format(time.RFC3339), e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s after %s",
		ErrDeadlineExceeded, sanitize(e.Operation), e.Deadline.UTC().Format(time.RFC3339))
}

func (e *DeadlineError) Unwrap() error {
	return ErrDeadlineExceeded
}

// DuplicateError indicates that a non-idempotent operation was repeated, such
// as opening a second escrow for a shipment or releasing a milestone twice.
type DuplicateError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewDuplicateError creates a DuplicateError for the named parameter and
// identifier.
func NewDuplicateError(paramName string, id any) *DuplicateError {
	return &DuplicateError{ParamName: paramName, ID: id}
}

// NewDuplicateErrorWithCause creates a DuplicateError wrapping an underlying
// cause.
func NewDuplicateErrorWithCause(paramName string, id any, cause error) *DuplicateError {
	return &DuplicateError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *DuplicateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %s)", ErrAlreadyExists, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrAlreadyExists, sanitize(e.ParamName), e.ID)
}

func (e *DuplicateError) Unwrap() error {
	return ErrAlreadyExists
}

// InsufficientFundsError indicates that a token movement failed because the
// payer's balance or allowance does not cover the requested amount.
type InsufficientFundsError struct {
	Address   string
	Required  int64
	Available int64
	Cause     error
}

// NewInsufficientFundsError creates an InsufficientFundsError for the given
// payer, requested amount, and available amount.
func NewInsufficientFundsError(address string, required, available int64) *InsufficientFundsError {
	return &InsufficientFundsError{Address: address, Required: required, Available: available}
}

// NewInsufficientFundsErrorWithCause creates an InsufficientFundsError wrapping
// an underlying cause.
func NewInsufficientFundsErrorWithCause(address string, required, available int64, cause error) *InsufficientFundsError {
	return &InsufficientFundsError{Address: address, Required: required, Available: available, Cause: cause}
}

func (e *InsufficientFundsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s requires %d, has %d (cause: %s)",
			ErrInsufficientFunds, sanitize(e.Address), e.Required, e.Available, e.Cause)
	}
	return fmt.Sprintf("%s: %s requires %d, has %d",
		ErrInsufficientFunds, sanitize(e.Address), e.Required, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
