package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrNotInitialized = errors.New("not initialized")
)

// ContractError is a numbered failure returned by a ledger operation.
// It unwraps to one of the sentinel categories above, so callers can match
// either the exact error or its category.
type ContractError struct {
	Code    uint32
	Message string
	kind    error
}

func newContractError(code uint32, message string, kind error) *ContractError {
	return &ContractError{Code: code, Message: message, kind: kind}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract error #%d: %s", e.Code, e.Message)
}

func (e *ContractError) Unwrap() error { return e.kind }

// Governance errors.
var (
	ErrNotAdmin          = newContractError(2001, "caller is not the administrator", ErrForbidden)
	ErrClubAlreadyExists = newContractError(2002, "club already exists", ErrAlreadyExists)
	ErrClubNotFound      = newContractError(2003, "club not found", ErrNotFound)
	ErrAlreadyMember     = newContractError(2004, "already a member of the club", ErrConflict)
	ErrNotMember         = newContractError(2005, "not a member of the club", ErrForbidden)
	ErrProposalNotFound  = newContractError(2006, "proposal not found", ErrNotFound)
	ErrVotingEnded       = newContractError(2007, "voting period has ended", ErrConflict)
	ErrAlreadyVoted      = newContractError(2008, "already voted on this proposal", ErrConflict)
)

// Wallet errors.
var (
	ErrStudentAlreadyRegistered = newContractError(1001, "student already registered", ErrAlreadyExists)
	ErrNotOrganizer             = newContractError(1002, "only the administrator can create events", ErrForbidden)
	ErrEventNotFound            = newContractError(1003, "event not found", ErrNotFound)
	ErrEventNotActive           = newContractError(1004, "event is not active", ErrConflict)
	ErrAlreadyParticipated      = newContractError(1005, "already participated in the event", ErrConflict)
	ErrEventFull                = newContractError(1006, "event is full", ErrConflict)
	ErrInvalidAmount            = newContractError(1007, "amount must be positive", ErrValidation)
	ErrInsufficientBalance      = newContractError(1008, "insufficient balance", ErrConflict)
)

// ErrBalanceOverflow aborts a credit that would leave the int64 range.
var ErrBalanceOverflow = fmt.Errorf("balance overflow: %w", ErrConflict)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
