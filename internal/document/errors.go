package document

import (
	"errors"
	"fmt"
)

// Container and factory misuse. These are programmer errors, not domain
// rejections, and are never ReducerErrors.
var (
	// ErrUnknownKind is returned when a kind has no definition in the model.
	ErrUnknownKind = errors.New("unknown action kind")

	// ErrScopeMismatch is returned when an action is created in a scope its
	// kind is not defined for.
	ErrScopeMismatch = errors.New("scope mismatch")

	// ErrActionNotValidated is returned by Apply for actions not built by a Factory.
	ErrActionNotValidated = errors.New("action was not produced by a factory")

	// ErrModelMismatch is returned by Apply for actions of another document type.
	ErrModelMismatch = errors.New("action belongs to another document type")

	// ErrIndexGap is returned by Replay when record indices are not
	// contiguous from zero.
	ErrIndexGap = errors.New("history index gap")

	// ErrInvalidInput is matched by validation failures from any Validator.
	ErrInvalidInput = errors.New("invalid action input")
)

// Family groups reducer error codes by the kind of rejection.
type Family string

const (
	// FamilyNotFound means a referenced entity does not exist.
	FamilyNotFound Family = "NOT_FOUND"

	// FamilyDuplicateID means an add reused an existing entity id.
	FamilyDuplicateID Family = "DUPLICATE_ID"

	// FamilyInvalidTransition means the current status forbids the change.
	FamilyInvalidTransition Family = "INVALID_TRANSITION"

	// FamilyAlreadySuperseded means a record was already amended.
	FamilyAlreadySuperseded Family = "ALREADY_SUPERSEDED"
)

// ErrorCode is a stable identifier such as "DuplicateRiskIdError".
// Codes are part of the external contract; callers branch on them.
type ErrorCode string

// ReducerError is a domain rejection raised by an operation handler.
// When a handler returns one, the document is left untouched.
type ReducerError struct {
	// Code identifies the specific rejection.
	Code ErrorCode

	// Family is the rejection category.
	Family Family

	// Message is a human-readable description.
	Message string

	// EntityID is the offending entity, if any.
	EntityID string
}

// Error implements the error interface.
func (e *ReducerError) Error() string {
	if e.EntityID != "" {
		return fmt.Sprintf("%s: %s (id=%s)", e.Code, e.Message, e.EntityID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches another ReducerError with the same code, so callers can write
// errors.Is(err, &ReducerError{Code: "..."}).
func (e *ReducerError) Is(target error) bool {
	t, ok := target.(*ReducerError)
	return ok && t.Code == e.Code
}

// NotFound builds a FamilyNotFound error for entity (e.g. "risk").
func NotFound(code ErrorCode, entity, id string) *ReducerError {
	return &ReducerError{
		Code:     code,
		Family:   FamilyNotFound,
		Message:  fmt.Sprintf("%s %q not found", entity, id),
		EntityID: id,
	}
}

// DuplicateID builds a FamilyDuplicateID error for entity.
func DuplicateID(code ErrorCode, entity, id string) *ReducerError {
	return &ReducerError{
		Code:     code,
		Family:   FamilyDuplicateID,
		Message:  fmt.Sprintf("%s %q already exists", entity, id),
		EntityID: id,
	}
}

// InvalidTransition builds a FamilyInvalidTransition error.
func InvalidTransition(code ErrorCode, format string, args ...any) *ReducerError {
	return &ReducerError{
		Code:    code,
		Family:  FamilyInvalidTransition,
		Message: fmt.Sprintf(format, args...),
	}
}

// AlreadySuperseded builds a FamilyAlreadySuperseded error.
func AlreadySuperseded(code ErrorCode, entity, id, by string) *ReducerError {
	return &ReducerError{
		Code:     code,
		Family:   FamilyAlreadySuperseded,
		Message:  fmt.Sprintf("%s %q already superseded by %q", entity, id, by),
		EntityID: id,
	}
}

// AsReducerError extracts a ReducerError from err's chain.
func AsReducerError(err error) (*ReducerError, bool) {
	var re *ReducerError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// CodeOf returns the reducer error code in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	re, ok := AsReducerError(err)
	if !ok {
		return "", false
	}
	return re.Code, true
}

// IsNotFound reports whether err is a FamilyNotFound reducer error.
func IsNotFound(err error) bool { return hasFamily(err, FamilyNotFound) }

// IsDuplicateID reports whether err is a FamilyDuplicateID reducer error.
func IsDuplicateID(err error) bool { return hasFamily(err, FamilyDuplicateID) }

// IsInvalidTransition reports whether err is a FamilyInvalidTransition reducer error.
func IsInvalidTransition(err error) bool { return hasFamily(err, FamilyInvalidTransition) }

// IsAlreadySuperseded reports whether err is a FamilyAlreadySuperseded reducer error.
func IsAlreadySuperseded(err error) bool { return hasFamily(err, FamilyAlreadySuperseded) }

func hasFamily(err error, f Family) bool {
	re, ok := AsReducerError(err)
	return ok && re.Family == f
}
