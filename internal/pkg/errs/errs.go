package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for all not-found conditions.
	// A tenant mismatch is reported through the same sentinel so that
	// callers cannot distinguish "absent" from "belongs to someone else".
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel for invalid values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrInvalidTransition is the sentinel for status changes outside
	// the entity's transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingDependency is the sentinel for operations that require a
	// cross-entity reference which is absent (no default importer-of-record,
	// no approved delivery location, no offer lines).
	ErrMissingDependency = errors.New("missing dependency")

	// ErrOwnershipViolation is the sentinel for an actor operating on a
	// resource owned by someone else.
	ErrOwnershipViolation = errors.New("ownership violation")

	// ErrIntegrityMismatch is the sentinel for cross-entity references
	// that must agree but do not. Never silently corrected.
	ErrIntegrityMismatch = errors.New("integrity mismatch")

	// ErrTenantMismatch is the sentinel for attempts to link records that
	// belong to different tenants.
	ErrTenantMismatch = errors.New("tenant mismatch")

	// ErrStaleStatus is the sentinel for a conditional status write that
	// affected zero rows because the stored status no longer matches the
	// one the transition was validated against.
	ErrStaleStatus = errors.New("status changed concurrently")
)

// ObjectNotFoundError reports an absent entity. ParamName names the
// identifier that was looked up, ID carries its value.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports an invalid value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// InvalidTransitionError reports a status change that the entity's
// transition table does not allow. Allowed carries the set of statuses
// the entity may legally move to from From, for caller guidance.
type InvalidTransitionError struct {
	EntityKind string
	From       string
	To         string
	Allowed    []string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// entity kind, attempted transition and allowed target set.
func NewInvalidTransitionError(entityKind, from, to string, allowed []string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityKind: entityKind, From: from, To: to, Allowed: allowed}
}

func (e *InvalidTransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		allowed = strings.Join(e.Allowed, ", ")
	}
	return fmt.Sprintf("%s: %s cannot move from %s to %s (allowed: %s)",
		ErrInvalidTransition, e.EntityKind, e.From, e.To, allowed)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// MissingDependencyError reports an absent cross-entity reference that the
// operation cannot proceed without. Dependency names what is missing in
// caller terms; Detail explains where it was expected.
type MissingDependencyError struct {
	Dependency string
	Detail     string
}

// NewMissingDependencyError creates a MissingDependencyError.
func NewMissingDependencyError(dependency, detail string) *MissingDependencyError {
	return &MissingDependencyError{Dependency: dependency, Detail: detail}
}

func (e *MissingDependencyError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrMissingDependency, e.Dependency, e.Detail)
	}
	return fmt.Sprintf("%s: %s", ErrMissingDependency, e.Dependency)
}

func (e *MissingDependencyError) Unwrap() error {
	return ErrMissingDependency
}

// OwnershipViolationError reports an actor acting on a resource it does not own.
type OwnershipViolationError struct {
	Actor    string
	Resource string
	ID       any
}

// NewOwnershipViolationError creates an OwnershipViolationError.
func NewOwnershipViolationError(actor, resource string, id any) *OwnershipViolationError {
	return &OwnershipViolationError{Actor: actor, Resource: resource, ID: id}
}

func (e *OwnershipViolationError) Error() string {
	return fmt.Sprintf("%s: %s does not own %s %s", ErrOwnershipViolation, e.Actor, e.Resource, e.ID)
}

func (e *OwnershipViolationError) Unwrap() error {
	return ErrOwnershipViolation
}

// IntegrityMismatchError reports two fields that must agree but do not.
type IntegrityMismatchError struct {
	Field    string
	Expected any
	Actual   any
}

// NewIntegrityMismatchError creates an IntegrityMismatchError.
func NewIntegrityMismatchError(field string, expected, actual any) *IntegrityMismatchError {
	return &IntegrityMismatchError{Field: field, Expected: expected, Actual: actual}
}

func (e *IntegrityMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expected %v, got %v", ErrIntegrityMismatch, e.Field, e.Expected, e.Actual)
}

func (e *IntegrityMismatchError) Unwrap() error {
	return ErrIntegrityMismatch
}

// TenantMismatchError reports an attempt to link two records that belong to
// different tenants. Unlike reads, which mask a tenant mismatch as not-found,
// linking across tenants is reported explicitly so operators can investigate.
type TenantMismatchError struct {
	Resource string
	ID       any
}

// NewTenantMismatchError creates a TenantMismatchError.
func NewTenantMismatchError(resource string, id any) *TenantMismatchError {
	return &TenantMismatchError{Resource: resource, ID: id}
}

func (e *TenantMismatchError) Error() string {
	return fmt.Sprintf("%s: %s %s belongs to a different tenant", ErrTenantMismatch, e.Resource, e.ID)
}

func (e *TenantMismatchError) Unwrap() error {
	return ErrTenantMismatch
}

// StaleStatusError reports a conditional status write that affected zero rows.
// The stored status no longer matches the status the transition was validated
// against, meaning a concurrent transition won the race.
type StaleStatusError struct {
	EntityKind   string
	ID           any
	ExpectedFrom string
}

// NewStaleStatusError creates a StaleStatusError.
func NewStaleStatusError(entityKind string, id any, expectedFrom string) *StaleStatusError {
	return &StaleStatusError{EntityKind: entityKind, ID: id, ExpectedFrom: expectedFrom}
}

func (e *StaleStatusError) Error() string {
	return fmt.Sprintf("%s: %s %s is no longer in status %s", ErrStaleStatus, e.EntityKind, e.ID, e.ExpectedFrom)
}

func (e *StaleStatusError) Unwrap() error {
	return ErrStaleStatus
}
