package container

import (
	"fmt"
	"reflect"
)

// ── Errors ───────────────────────────────────────────────────────────────────
//
// Every failure mode surfaces as a typed error carrying the type it concerns.
// Nothing is logged, swallowed, or retried; callers match with errors.As.

// NotRegisteredError is returned by Resolve when no provider exists for the
// requested type.
type NotRegisteredError struct {
	Type reflect.Type
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("container: no provider registered for [%s]", typeName(e.Type))
}

// DuplicateRegistrationError is returned when a type is registered twice.
// The first registration is left untouched.
type DuplicateRegistrationError struct {
	Type reflect.Type
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("container: provider already registered for [%s]", typeName(e.Type))
}

// RegistrationError is returned when a registration fails validation before
// insertion — a nil type, a nil constructor, and so on.
type RegistrationError struct {
	Type   reflect.Type
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("container: cannot register [%s]: %s", typeName(e.Type), e.Reason)
}

// ConstructionError is returned when a constructor or factory fails while
// producing a value. Cause is the caller's error (or recovered panic),
// passed through unmodified and reachable via errors.Unwrap.
type ConstructionError struct {
	Type  reflect.Type
	Cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("container: constructing [%s]: %v", typeName(e.Type), e.Cause)
}

func (e *ConstructionError) Unwrap() error { return e.Cause }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
