package core

import "fmt"

// ValidationError reports invalid or missing user input. Operations return it
// before any persistence attempt, so a failed validation never leaves a
// partial record behind.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func validationErr(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// InvalidStateError reports a lifecycle transition attempted on a record that
// is no longer pending. Sold and returned are terminal states.
type InvalidStateError struct {
	ID     string
	Status PaymentStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("payment %s is already %s; sold and returned are terminal states", e.ID, e.Status)
}

// NotFoundError reports a lookup by ID that matched no record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("payment %s not found", e.ID)
}
