package engine

import "fmt"

// The engine surfaces four recoverable error kinds. Storage unavailability is
// an infrastructure failure and passes through untyped.

// ValidationError rejects malformed input, including days outside the
// challenge window. Out-of-range days are rejected, never clamped.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError marks an operation referencing an unknown participant.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// AlreadyCalculatedError rejects a duplicate monthly reward request.
type AlreadyCalculatedError struct {
	Month int
	Year  int
}

func (e *AlreadyCalculatedError) Error() string {
	return fmt.Sprintf("rewards already calculated for %d/%d", e.Month, e.Year)
}

// ConflictError marks a concurrent duplicate-creation race resolved at the
// storage boundary.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
