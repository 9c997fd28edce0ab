package question

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid matches any *ValidationError via errors.Is.
	ErrInvalid = errors.New("invalid question input")

	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("choice not found")
)

// ValidationError describes an argument that violates a Question constraint.
type ValidationError struct {
	Field   string // Name of the offending field, e.g. "title", "points"
	Message string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// NotFoundError indicates an operation referenced a choice id that does not
// exist on the Question.
type NotFoundError struct {
	ChoiceID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("choice %d not found", e.ChoiceID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
