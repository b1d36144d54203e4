package stylespace

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a catalog lookup with an identifier that does not
// exist. The offending key is carried so callers can surface it verbatim.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown style %q", e.ID)
}

// ValidationError indicates structurally invalid input: a malformed
// coordinate, a blend spec with non-positive total weight, or a selector
// that does not resolve to exactly one case.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// EmptyDomainError indicates a nearest/extremes query against a catalog that
// is empty (or reduced below the operation's minimum by exclusions).
type EmptyDomainError struct {
	Op string
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf("%s: not enough catalog entries to query", e.Op)
}

// IsNotFound returns true if the error is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation returns true if the error is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsEmptyDomain returns true if the error is (or wraps) an EmptyDomainError.
func IsEmptyDomain(err error) bool {
	var target *EmptyDomainError
	return errors.As(err, &target)
}

func validationf(format string, a ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, a...)}
}
