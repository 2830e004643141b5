package aztec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for caller mistakes such as a
	// non-positive iteration count.
	ErrInvalidArgument = errors.New("aztec: invalid argument")

	// ErrInvariant matches every InvariantViolation via errors.Is.
	ErrInvariant = errors.New("aztec: invariant violation")
)

// InvariantViolation reports a broken tiling invariant. It always points at
// a bug in phase logic or a corrupted event log, never at a transient
// condition.
type InvariantViolation struct {
	Phase  string // phase or component that detected the problem
	Detail string
}

// Error implements error.
func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("aztec: invariant violation in %s: %s", e.Phase, e.Detail)
}

// Is lets errors.Is(err, ErrInvariant) match any violation.
func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariant
}

func violation(phase, format string, args ...any) error {
	return &InvariantViolation{Phase: phase, Detail: fmt.Sprintf(format, args...)}
}
