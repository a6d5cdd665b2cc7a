package frost

import (
	"errors"
	"fmt"
)

// Verification failures are never errors — they are plain bool returns from
// VerifyProofOfKnowledge and VerifyShare. Everything else that can go wrong
// is one of the sentinels below.
var (
	// ErrArgument marks argument-validation failures: out-of-range inputs,
	// duplicate indices, element-count mismatches.
	ErrArgument = errors.New("argument validation failed")

	// ErrPrecondition marks a call made before its phase, e.g. signing
	// before the aggregate share is set, or repairing a share that is
	// already present.
	ErrPrecondition = errors.New("precondition violation")

	// ErrDegenerateCurve marks a group commitment or public key equal to
	// the point at infinity, encountered at a signing boundary.
	ErrDegenerateCurve = errors.New("degenerate curve condition")
)

// sentinelError pairs one of the package-level sentinel errors above with a
// specific message, so callers can errors.Is against the sentinel while
// still getting a descriptive message.
type sentinelError struct {
	sentinel error
	message  string
}

func (e *sentinelError) Error() string { return e.message }

func (e *sentinelError) Unwrap() error { return e.sentinel }

func argumentError(format string, args ...any) error {
	return &sentinelError{ErrArgument, fmt.Sprintf(format, args...)}
}

func preconditionError(format string, args ...any) error {
	return &sentinelError{ErrPrecondition, fmt.Sprintf(format, args...)}
}

// There is no typeError constructor: a value of the wrong kind (a scalar
// where a curve point is expected, or vice versa) is a compile-time type
// mismatch in Go, not a condition any function here can observe at
// runtime, so there is no corresponding sentinel.

func degenerateCurveError(format string, args ...any) error {
	return &sentinelError{ErrDegenerateCurve, fmt.Sprintf(format, args...)}
}
