package reciprocal

import "errors"

var (
	// ErrNonPositiveDivisor indicates a descriptor was requested for a
	// divisor that is zero or negative.
	ErrNonPositiveDivisor = errors.New("reciprocal: divisor must be positive")
)
