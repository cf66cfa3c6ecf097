// Package ec holds the error values shared by the curve arithmetic packages.
// Callers match them with errors.Is; the engine wraps them with context.
package ec

import "errors"

// Arithmetic and parsing errors returned by the curve engine.
var (
	ErrNoInverse     = errors.New("field element has no inverse")
	ErrInvalidScalar = errors.New("invalid scalar")
	ErrNotOnCurve    = errors.New("point is not on the curve")
	ErrParse         = errors.New("malformed point encoding")
)

// Curve construction and selection errors.
var (
	ErrInvalidModulus   = errors.New("modulus must be an odd prime")
	ErrSingularCurve    = errors.New("curve is singular")
	ErrInvalidGenerator = errors.New("generator does not have the declared order")
	ErrNoGenerator      = errors.New("curve has no generator")
	ErrNoPoint          = errors.New("no curve point found")
	ErrUnknownCurve     = errors.New("unknown curve")
)
