package ec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrNoInverse, ErrInvalidScalar, ErrNotOnCurve, ErrParse,
		ErrInvalidModulus, ErrSingularCurve, ErrInvalidGenerator,
		ErrNoGenerator, ErrNoPoint, ErrUnknownCurve,
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}

func TestWrappedErrorsMatch(t *testing.T) {
	err := errors.Wrapf(ErrNotOnCurve, "point %s", "X = 2; Y = 2;")
	assert.ErrorIs(t, err, ErrNotOnCurve)
	assert.Equal(t, ErrNotOnCurve, errors.Cause(err))
	assert.Contains(t, err.Error(), "point is not on the curve")
}
