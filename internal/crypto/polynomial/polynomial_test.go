package polynomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

func newField(t *testing.T, q int64) *field.Field {
	t.Helper()
	f, err := field.New(big.NewInt(q))
	require.NoError(t, err)
	return f
}

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestNew(t *testing.T) {
	f := newField(t, 7)

	t.Run("reduces coefficients", func(t *testing.T) {
		p := New(f, ints(-1, 9, 3)...)
		require.Equal(t, 2, p.Degree())
		assert.Equal(t, int64(6), p.Coefficients[0].Int64())
		assert.Equal(t, int64(2), p.Coefficients[1].Int64())
	})

	t.Run("drops leading zeros", func(t *testing.T) {
		p := New(f, ints(1, 2, 7, 0)...)
		assert.Equal(t, 1, p.Degree())
	})

	t.Run("zero polynomial", func(t *testing.T) {
		p := New(f)
		assert.Equal(t, -1, p.Degree())
		assert.Equal(t, int64(0), p.Evaluate(big.NewInt(5)).Int64())
	})
}

func TestEvaluate(t *testing.T) {
	f := newField(t, 97)

	tests := []struct {
		name   string
		coeffs []int64
		x      int64
		want   int64
	}{
		{"constant", []int64{5}, 100, 5},
		{"linear at zero", []int64{3, 2}, 0, 3},
		{"linear", []int64{3, 2}, 5, 13},
		{"quadratic", []int64{1, 2, 3}, 3, 34},
		// 1 + 2·10 + 3·100 = 321 = 3·97 + 30
		{"wraps", []int64{1, 2, 3}, 10, 30},
		{"negative x", []int64{0, 0, 1}, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(f, ints(tt.coeffs...)...)
			assert.Equal(t, tt.want, p.Evaluate(big.NewInt(tt.x)).Int64())
		})
	}
}

func TestDerivative(t *testing.T) {
	f := newField(t, 7)

	// x³ + 3x + 1 → 3x² + 3
	d := New(f, ints(1, 3, 0, 1)...).Derivative()
	require.Equal(t, 2, d.Degree())
	assert.Equal(t, int64(3), d.Evaluate(big.NewInt(0)).Int64())
	assert.Equal(t, int64(1), d.Evaluate(big.NewInt(2)).Int64())

	// x⁷ vanishes in characteristic 7
	assert.Equal(t, -1, New(f, ints(0, 0, 0, 0, 0, 0, 0, 1)...).Derivative().Degree())
	assert.Equal(t, -1, New(f, ints(4)...).Derivative().Degree())
}
