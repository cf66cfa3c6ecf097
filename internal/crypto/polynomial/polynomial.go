package polynomial

import (
	"math/big"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over a prime field.
type Polynomial struct {
	Coefficients []*big.Int
	Field        *field.Field
}

// New returns the polynomial with the given coefficients, lowest degree
// first, each reduced into the field. Trailing zero coefficients are dropped.
func New(f *field.Field, coeffs ...*big.Int) *Polynomial {
	reduced := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		reduced[i] = f.Reduce(c)
	}
	for len(reduced) > 0 && reduced[len(reduced)-1].Sign() == 0 {
		reduced = reduced[:len(reduced)-1]
	}
	return &Polynomial{
		Coefficients: reduced,
		Field:        f,
	}
}

// Degree returns the degree of p, -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) mod q
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	degree := p.Degree()
	if degree < 0 {
		return new(big.Int)
	}
	result := new(big.Int).Set(p.Coefficients[degree])
	for i := degree - 1; i >= 0; i-- {
		result = p.Field.Add(p.Field.Mul(result, x), p.Coefficients[i])
	}
	return result
}

// Derivative returns the formal derivative f'(x).
func (p *Polynomial) Derivative() *Polynomial {
	if p.Degree() < 1 {
		return New(p.Field)
	}
	coeffs := make([]*big.Int, p.Degree())
	for i := range coeffs {
		coeffs[i] = p.Field.Mul(big.NewInt(int64(i+1)), p.Coefficients[i+1])
	}
	return New(p.Field, coeffs...)
}
