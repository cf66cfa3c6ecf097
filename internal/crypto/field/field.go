// Package field implements arithmetic in the prime field GF(q).
//
// Every operation returns a freshly allocated value reduced into [0, q) and
// never modifies its arguments, so elements can be shared freely between
// goroutines.
package field

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// primalityRounds is the number of Miller-Rabin rounds used to accept a modulus.
const primalityRounds = 20

var two = big.NewInt(2)

// Field is GF(q) for an odd prime q.
type Field struct {
	q *big.Int
}

// New returns the field of integers modulo q.
func New(q *big.Int) (*Field, error) {
	if q == nil || q.Cmp(two) <= 0 || q.Bit(0) == 0 {
		return nil, errors.Wrapf(ec.ErrInvalidModulus, "q = %v", q)
	}
	if !q.ProbablyPrime(primalityRounds) {
		return nil, errors.Wrapf(ec.ErrInvalidModulus, "q = %v is composite", q)
	}
	return &Field{q: new(big.Int).Set(q)}, nil
}

// Modulus returns a copy of q.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.q)
}

// ByteLen is the number of bytes needed to hold any element.
func (f *Field) ByteLen() int {
	return (f.q.BitLen() + 7) / 8
}

// Reduce maps an arbitrary integer, negative ones included, into [0, q).
func (f *Field) Reduce(x *big.Int) *big.Int {
	// big.Int.Mod is Euclidean: the result is never negative.
	return new(big.Int).Mod(x, f.q)
}

// InRange reports whether x is already a canonical element.
func (f *Field) InRange(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(f.q) < 0
}

// Add returns x + y mod q.
func (f *Field) Add(x, y *big.Int) *big.Int {
	r := new(big.Int).Add(x, y)
	return r.Mod(r, f.q)
}

// Sub returns x - y mod q.
func (f *Field) Sub(x, y *big.Int) *big.Int {
	r := new(big.Int).Sub(x, y)
	return r.Mod(r, f.q)
}

// Mul returns x * y mod q.
func (f *Field) Mul(x, y *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, f.q)
}

// Square returns x² mod q.
func (f *Field) Square(x *big.Int) *big.Int {
	return f.Mul(x, x)
}

// Neg returns -x mod q.
func (f *Field) Neg(x *big.Int) *big.Int {
	r := new(big.Int).Neg(x)
	return r.Mod(r, f.q)
}

// Exp returns x^e mod q for e >= 0.
func (f *Field) Exp(x, e *big.Int) *big.Int {
	return new(big.Int).Exp(f.Reduce(x), e, f.q)
}

// Inverse returns x⁻¹ mod q using the extended Euclidean algorithm.
func (f *Field) Inverse(x *big.Int) (*big.Int, error) {
	r := f.Reduce(x)
	if r.Sign() == 0 {
		return nil, errors.Wrapf(ec.ErrNoInverse, "%v ≡ 0 mod %v", x, f.q)
	}
	return new(big.Int).ModInverse(r, f.q), nil
}

// Div returns x * y⁻¹ mod q.
func (f *Field) Div(x, y *big.Int) (*big.Int, error) {
	inv, err := f.Inverse(y)
	if err != nil {
		return nil, err
	}
	return f.Mul(x, inv), nil
}

// IsSquare reports whether x is a quadratic residue, zero included.
func (f *Field) IsSquare(x *big.Int) bool {
	return big.Jacobi(f.Reduce(x), f.q) >= 0
}

// Sqrt returns a square root of x. The second result is false when x is not
// a square.
func (f *Field) Sqrt(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).ModSqrt(f.Reduce(x), f.q)
	if r == nil {
		return nil, false
	}
	return r, true
}

// Equal reports whether x ≡ y mod q.
func (f *Field) Equal(x, y *big.Int) bool {
	return f.Reduce(x).Cmp(f.Reduce(y)) == 0
}

// IsZero reports whether x ≡ 0 mod q.
func (f *Field) IsZero(x *big.Int) bool {
	return f.Reduce(x).Sign() == 0
}
