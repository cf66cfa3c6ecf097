// Package curves implements the group law of short Weierstrass curves
// y² = x³ + ax + b over a prime field GF(q).
//
// Arithmetic is affine and variable time. A Curve is immutable once built and
// may be shared between goroutines.
package curves

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/internal/crypto/polynomial"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

var (
	bigOne  = big.NewInt(1)
	bigFour = big.NewInt(4)
	big27   = big.NewInt(27)
)

// Params describes a curve y² = x³ + ax + b over GF(Q).
//
// N, H, Gx and Gy are optional. When Gx and Gy are set the generator must lie
// on the curve, and when N is set as well N·G must be the identity.
type Params struct {
	Name    string
	A, B, Q *big.Int
	N       *big.Int // order of the generator
	H       *big.Int // cofactor, 1 when unset
	Gx, Gy  *big.Int
}

// Curve is a validated short Weierstrass curve.
type Curve struct {
	name string
	f    *field.Field
	a, b *big.Int
	n, h *big.Int
	g    Point

	rhs   *polynomial.Polynomial // x³ + ax + b
	slope *polynomial.Polynomial // 3x² + a
}

// New returns the curve y² = x³ + ax + b over GF(q).
func New(a, b, q *big.Int) (*Curve, error) {
	return FromParams(&Params{A: a, B: b, Q: q})
}

// FromParams validates p and builds the curve it describes.
func FromParams(p *Params) (*Curve, error) {
	if p == nil || p.A == nil || p.B == nil {
		return nil, errors.New("curve coefficients a and b are required")
	}
	f, err := field.New(p.Q)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		name: p.Name,
		f:    f,
		a:    f.Reduce(p.A),
		b:    f.Reduce(p.B),
		h:    big.NewInt(1),
	}
	c.rhs = polynomial.New(f, c.b, c.a, new(big.Int), bigOne)
	c.slope = c.rhs.Derivative()
	if c.f.IsZero(c.discriminant()) {
		return nil, errors.Wrapf(ec.ErrSingularCurve, "a = %v, b = %v, q = %v", p.A, p.B, p.Q)
	}

	if p.H != nil {
		if p.H.Sign() <= 0 {
			return nil, errors.Wrapf(ec.ErrInvalidGenerator, "cofactor %v", p.H)
		}
		c.h = new(big.Int).Set(p.H)
	}
	if p.N != nil {
		if p.N.Sign() <= 0 {
			return nil, errors.Wrapf(ec.ErrInvalidGenerator, "order %v", p.N)
		}
		c.n = new(big.Int).Set(p.N)
	}

	switch {
	case p.Gx == nil && p.Gy == nil:
	case p.Gx == nil || p.Gy == nil:
		return nil, errors.Wrap(ec.ErrInvalidGenerator, "both generator coordinates are required")
	default:
		g, err := c.NewPoint(p.Gx, p.Gy)
		if err != nil {
			return nil, errors.WithMessage(err, "generator")
		}
		if c.n != nil {
			ng, err := c.ScalarMult(c.n, g)
			if err != nil {
				return nil, err
			}
			if !ng.IsInfinity() {
				return nil, errors.Wrapf(ec.ErrInvalidGenerator, "%v·G ≠ ∞", c.n)
			}
		}
		c.g = g
	}

	return c, nil
}

// discriminant returns 4a³ + 27b² mod q.
func (c *Curve) discriminant() *big.Int {
	a3 := c.f.Mul(c.f.Square(c.a), c.a)
	return c.f.Add(c.f.Mul(bigFour, a3), c.f.Mul(big27, c.f.Square(c.b)))
}

// Name returns the curve name, empty for ad-hoc curves.
func (c *Curve) Name() string { return c.name }

// Field returns the coordinate field.
func (c *Curve) Field() *field.Field { return c.f }

// A returns a copy of the linear coefficient.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the constant coefficient.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// Q returns a copy of the field modulus.
func (c *Curve) Q() *big.Int { return c.f.Modulus() }

// Generator returns the designated base point, if the curve has one.
func (c *Curve) Generator() (Point, bool) {
	return c.g, !c.g.IsInfinity()
}

// Params returns a copy of the parameters the curve was built from, with a
// and b reduced.
func (c *Curve) Params() *Params {
	p := &Params{
		Name: c.name,
		A:    c.A(),
		B:    c.B(),
		Q:    c.Q(),
		H:    new(big.Int).Set(c.h),
	}
	if c.n != nil {
		p.N = new(big.Int).Set(c.n)
	}
	if gx, gy, ok := c.g.Coordinates(); ok {
		p.Gx, p.Gy = gx, gy
	}
	return p
}

// Polynomial returns x³ + ax + b mod q.
func (c *Curve) Polynomial(x *big.Int) *big.Int {
	return c.rhs.Evaluate(x)
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + ax + b (mod q). The point at
// infinity is always on the curve.
//
// Coordinates must be canonical, in [0, q). Raw integers from outside go
// through NewPoint, which reduces them mod q before this check, so the text
// and command line front ends accept (9, 8) on GF(7) as (2, 1).
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if !c.f.InRange(p.x) || !c.f.InRange(p.y) {
		return false
	}
	return c.f.Square(p.y).Cmp(c.Polynomial(p.x)) == 0
}

// NewPoint reduces x and y modulo q and returns the resulting point if it lies
// on the curve.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if x == nil || y == nil {
		return Point{}, errors.Wrap(ec.ErrNotOnCurve, "missing coordinate")
	}
	p := affine(c.f.Reduce(x), c.f.Reduce(y))
	if !c.IsOnCurve(p) {
		return Point{}, errors.Wrapf(ec.ErrNotOnCurve, "(%v, %v)", x, y)
	}
	return p, nil
}

func (c *Curve) check(points ...Point) error {
	for _, p := range points {
		if !c.IsOnCurve(p) {
			return errors.Wrapf(ec.ErrNotOnCurve, "%v", p)
		}
	}
	return nil
}

// Add returns p + q.
func (c *Curve) Add(p, q Point) (Point, error) {
	if err := c.check(p, q); err != nil {
		return Point{}, err
	}
	return c.add(p, q)
}

// Double returns 2p.
func (c *Curve) Double(p Point) (Point, error) {
	if err := c.check(p); err != nil {
		return Point{}, err
	}
	return c.double(p)
}

// Neg returns -p.
func (c *Curve) Neg(p Point) (Point, error) {
	if err := c.check(p); err != nil {
		return Point{}, err
	}
	return c.neg(p), nil
}

// Sub returns p - q.
func (c *Curve) Sub(p, q Point) (Point, error) {
	if err := c.check(p, q); err != nil {
		return Point{}, err
	}
	return c.add(p, c.neg(q))
}

func (c *Curve) neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return affine(p.x, c.f.Neg(p.y))
}

// add implements the chord rule for points already known to be on the curve.
func (c *Curve) add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if p.x.Cmp(q.x) == 0 {
		// Same x means q = ±p.
		if c.f.IsZero(c.f.Add(p.y, q.y)) {
			return Infinity(), nil
		}
		return c.double(p)
	}

	// λ = (y2 - y1) / (x2 - x1)
	lambda, err := c.f.Div(c.f.Sub(q.y, p.y), c.f.Sub(q.x, p.x))
	if err != nil {
		return Point{}, err
	}
	return c.lineThrough(lambda, p, q.x), nil
}

// double implements the tangent rule for a point already known to be on the
// curve.
func (c *Curve) double(p Point) (Point, error) {
	if p.IsInfinity() || p.y.Sign() == 0 {
		// vertical tangent
		return Infinity(), nil
	}

	// λ = (3x² + a) / 2y
	lambda, err := c.f.Div(c.slope.Evaluate(p.x), c.f.Add(p.y, p.y))
	if err != nil {
		return Point{}, err
	}
	return c.lineThrough(lambda, p, p.x), nil
}

// lineThrough returns the third intersection of the line of slope lambda
// through p and the point with abscissa x2, reflected over the x axis.
func (c *Curve) lineThrough(lambda *big.Int, p Point, x2 *big.Int) Point {
	// x3 = λ² - x1 - x2
	x3 := c.f.Sub(c.f.Sub(c.f.Square(lambda), p.x), x2)
	// y3 = λ(x1 - x3) - y1
	y3 := c.f.Sub(c.f.Mul(lambda, c.f.Sub(p.x, x3)), p.y)
	return affine(x3, y3)
}
