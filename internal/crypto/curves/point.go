package curves

import "math/big"

// Point is an element of the group of a short Weierstrass curve: either the
// point at infinity or an affine pair (x, y).
//
// The zero value is the point at infinity. Finite points are produced only by
// Curve.NewPoint or by the group operations, so a finite Point always lies on
// the curve it came from. Points are immutable values and safe to copy.
type Point struct {
	x, y   *big.Int
	finite bool
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Coordinates returns copies of both coordinates. ok is false for the point
// at infinity.
func (p Point) Coordinates() (x, y *big.Int, ok bool) {
	if !p.finite {
		return nil, nil, false
	}
	return p.X(), p.Y(), true
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.finite != q.finite {
		return false
	}
	if !p.finite {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String renders p in the text format, see FormatPoint.
func (p Point) String() string {
	return FormatPoint(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Point) MarshalText() ([]byte, error) {
	return []byte(FormatPoint(p)), nil
}

// affine builds a finite point from coordinates that are already reduced and
// known to satisfy the curve equation.
func affine(x, y *big.Int) Point {
	return Point{x: x, y: y, finite: true}
}
