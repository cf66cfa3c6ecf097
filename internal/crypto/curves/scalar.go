package curves

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// ScalarMult returns k·p for a non-negative k.
//
// The bits of k are scanned from the most significant down: the accumulator
// starts at infinity, is doubled once per bit and has p added for every set
// bit, which costs O(log k) group operations.
func (c *Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return Point{}, errors.Wrapf(ec.ErrInvalidScalar, "k = %v", k)
	}
	if err := c.check(p); err != nil {
		return Point{}, err
	}

	switch {
	case k.Sign() == 0:
		return Infinity(), nil
	case k.Cmp(bigOne) == 0:
		return p, nil
	}

	acc := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		if acc, err = c.double(acc); err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			if acc, err = c.add(acc, p); err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}

// ScalarBaseMult returns k·G for the curve generator G.
func (c *Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	g, ok := c.Generator()
	if !ok {
		return Point{}, errors.Wrapf(ec.ErrNoGenerator, "curve %q", c.name)
	}
	return c.ScalarMult(k, g)
}
