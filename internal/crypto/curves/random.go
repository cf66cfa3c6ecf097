package curves

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// maxSamples bounds the number of abscissas tried before giving up. Roughly
// half of all x values lead to a point, so the bound is only reached on
// degenerate inputs.
const maxSamples = 128

// RandomPoint returns a uniformly chosen x on the curve together with one of
// its two ordinates, drawing all randomness from r. A seeded reader such as
// math/rand/v2.ChaCha8 makes the choice reproducible.
func (c *Curve) RandomPoint(r io.Reader) (Point, error) {
	q := c.f.Modulus()
	for i := 0; i < maxSamples; i++ {
		x, err := c.randomElement(r, q)
		if err != nil {
			return Point{}, errors.Wrap(err, "sample x")
		}
		y, ok := c.f.Sqrt(c.Polynomial(x))
		if !ok {
			continue
		}

		var sign [1]byte
		if _, err := io.ReadFull(r, sign[:]); err != nil {
			return Point{}, errors.Wrap(err, "sample y")
		}
		if sign[0]&1 == 1 {
			y = c.f.Neg(y)
		}
		return affine(x, y), nil
	}
	return Point{}, errors.Wrapf(ec.ErrNoPoint, "after %d samples", maxSamples)
}

// randomElement returns a uniform value in [0, q), rejection sampling
// q.BitLen() random bits at a time. A reader that keeps producing values
// outside the range gives ErrNoPoint after maxSamples draws.
func (c *Curve) randomElement(r io.Reader, q *big.Int) (*big.Int, error) {
	b := make([]byte, c.f.ByteLen())
	for i := 0; i < maxSamples; i++ {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, err
		}
		if excess := len(b)*8 - q.BitLen(); excess > 0 {
			b[0] >>= excess
		}
		x := new(big.Int).SetBytes(b)
		if x.Cmp(q) < 0 {
			return x, nil
		}
	}
	return nil, errors.Wrapf(ec.ErrNoPoint, "no element below %v in %d draws", q, maxSamples)
}

// RandomGenerator picks a point of the declared order N: it multiplies random
// points by the cofactor until it finds R with H·R ≠ ∞ and N·(H·R) = ∞.
func (c *Curve) RandomGenerator(r io.Reader) (Point, error) {
	if c.n == nil {
		return Point{}, errors.Wrap(ec.ErrInvalidGenerator, "curve order N is not set")
	}
	for i := 0; i < maxSamples; i++ {
		p, err := c.RandomPoint(r)
		if err != nil {
			return Point{}, err
		}
		g, err := c.ScalarMult(c.h, p)
		if err != nil {
			return Point{}, err
		}
		if g.IsInfinity() {
			continue
		}
		ng, err := c.ScalarMult(c.n, g)
		if err != nil {
			return Point{}, err
		}
		if ng.IsInfinity() {
			return g, nil
		}
	}
	return Point{}, errors.Wrapf(ec.ErrNoPoint, "no point of order %v", c.n)
}
