package curves

import (
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// SEC 1, Version 2.0, Section 2.3.3 point prefixes.
const (
	tagInfinity     = 0x00
	tagCompressed   = 0x02
	tagUncompressed = 0x04
)

// Marshal encodes p in the uncompressed SEC 1 form 0x04 ‖ X ‖ Y, with each
// coordinate a fixed-width big-endian integer. The point at infinity is the
// single byte 0x00.
func (c *Curve) Marshal(p Point) ([]byte, error) {
	if err := c.check(p); err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	if p.IsInfinity() {
		b.AddUint8(tagInfinity)
		return b.Bytes()
	}
	b.AddUint8(tagUncompressed)
	c.addElement(&b, p.x)
	c.addElement(&b, p.y)
	return b.Bytes()
}

// MarshalCompressed encodes p in the compressed SEC 1 form, 0x02 or 0x03
// according to the parity of y, followed by X.
func (c *Curve) MarshalCompressed(p Point) ([]byte, error) {
	if err := c.check(p); err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	if p.IsInfinity() {
		b.AddUint8(tagInfinity)
		return b.Bytes()
	}
	b.AddUint8(tagCompressed | uint8(p.y.Bit(0)))
	c.addElement(&b, p.x)
	return b.Bytes()
}

func (c *Curve) addElement(b *cryptobyte.Builder, x *big.Int) {
	buf := make([]byte, c.f.ByteLen())
	x.FillBytes(buf)
	b.AddBytes(buf)
}

// Unmarshal decodes any of the forms produced by Marshal and
// MarshalCompressed.
func (c *Curve) Unmarshal(data []byte) (Point, error) {
	s := cryptobyte.String(data)
	var tag uint8
	if !s.ReadUint8(&tag) {
		return Point{}, errors.Wrap(ec.ErrParse, "empty point encoding")
	}

	switch tag {
	case tagInfinity:
		if !s.Empty() {
			return Point{}, errors.Wrap(ec.ErrParse, "trailing data after infinity")
		}
		return Infinity(), nil

	case tagUncompressed:
		x, err := c.readElement(&s)
		if err != nil {
			return Point{}, err
		}
		y, err := c.readElement(&s)
		if err != nil {
			return Point{}, err
		}
		if !s.Empty() {
			return Point{}, errors.Wrap(ec.ErrParse, "trailing data after point")
		}
		return c.NewPoint(x, y)

	case tagCompressed, tagCompressed | 1:
		x, err := c.readElement(&s)
		if err != nil {
			return Point{}, err
		}
		if !s.Empty() {
			return Point{}, errors.Wrap(ec.ErrParse, "trailing data after point")
		}
		y, ok := c.f.Sqrt(c.Polynomial(x))
		if !ok {
			return Point{}, errors.Wrapf(ec.ErrNotOnCurve, "no y for x = %v", x)
		}
		if y.Bit(0) != uint(tag&1) {
			y = c.f.Neg(y)
		}
		if y.Bit(0) != uint(tag&1) {
			return Point{}, errors.Wrap(ec.ErrParse, "odd prefix for y = 0")
		}
		return affine(x, y), nil

	default:
		return Point{}, errors.Wrapf(ec.ErrParse, "unknown prefix 0x%02x", tag)
	}
}

func (c *Curve) readElement(s *cryptobyte.String) (*big.Int, error) {
	var buf []byte
	if !s.ReadBytes(&buf, c.f.ByteLen()) {
		return nil, errors.Wrap(ec.ErrParse, "truncated coordinate")
	}
	x := new(big.Int).SetBytes(buf)
	if !c.f.InRange(x) {
		return nil, errors.Wrap(ec.ErrParse, "coordinate is not reduced")
	}
	return x, nil
}
