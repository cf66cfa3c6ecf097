package curves

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// Text format keywords. A finite point is written "X = <x>; Y = <y>;" with
// decimal coordinates, the point at infinity as InfinityTag.
const (
	InfinityTag = "INF;"

	keywordX  = "X = "
	keywordY  = "Y = "
	separator = ";"
)

// FormatPoint renders p in the text format.
func FormatPoint(p Point) string {
	if p.IsInfinity() {
		return InfinityTag
	}
	return keywordX + p.x.String() + separator + " " + keywordY + p.y.String() + separator
}

// ParseCoordinates extracts the coordinates from the text format without
// checking curve membership. Both results are nil for the infinity tag.
func ParseCoordinates(s string) (x, y *big.Int, err error) {
	if strings.TrimSpace(s) == InfinityTag {
		return nil, nil, nil
	}
	if x, err = extractNumber(s, keywordX); err != nil {
		return nil, nil, err
	}
	if y, err = extractNumber(s, keywordY); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// ParsePoint parses the text format and checks that the point is on c.
func (c *Curve) ParsePoint(s string) (Point, error) {
	x, y, err := ParseCoordinates(s)
	if err != nil {
		return Point{}, err
	}
	if x == nil {
		return Infinity(), nil
	}
	return c.NewPoint(x, y)
}

// extractNumber returns the decimal number between keyword and the next
// separator.
func extractNumber(s, keyword string) (*big.Int, error) {
	start := strings.Index(s, keyword)
	if start < 0 {
		return nil, errors.Wrapf(ec.ErrParse, "missing %q in %q", keyword, s)
	}
	rest := s[start+len(keyword):]
	end := strings.Index(rest, separator)
	if end < 0 {
		return nil, errors.Wrapf(ec.ErrParse, "missing %q after %q", separator, keyword)
	}

	digits := rest[:end]
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return nil, errors.Wrapf(ec.ErrParse, "%q is not a decimal number", digits)
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.Wrapf(ec.ErrParse, "%q is not a decimal number", digits)
	}
	return n, nil
}
