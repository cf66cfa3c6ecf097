package curves

import (
	"crypto/elliptic"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

var (
	initonce       sync.Once
	secp256k1Curve *Curve
	p224           *Curve
	p256           *Curve
	p384           *Curve
	byName         map[string]func() *Curve
)

func initAll() {
	secp256k1Curve = fromElliptic(secp256k1.S256().Params(), big.NewInt(0))
	// The NIST prime curves all use a = -3.
	p224 = fromElliptic(elliptic.P224().Params(), big.NewInt(-3))
	p256 = fromElliptic(elliptic.P256().Params(), big.NewInt(-3))
	p384 = fromElliptic(elliptic.P384().Params(), big.NewInt(-3))
}

// fromElliptic converts hard-coded library parameters and panics if they do
// not describe a valid curve, which can only be a programming error.
func fromElliptic(params *elliptic.CurveParams, a *big.Int) *Curve {
	c, err := FromParams(&Params{
		Name: params.Name,
		A:    a,
		B:    params.B,
		Q:    params.P,
		N:    params.N,
		Gx:   params.Gx,
		Gy:   params.Gy,
	})
	if err != nil {
		panic("invalid parameters for " + params.Name + ": " + err.Error())
	}
	return c
}

// Secp256k1 returns the curve y² = x³ + 7 used by Bitcoin, with the
// parameters published by the decred secp256k1 package.
//
// Multiple invocations return the same value.
func Secp256k1() *Curve {
	initonce.Do(initAll)
	return secp256k1Curve
}

// P224 returns NIST P-224 (FIPS 186-3, section D.2.2).
func P224() *Curve {
	initonce.Do(initAll)
	return p224
}

// P256 returns NIST P-256 (FIPS 186-3, section D.2.3).
func P256() *Curve {
	initonce.Do(initAll)
	return p256
}

// P384 returns NIST P-384 (FIPS 186-3, section D.2.4).
func P384() *Curve {
	initonce.Do(initAll)
	return p384
}

func init() {
	byName = map[string]func() *Curve{
		"secp256k1":  Secp256k1,
		"p-224":      P224,
		"p224":       P224,
		"secp224r1":  P224,
		"p-256":      P256,
		"p256":       P256,
		"secp256r1":  P256,
		"prime256v1": P256,
		"p-384":      P384,
		"p384":       P384,
		"secp384r1":  P384,
	}
}

// ByName looks up a preset curve, ignoring case.
func ByName(name string) (*Curve, error) {
	get, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ec.ErrUnknownCurve, "%q", name)
	}
	return get(), nil
}

// Names lists the accepted preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
