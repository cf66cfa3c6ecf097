package benchmark

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
)

func setup(b *testing.B, c *curves.Curve) (curves.Point, curves.Point, *big.Int) {
	b.Helper()
	rng := rand.NewChaCha8([32]byte{'b'})
	p, err := c.RandomPoint(rng)
	if err != nil {
		b.Fatal(err)
	}
	q, err := c.RandomPoint(rng)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, (c.Params().N.BitLen()+7)/8)
	_, _ = rng.Read(buf)
	return p, q, new(big.Int).SetBytes(buf)
}

func benchmarkCurve(b *testing.B, c *curves.Curve) {
	p, q, k := setup(b, c)

	b.Run("Add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := c.Add(p, q); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("Double", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := c.Double(p); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("ScalarMult", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := c.ScalarMult(k, p); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("ParsePoint", func(b *testing.B) {
		s := p.String()
		for i := 0; i < b.N; i++ {
			if _, err := c.ParsePoint(s); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSecp256k1(b *testing.B) { benchmarkCurve(b, curves.Secp256k1()) }

func BenchmarkP256(b *testing.B) { benchmarkCurve(b, curves.P256()) }

func BenchmarkP384(b *testing.B) { benchmarkCurve(b, curves.P384()) }

// BenchmarkDecredScalarMult is the baseline for BenchmarkSecp256k1/ScalarMult.
func BenchmarkDecredScalarMult(b *testing.B) {
	p, _, k := setup(b, curves.Secp256k1())
	ref := secp256k1.S256()
	x, y, kb := p.X(), p.Y(), k.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref.ScalarMult(x, y, kb)
	}
}
