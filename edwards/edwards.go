// Package edwards exposes the small edwards25519 codec surface the vector
// generator is a client of: point and scalar encode/decode plus scalar
// multiplication. All group arithmetic is delegated to
// filippo.io/edwards25519.
package edwards

import (
	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

// EncodedLen is the byte length of every point and scalar encoding.
const EncodedLen = 32

// DecodePoint interprets b as a compressed curve point. Roughly half of all
// 32-byte strings do not encode a point on the curve; those return an error.
func DecodePoint(b []byte) (*edwards25519.Point, error) {
	if len(b) != EncodedLen {
		return nil, errors.Errorf("point encoding is %d bytes, expected %d", len(b), EncodedLen)
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "decode point")
	}
	return p, nil
}

// EncodePoint returns the canonical 32-byte encoding of p.
func EncodePoint(p *edwards25519.Point) []byte {
	return p.Bytes()
}

// Scalar is a 256-bit little-endian integer coefficient. It is deliberately
// not reduced modulo the group order: DecodePoint accepts points outside the
// prime-order subgroup, and for those multiplying by z and by z mod l give
// different results.
type Scalar [EncodedLen]byte

// DecodeScalar interprets b as a little-endian integer. Unlike point
// decoding it is total: every 32-byte string yields a scalar, and
// EncodeScalar round-trips it unchanged. Shorter inputs are zero-extended.
func DecodeScalar(b []byte) Scalar {
	var s Scalar
	copy(s[:], b)
	return s
}

// EncodeScalar returns the 32-byte little-endian encoding of s.
func EncodeScalar(s Scalar) []byte {
	out := make([]byte, EncodedLen)
	copy(out, s[:])
	return out
}

func (s Scalar) bit(i int) byte {
	return (s[i/8] >> (uint(i) % 8)) & 1
}

// ScalarMult returns s * p, with s taken as the full unreduced integer.
// Plain double-and-add over complete additions; fixture generation has no
// timing or throughput requirement.
func ScalarMult(p *edwards25519.Point, s Scalar) *edwards25519.Point {
	q := edwards25519.NewIdentityPoint()
	for i := 8*EncodedLen - 1; i >= 0; i-- {
		q.Add(q, q)
		if s.bit(i) == 1 {
			q.Add(q, p)
		}
	}
	return q
}
