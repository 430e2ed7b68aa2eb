package edwards

import (
	"bytes"
	"encoding/hex"
	"testing"

	"filippo.io/edwards25519"
)

// identityEncoding is the canonical encoding of the group identity (y = 1).
func identityEncoding() []byte {
	b := make([]byte, EncodedLen)
	b[0] = 1
	return b
}

// invalidEncoding returns a 32-byte string that does not decode as a curve
// point. Roughly half of all small-y encodings are off curve, so scanning the
// first byte always finds one.
func invalidEncoding(t *testing.T) []byte {
	t.Helper()
	b := make([]byte, EncodedLen)
	for y := 0; y < 256; y++ {
		b[0] = byte(y)
		if _, err := DecodePoint(b); err != nil {
			out := make([]byte, EncodedLen)
			copy(out, b)
			return out
		}
	}
	t.Fatal("no invalid encoding among small y values")
	return nil
}

func TestPointCodecRoundTrip(t *testing.T) {
	for _, enc := range [][]byte{
		identityEncoding(),
		edwards25519.NewGeneratorPoint().Bytes(),
	} {
		p, err := DecodePoint(enc)
		if err != nil {
			t.Fatalf("DecodePoint(%x): %v", enc, err)
		}
		if got := EncodePoint(p); !bytes.Equal(got, enc) {
			t.Errorf("re-encoded %x as %x", enc, got)
		}
	}
}

func TestDecodePointRejects(t *testing.T) {
	if _, err := DecodePoint(invalidEncoding(t)); err == nil {
		t.Error("expected error for off-curve encoding")
	}
	if _, err := DecodePoint(make([]byte, 31)); err == nil {
		t.Error("expected error for short encoding")
	}
	if _, err := DecodePoint(make([]byte, 33)); err == nil {
		t.Error("expected error for long encoding")
	}
}

func TestScalarCodecRoundTrip(t *testing.T) {
	for _, b := range [][]byte{
		make([]byte, EncodedLen),
		// Far beyond the group order; must survive unreduced.
		bytes.Repeat([]byte{0xff}, EncodedLen),
		groupOrderEncoding(t),
	} {
		if got := EncodeScalar(DecodeScalar(b)); !bytes.Equal(got, b) {
			t.Errorf("scalar %x re-encoded as %x", b, got)
		}
	}

	// Short inputs are zero-extended.
	padded := EncodeScalar(DecodeScalar([]byte{7}))
	want := make([]byte, EncodedLen)
	want[0] = 7
	if !bytes.Equal(padded, want) {
		t.Errorf("short input decoded as %x", padded)
	}
}

func TestScalarMult(t *testing.T) {
	g := edwards25519.NewGeneratorPoint()

	one := make([]byte, EncodedLen)
	one[0] = 1
	if got := ScalarMult(g, DecodeScalar(one)); got.Equal(g) != 1 {
		t.Errorf("1*G = %x, want G", EncodePoint(got))
	}

	zero := make([]byte, EncodedLen)
	if got := EncodePoint(ScalarMult(g, DecodeScalar(zero))); !bytes.Equal(got, identityEncoding()) {
		t.Errorf("0*G = %x, want identity", got)
	}

	two := make([]byte, EncodedLen)
	two[0] = 2
	doubled := new(edwards25519.Point).Add(g, g)
	if got := ScalarMult(g, DecodeScalar(two)); got.Equal(doubled) != 1 {
		t.Errorf("2*G = %x, want G+G = %x", EncodePoint(got), doubled.Bytes())
	}
}

// On the prime-order generator the unreduced multiplication must agree with
// the library's reduced one for every coefficient.
func TestScalarMultMatchesReducedOnPrimeOrderPoint(t *testing.T) {
	g := edwards25519.NewGeneratorPoint()
	draw := make([]byte, EncodedLen)
	for i := range draw {
		draw[i] = byte(255 - i)
	}

	var wide [64]byte
	copy(wide[:], draw)
	reduced, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		t.Fatalf("SetUniformBytes: %v", err)
	}
	want := new(edwards25519.Point).ScalarMult(reduced, g)

	if got := ScalarMult(g, DecodeScalar(draw)); got.Equal(want) != 1 {
		t.Errorf("unreduced s*G = %x, reduced gives %x", EncodePoint(got), want.Bytes())
	}
}

// groupOrderEncoding is l, the prime order of the main subgroup, in
// little-endian bytes. l = 5 (mod 8).
func groupOrderEncoding(t *testing.T) []byte {
	t.Helper()
	l, err := hex.DecodeString("edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	if err != nil {
		t.Fatal(err)
	}
	return l
}

// smallOrderEncoding is a point of order 8, outside the prime-order
// subgroup.
func smallOrderEncoding(t *testing.T) []byte {
	t.Helper()
	enc, err := hex.DecodeString("c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a")
	if err != nil {
		t.Fatal(err)
	}
	return enc
}

// addMultiple computes n*p by repeated addition.
func addMultiple(p *edwards25519.Point, n int) *edwards25519.Point {
	acc := edwards25519.NewIdentityPoint()
	for i := 0; i < n; i++ {
		acc.Add(acc, p)
	}
	return acc
}

// Multiplying a torsion point by the unreduced integer must not collapse to
// the reduced result: [l]P is [5]P for an order-8 P, not the identity.
func TestScalarMultOutsidePrimeOrderSubgroup(t *testing.T) {
	p, err := DecodePoint(smallOrderEncoding(t))
	if err != nil {
		t.Fatalf("DecodePoint: %v", err)
	}

	if enc := EncodePoint(addMultiple(p, 8)); !bytes.Equal(enc, identityEncoding()) {
		t.Fatalf("8*P = %x, point does not have order 8", enc)
	}

	got := ScalarMult(p, DecodeScalar(groupOrderEncoding(t)))
	want := addMultiple(p, 5)
	if got.Equal(want) != 1 {
		t.Errorf("l*P = %x, want [5]P = %x", EncodePoint(got), want.Bytes())
	}
	if bytes.Equal(EncodePoint(got), identityEncoding()) {
		t.Error("l*P is the identity; coefficient was reduced mod the group order")
	}
}

func TestDrawBytesShortReader(t *testing.T) {
	if _, err := DrawBytes(bytes.NewReader(make([]byte, 10))); err == nil {
		t.Error("expected error from exhausted reader")
	}
}
