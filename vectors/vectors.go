// Package vectors generates and checks scalar-multiplication test vectors
// for the edwards25519 curve. Each vector records a compressed point, a
// scalar, and their product, hex encoded in the literal form consumed by the
// curve test suite:
//
//	ScalarMultVectorHex{"<point>","<scalar>","<result>"},
package vectors

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ekmixon/edwards-vectors/edwards"
)

const (
	linePrefix = `ScalarMultVectorHex{`
	lineSuffix = `},`
)

// ScalarMultVector is one generated test case: Result is the scalar multiple
// of Point by Scalar. Each field is 64 lowercase hex characters.
type ScalarMultVector struct {
	Point  string
	Scalar string
	Result string
}

// Line renders v as a vector literal, without a trailing newline.
func (v ScalarMultVector) Line() string {
	return fmt.Sprintf(`%s"%s","%s","%s"%s`, linePrefix, v.Point, v.Scalar, v.Result, lineSuffix)
}

// ParseLine is the inverse of Line. Leading and trailing whitespace is
// ignored.
func ParseLine(line string) (ScalarMultVector, error) {
	var v ScalarMultVector
	body := strings.TrimSpace(line)
	if !strings.HasPrefix(body, linePrefix) || !strings.HasSuffix(body, lineSuffix) {
		return v, errors.Errorf("not a %s...%s literal", linePrefix, lineSuffix)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, linePrefix), lineSuffix)
	fields := strings.Split(body, ",")
	if len(fields) != 3 {
		return v, errors.Errorf("expected 3 fields, got %d", len(fields))
	}
	var decoded [3]string
	for i, f := range fields {
		s, err := parseHexField(f)
		if err != nil {
			return v, errors.Wrapf(err, "field %d", i)
		}
		decoded[i] = s
	}
	v.Point, v.Scalar, v.Result = decoded[0], decoded[1], decoded[2]
	return v, nil
}

func parseHexField(f string) (string, error) {
	if len(f) < 2 || f[0] != '"' || f[len(f)-1] != '"' {
		return "", errors.Errorf("field %s is not quoted", f)
	}
	s := f[1 : len(f)-1]
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Wrap(err, "invalid hex")
	}
	if len(b) != edwards.EncodedLen {
		return "", errors.Errorf("length is %d, expected %d", len(b), edwards.EncodedLen)
	}
	// Reject uppercase digits, which DecodeString accepts.
	if s != hex.EncodeToString(b) {
		return "", errors.Errorf("hex %s is not lowercase", s)
	}
	return s, nil
}

// ParseFile reads every vector literal from r, one per line. Blank lines are
// skipped.
func ParseFile(r io.Reader) ([]ScalarMultVector, error) {
	var vs []ScalarMultVector
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		vs = append(vs, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read vectors")
	}
	return vs, nil
}

// Verify recomputes the scalar multiplication from the Point and Scalar
// fields and checks that it re-encodes to exactly Result. The Scalar field is
// taken as the full unreduced integer, exactly as the generator multiplies,
// so vectors over small-order points verify correctly.
func (v ScalarMultVector) Verify() error {
	pointBytes, err := hex.DecodeString(v.Point)
	if err != nil {
		return errors.Wrap(err, "point field")
	}
	scalarBytes, err := hex.DecodeString(v.Scalar)
	if err != nil {
		return errors.Wrap(err, "scalar field")
	}
	if len(scalarBytes) != edwards.EncodedLen {
		return errors.Errorf("scalar field is %d bytes, expected %d", len(scalarBytes), edwards.EncodedLen)
	}
	p, err := edwards.DecodePoint(pointBytes)
	if err != nil {
		return errors.Wrap(err, "point field")
	}
	s := edwards.DecodeScalar(scalarBytes)
	got := hex.EncodeToString(edwards.EncodePoint(edwards.ScalarMult(p, s)))
	if got != v.Result {
		return errors.Errorf("scalar multiple is %s, vector claims %s", got, v.Result)
	}
	return nil
}
