package vectors

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ekmixon/edwards-vectors/edwards"
)

const (
	// DefaultNumTests is the attempt count the curve test suite expects the
	// fixture file to be regenerated with.
	DefaultNumTests = 50
	// DefaultOutFile is the fixture file name the test suite reads.
	DefaultOutFile = "scalarmulttests.dat"
)

// Config controls a generation run. The zero value is usable: Run then
// writes DefaultNumTests attempts to DefaultOutFile using crypto/rand.
type Config struct {
	// NumTests is the number of attempts, not the number of emitted
	// vectors: an attempt whose random encoding is not a curve point is
	// consumed without producing output.
	NumTests int

	// OutFile is created, or truncated, by Run.
	OutFile string

	// Rand is the source of candidate encodings. Fixture generation has no
	// security requirement, so any reader will do; a SeededReader makes
	// runs reproducible.
	Rand io.Reader
}

// Generator emits scalar-multiplication vectors according to its Config.
type Generator struct {
	conf Config
}

// NewGenerator fills in defaults for any unset Config field.
func NewGenerator(conf Config) *Generator {
	if conf.NumTests <= 0 {
		conf.NumTests = DefaultNumTests
	}
	if conf.OutFile == "" {
		conf.OutFile = DefaultOutFile
	}
	if conf.Rand == nil {
		conf.Rand = rand.Reader
	}
	return &Generator{conf: conf}
}

// Run regenerates the output file from scratch and returns the number of
// vectors written.
func (g *Generator) Run() (int, error) {
	f, err := os.Create(g.conf.OutFile)
	if err != nil {
		return 0, errors.Wrap(err, "create output file")
	}
	defer f.Close()

	n, err := g.WriteTo(f)
	if err != nil {
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, errors.Wrap(err, "close output file")
	}
	Logger().Infof("wrote %d vectors from %d attempts to %s", n, g.conf.NumTests, g.conf.OutFile)
	return n, nil
}

// WriteTo runs the generation loop against w. One line is written per
// attempt whose point draw decodes; failed draws are skipped silently and
// still consume an attempt, so the returned count may be less than
// Config.NumTests. Only reader and writer failures abort the run.
func (g *Generator) WriteTo(w io.Writer) (int, error) {
	emitted := 0
	for i := 0; i < g.conf.NumTests; i++ {
		pointDraw, err := edwards.DrawBytes(g.conf.Rand)
		if err != nil {
			return emitted, err
		}
		p, err := edwards.DecodePoint(pointDraw[:])
		if err != nil {
			Logger().Debugf("attempt %d: not a curve point, skipping", i)
			continue
		}

		scalarDraw, err := edwards.DrawBytes(g.conf.Rand)
		if err != nil {
			return emitted, err
		}
		s := edwards.DecodeScalar(scalarDraw[:])

		mult := edwards.ScalarMult(p, s)

		v := ScalarMultVector{
			Point:  hex.EncodeToString(edwards.EncodePoint(p)),
			Scalar: hex.EncodeToString(edwards.EncodeScalar(s)),
			Result: hex.EncodeToString(edwards.EncodePoint(mult)),
		}
		if _, err := io.WriteString(w, v.Line()+"\n"); err != nil {
			return emitted, errors.Wrap(err, "write vector")
		}
		emitted++
	}
	return emitted, nil
}
