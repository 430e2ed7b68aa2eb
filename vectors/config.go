package vectors

import (
	"encoding/hex"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// fileConfig mirrors the TOML layout:
//
//	[ScalarMult]
//	NumTests = 50
//	OutFile  = "scalarmulttests.dat"
//	Seed     = "5a87133b"  # hex; empty means crypto/rand
//	Salt     = "edwards-scalarmult"
type fileConfig struct {
	ScalarMult struct {
		NumTests int
		OutFile  string
		Seed     string
		Salt     string
	}
}

// LoadConfig reads a generation Config from a TOML file. Unset fields are
// left zero for NewGenerator to default. A non-empty Seed makes the run
// deterministic.
func LoadConfig(fname string) (Config, error) {
	var conf Config
	tree, err := toml.LoadFile(fname)
	if err != nil {
		return conf, errors.Wrap(err, "load config")
	}
	var fc fileConfig
	if err := tree.Unmarshal(&fc); err != nil {
		return conf, errors.Wrap(err, "parse config")
	}

	conf.NumTests = fc.ScalarMult.NumTests
	conf.OutFile = fc.ScalarMult.OutFile
	if fc.ScalarMult.Seed != "" {
		seed, err := hex.DecodeString(fc.ScalarMult.Seed)
		if err != nil {
			return conf, errors.Wrap(err, "seed is not hex")
		}
		salt := fc.ScalarMult.Salt
		if salt == "" {
			salt = DefaultSalt
		}
		conf.Rand = SeededReader(seed, []byte(salt))
	}
	return conf, nil
}
