package main

import (
	"encoding/hex"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/ekmixon/edwards-vectors/vectors"
)

func main() {
	var confFile, outFile, seedStr, saltStr string
	var numTests int
	var verbose bool

	flag.StringVar(&confFile, "f", "", "TOML `file` with a [ScalarMult] section; other flags override it")
	flag.StringVar(&outFile, "o", "", "Output `file` to (re)write vectors into")
	flag.IntVar(&numTests, "n", 0, "Number of attempts; emitted vectors may be fewer")
	flag.StringVar(&seedStr, "seed", "", "Hex seed for a reproducible run; empty uses crypto/rand")
	flag.StringVar(&saltStr, "salt", vectors.DefaultSalt, "Salt for seed expansion")
	flag.BoolVar(&verbose, "v", false, "Log skipped attempts")

	flag.Parse()

	logger := vectors.Logger()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var conf vectors.Config
	if confFile != "" {
		var err error
		conf, err = vectors.LoadConfig(confFile)
		if err != nil {
			logger.Fatal(err)
		}
	}
	if outFile != "" {
		conf.OutFile = outFile
	}
	if numTests != 0 {
		conf.NumTests = numTests
	}
	if seedStr != "" {
		seed, err := hex.DecodeString(seedStr)
		if err != nil {
			logger.Fatalf("seed is not hex: %v", err)
		}
		conf.Rand = vectors.SeededReader(seed, []byte(saltStr))
	}

	if _, err := vectors.NewGenerator(conf).Run(); err != nil {
		logger.Fatalf("generation failed: %v", err)
	}
}
