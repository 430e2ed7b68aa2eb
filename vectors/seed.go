package vectors

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DefaultSalt separates this tool's derived byte stream from other uses of
// the same seed material.
const DefaultSalt = "edwards-scalarmult"

// SeededReader expands seed into a deterministic byte stream: successive
// 32-byte blocks are hkdf extractions of the seed under the salt plus a
// little-endian block counter. Two runs drawing from readers built with the
// same seed and salt produce identical vector files.
func SeededReader(seed, salt []byte) io.Reader {
	return &seededReader{seed: seed, salt: salt}
}

type seededReader struct {
	seed, salt []byte
	counter    uint64
	buf        []byte
}

func (r *seededReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			r.buf = r.nextBlock()
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}

func (r *seededReader) nextBlock() []byte {
	bi := make([]byte, 8)
	binary.LittleEndian.PutUint64(bi, r.counter)
	r.counter++
	salted := make([]byte, 0, len(r.salt)+len(bi))
	salted = append(salted, r.salt...)
	salted = append(salted, bi...)
	return hkdf.Extract(sha256.New, r.seed, salted)
}
