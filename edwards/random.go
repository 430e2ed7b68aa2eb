package edwards

import (
	"io"

	"github.com/pkg/errors"
)

// DrawBytes reads one candidate 32-byte encoding from r.
func DrawBytes(r io.Reader) ([EncodedLen]byte, error) {
	var b [EncodedLen]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return b, errors.Wrap(err, "draw encoding")
	}
	return b, nil
}
