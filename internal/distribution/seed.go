package distribution

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// NewSeed generates a seed from crypto/rand for runs that do not fix one.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
