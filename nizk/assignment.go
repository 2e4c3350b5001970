package nizk

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/makluganteng/spartan-ecdsa/utils"
)

// ElementSize is the byte width of one encoded assignment entry.
const ElementSize = fr.Bytes

// ErrTruncatedPublicInput reports a public input buffer shorter than the
// instance's input count requires.
var ErrTruncatedPublicInput = errors.New("nizk: truncated public input")

// PrivateAssignment re-encodes witness elements into canonical little-endian
// entries, order preserved, and builds the backend's variable assignment.
func PrivateAssignment(b Backend, witness []fr.Element) (Assignment, error) {
	entries := make([][]byte, len(witness))
	for i := range witness {
		var o utils.OutputBuf
		o.AppendElement(witness[i])
		entries[i] = o.Bytes()
	}
	return b.NewAssignment(entries)
}

// PublicAssignment splits a raw buffer into numInputs consecutive 32-byte
// entries and builds the backend's input assignment. The entries are taken
// verbatim; bytes past the required length are ignored.
func PublicAssignment(b Backend, raw []byte, numInputs int) (Assignment, error) {
	if numInputs < 0 {
		return nil, fmt.Errorf("nizk: negative input count %d", numInputs)
	}
	// compare by division: numInputs*ElementSize can overflow
	if numInputs > len(raw)/ElementSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d inputs of %d bytes", ErrTruncatedPublicInput, len(raw), numInputs, ElementSize)
	}
	entries := make([][]byte, numInputs)
	for i := range entries {
		entries[i] = raw[i*ElementSize : (i+1)*ElementSize]
	}
	return b.NewAssignment(entries)
}
