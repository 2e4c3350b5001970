package mocknizk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/makluganteng/spartan-ecdsa/nizk"
)

// ProofSize is the fixed proof width: a witness commitment followed by the
// transcript binding, both big-endian field elements.
const ProofSize = 2 * fr.Bytes

// Proof keeps the raw encoding. Verification compares the binding half
// byte for byte, so any bit damage fails cleanly instead of erroring out
// during decode.
type Proof struct {
	data [ProofSize]byte
}

func (p *Proof) Serialize() []byte {
	return append([]byte(nil), p.data[:]...)
}

func (b *Backend) DeserializeProof(data []byte) (nizk.Proof, error) {
	if len(data) != ProofSize {
		return nil, fmt.Errorf("mocknizk: proof is %d bytes, want %d", len(data), ProofSize)
	}
	var p Proof
	copy(p.data[:], data)
	return &p, nil
}
