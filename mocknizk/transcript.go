package mocknizk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/makluganteng/spartan-ecdsa/nizk"
)

// Transcript is a MiMC sponge over single field elements. Appended bytes
// are reduced into the field before absorption, so challenges depend on
// every message and on the seeding label.
type Transcript struct {
	state fr.Element
}

func (b *Backend) NewTranscript(label []byte) nizk.Transcript {
	var l fr.Element
	l.SetBytes(label)
	return &Transcript{
		state: hashElements(domainElement(domainTranscript), l),
	}
}

func (t *Transcript) Append(data []byte) {
	var d fr.Element
	d.SetBytes(data)
	t.state = hashElements(t.state, d)
}

// Challenge squeezes a 32-byte challenge and ratchets the state so repeated
// challenges differ.
func (t *Transcript) Challenge() []byte {
	t.state = hashElements(t.state, domainElement(domainChallenge))
	return t.state.Marshal()
}
