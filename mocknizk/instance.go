package mocknizk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/makluganteng/spartan-ecdsa/nizk"
)

// Instance describes a constraint system by its dimensions. Tag separates
// circuits that happen to share dimensions; it feeds the instance digest
// and nothing else.
type Instance struct {
	NbConstraints int
	NbVariables   int
	NbInputs      int
	Tag           []byte
}

func NewInstance(numConstraints, numVariables, numInputs int, tag []byte) *Instance {
	return &Instance{
		NbConstraints: numConstraints,
		NbVariables:   numVariables,
		NbInputs:      numInputs,
		Tag:           tag,
	}
}

func (it *Instance) NumConstraints() int { return it.NbConstraints }
func (it *Instance) NumVariables() int   { return it.NbVariables }
func (it *Instance) NumInputs() int      { return it.NbInputs }

// Serialize encodes the instance with the backend's binary codec.
func (it *Instance) Serialize() ([]byte, error) {
	return cbor.Marshal(it)
}

func (b *Backend) DeserializeInstance(data []byte) (nizk.Instance, error) {
	var inst Instance
	if err := cbor.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("mocknizk: decode instance: %w", err)
	}
	if inst.NbConstraints < 0 || inst.NbVariables < 0 || inst.NbInputs < 0 {
		return nil, fmt.Errorf("mocknizk: negative instance dimensions %d/%d/%d",
			inst.NbConstraints, inst.NbVariables, inst.NbInputs)
	}
	return &inst, nil
}

func (it *Instance) digest() fr.Element {
	var tag fr.Element
	tag.SetBytes(it.Tag)
	return hashElements(
		domainElement(domainInstance),
		uintElement(it.NbConstraints),
		uintElement(it.NbVariables),
		uintElement(it.NbInputs),
		tag,
	)
}
