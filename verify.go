package spartan

import (
	"fmt"

	"github.com/consensys/gnark/logger"
)

// Verify checks a serialized proof against the circuit instance and the
// public input bytes. A proof that does not verify is (false, nil); errors
// are reserved for inputs the backend cannot decode and for backend
// failures. The witness never enters verification.
func (p *Prover) Verify(circuit, proof, publicInputs []byte) (bool, error) {
	log := logger.Logger()

	instance, err := p.backend.DeserializeInstance(circuit)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCircuitDeserialization, err)
	}
	decoded, err := p.backend.DeserializeProof(proof)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrProofDeserialization, err)
	}
	params, err := p.backend.SetupParameters(instance.NumConstraints(), instance.NumVariables(), instance.NumInputs())
	if err != nil {
		return false, fmt.Errorf("%w: parameter setup: %v", ErrBackendInvocation, err)
	}
	inputs, err := p.publicAssignment(publicInputs, instance.NumInputs())
	if err != nil {
		return false, err
	}
	tr := p.backend.NewTranscript(p.label)
	ok, err := p.backend.Verify(instance, decoded, inputs, params, tr)
	if err != nil {
		return false, fmt.Errorf("%w: verify: %v", ErrBackendInvocation, err)
	}
	log.Debug().Bool("verified", ok).Msg("proof checked")
	return ok, nil
}
