package spartan

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/logger"

	"github.com/makluganteng/spartan-ecdsa/nizk"
)

// Prove parses the witness file, deserializes the circuit instance and
// produces a serialized proof over the given public input bytes.
//
// Witness and public input decoding errors keep their package-level
// identity; backend failures come back wrapped in
// ErrCircuitDeserialization or ErrBackendInvocation.
func (p *Prover) Prove(circuit, witness, publicInputs []byte) ([]byte, error) {
	log := logger.Logger()

	elements, err := p.format.Parse(witness)
	if err != nil {
		return nil, err
	}
	vars, err := nizk.PrivateAssignment(p.backend, elements)
	if err != nil {
		return nil, fmt.Errorf("%w: variable assignment: %v", ErrBackendInvocation, err)
	}
	instance, err := p.backend.DeserializeInstance(circuit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCircuitDeserialization, err)
	}
	params, err := p.backend.SetupParameters(instance.NumConstraints(), instance.NumVariables(), instance.NumInputs())
	if err != nil {
		return nil, fmt.Errorf("%w: parameter setup: %v", ErrBackendInvocation, err)
	}
	inputs, err := p.publicAssignment(publicInputs, instance.NumInputs())
	if err != nil {
		return nil, err
	}
	tr := p.backend.NewTranscript(p.label)
	proof, err := p.backend.Prove(instance, vars, inputs, params, tr)
	if err != nil {
		return nil, fmt.Errorf("%w: prove: %v", ErrBackendInvocation, err)
	}

	out := proof.Serialize()
	log.Debug().
		Int("constraints", instance.NumConstraints()).
		Int("variables", instance.NumVariables()).
		Int("inputs", instance.NumInputs()).
		Int("proofSize", len(out)).
		Msg("proof generated")
	return out, nil
}

func (p *Prover) publicAssignment(raw []byte, numInputs int) (nizk.Assignment, error) {
	inputs, err := nizk.PublicAssignment(p.backend, raw, numInputs)
	if err != nil {
		if errors.Is(err, nizk.ErrTruncatedPublicInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: input assignment: %v", ErrBackendInvocation, err)
	}
	return inputs, nil
}
