// Package mocknizk implements the nizk backend contract with a
// deterministic hash-commitment scheme over the BN254 scalar field.
//
// It exists to exercise the proof pipeline end to end: parameters are
// derived from the instance dimensions alone, proving commits to the
// variable assignment, and verification recomputes the transcript binding.
// It provides no zero-knowledge and no soundness against a dishonest
// prover; real deployments plug in an actual proving system behind the
// same contract.
package mocknizk

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"github.com/makluganteng/spartan-ecdsa/nizk"
	"github.com/makluganteng/spartan-ecdsa/utils"
)

const (
	domainParams     = "mocknizk/params"
	domainTranscript = "mocknizk/transcript"
	domainChallenge  = "mocknizk/challenge"
	domainInstance   = "mocknizk/instance"
	domainCommit     = "mocknizk/commitment"
	domainBinding    = "mocknizk/binding"
)

// Backend is a stateless nizk.Backend. The zero value is ready to use.
type Backend struct{}

var _ nizk.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{}
}

// Assignment is a decoded vector of field elements.
type Assignment struct {
	vec fr.Vector
}

func (b *Backend) NewAssignment(entries [][]byte) (nizk.Assignment, error) {
	vec := make(fr.Vector, len(entries))
	for i, entry := range entries {
		if len(entry) != nizk.ElementSize {
			return nil, fmt.Errorf("mocknizk: entry %d is %d bytes, want %d", i, len(entry), nizk.ElementSize)
		}
		e, err := utils.NewInputBuf(entry).ReadElement()
		if err != nil {
			return nil, err
		}
		vec[i] = e
	}
	return &Assignment{vec: vec}, nil
}

// Parameters is the generator seed shared by prover and verifier. It is a
// pure function of the instance dimensions.
type Parameters struct {
	seed fr.Element
}

func (b *Backend) SetupParameters(numConstraints, numVariables, numInputs int) (nizk.Parameters, error) {
	if numConstraints < 0 || numVariables < 0 || numInputs < 0 {
		return nil, fmt.Errorf("mocknizk: negative dimensions %d/%d/%d", numConstraints, numVariables, numInputs)
	}
	seed := hashElements(
		domainElement(domainParams),
		uintElement(numConstraints),
		uintElement(numVariables),
		uintElement(numInputs),
	)
	return &Parameters{seed: seed}, nil
}

func (b *Backend) Prove(instance nizk.Instance, vars, inputs nizk.Assignment, params nizk.Parameters, tr nizk.Transcript) (nizk.Proof, error) {
	inst, err := b.instance(instance)
	if err != nil {
		return nil, err
	}
	varsA, err := b.assignment(vars)
	if err != nil {
		return nil, err
	}
	inputsA, err := b.assignment(inputs)
	if err != nil {
		return nil, err
	}
	par, err := b.parameters(params)
	if err != nil {
		return nil, err
	}
	if len(varsA.vec) != inst.NbVariables {
		return nil, fmt.Errorf("mocknizk: %d assignment values for %d variables", len(varsA.vec), inst.NbVariables)
	}
	if len(inputsA.vec) != inst.NbInputs {
		return nil, fmt.Errorf("mocknizk: %d input values for %d inputs", len(inputsA.vec), inst.NbInputs)
	}

	commitment := commitVars(par.seed, varsA.vec)
	absorb(tr, inst, par, inputsA.vec, commitment)
	var challenge fr.Element
	challenge.SetBytes(tr.Challenge())
	binding := hashElements(domainElement(domainBinding), commitment, challenge, par.seed)

	var p Proof
	copy(p.data[:fr.Bytes], commitment.Marshal())
	copy(p.data[fr.Bytes:], binding.Marshal())
	return &p, nil
}

func (b *Backend) Verify(instance nizk.Instance, proof nizk.Proof, inputs nizk.Assignment, params nizk.Parameters, tr nizk.Transcript) (bool, error) {
	inst, err := b.instance(instance)
	if err != nil {
		return false, err
	}
	p, ok := proof.(*Proof)
	if !ok {
		return false, fmt.Errorf("mocknizk: foreign proof type %T", proof)
	}
	inputsA, err := b.assignment(inputs)
	if err != nil {
		return false, err
	}
	par, err := b.parameters(params)
	if err != nil {
		return false, err
	}
	if len(inputsA.vec) != inst.NbInputs {
		return false, fmt.Errorf("mocknizk: %d input values for %d inputs", len(inputsA.vec), inst.NbInputs)
	}

	var commitment fr.Element
	commitment.SetBytes(p.data[:fr.Bytes])
	absorb(tr, inst, par, inputsA.vec, commitment)
	var challenge fr.Element
	challenge.SetBytes(tr.Challenge())
	binding := hashElements(domainElement(domainBinding), commitment, challenge, par.seed)
	return bytes.Equal(binding.Marshal(), p.data[fr.Bytes:]), nil
}

// absorb feeds the transcript everything both sides agree on before the
// challenge: the instance digest, the parameter seed, the public inputs and
// the witness commitment.
func absorb(tr nizk.Transcript, inst *Instance, par *Parameters, inputs fr.Vector, commitment fr.Element) {
	digest := inst.digest()
	tr.Append(digest.Marshal())
	tr.Append(par.seed.Marshal())
	for i := range inputs {
		tr.Append(inputs[i].Marshal())
	}
	tr.Append(commitment.Marshal())
}

func commitVars(seed fr.Element, vars fr.Vector) fr.Element {
	h := mimc.NewMiMC()
	domain := domainElement(domainCommit)
	h.Write(domain.Marshal())
	h.Write(seed.Marshal())
	for i := range vars {
		h.Write(vars[i].Marshal())
	}
	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

func (b *Backend) instance(instance nizk.Instance) (*Instance, error) {
	inst, ok := instance.(*Instance)
	if !ok {
		return nil, fmt.Errorf("mocknizk: foreign instance type %T", instance)
	}
	return inst, nil
}

func (b *Backend) assignment(a nizk.Assignment) (*Assignment, error) {
	av, ok := a.(*Assignment)
	if !ok {
		return nil, fmt.Errorf("mocknizk: foreign assignment type %T", a)
	}
	return av, nil
}

func (b *Backend) parameters(p nizk.Parameters) (*Parameters, error) {
	par, ok := p.(*Parameters)
	if !ok {
		return nil, fmt.Errorf("mocknizk: foreign parameters type %T", p)
	}
	return par, nil
}

func hashElements(elems ...fr.Element) fr.Element {
	h := mimc.NewMiMC()
	for i := range elems {
		h.Write(elems[i].Marshal())
	}
	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}

func uintElement(n int) fr.Element {
	var e fr.Element
	e.SetUint64(uint64(n))
	return e
}

func domainElement(s string) fr.Element {
	var e fr.Element
	e.SetBytes([]byte(s))
	return e
}
