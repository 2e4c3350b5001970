// Package nizk defines the contract between the proof pipeline and a
// non-interactive zero-knowledge proving backend, along with the builders
// that turn witness material into backend assignments.
//
// The pipeline never inspects backend values: instances, assignments,
// parameters, proofs and transcripts are constructed by the backend and
// handed back to it. The only structure the pipeline relies on is the three
// instance dimensions and the fixed 32-byte element encoding of assignment
// entries.
package nizk

// Instance describes a deserialized constraint system. The pipeline reads
// the three dimensions to derive generator parameters and to size the
// public input vector.
type Instance interface {
	NumConstraints() int
	NumVariables() int
	NumInputs() int
}

// Assignment is a backend-owned vector of field-element values. Backends
// receive their own assignments back in Prove and Verify.
type Assignment any

// Parameters holds backend-owned generator parameters. They are recomputed
// from the instance dimensions on every prove and verify call and must be
// deterministic in those dimensions.
type Parameters any

// Proof is a backend-owned proof with a binary encoding.
type Proof interface {
	Serialize() []byte
}

// Transcript is a Fiat-Shamir transcript. Prover and verifier must create
// transcripts from the same label, byte for byte, for proofs to verify.
type Transcript interface {
	Append(data []byte)
	Challenge() []byte
}

// Backend is the proving system driven by the pipeline.
type Backend interface {
	// DeserializeInstance decodes a circuit instance from the backend's own
	// binary encoding.
	DeserializeInstance(data []byte) (Instance, error)

	// NewAssignment builds an assignment from fixed-width little-endian
	// field-element entries, order preserved.
	NewAssignment(entries [][]byte) (Assignment, error)

	// SetupParameters derives generator parameters from the instance
	// dimensions.
	SetupParameters(numConstraints, numVariables, numInputs int) (Parameters, error)

	// NewTranscript starts a fresh transcript seeded with the domain label.
	NewTranscript(label []byte) Transcript

	// Prove produces a proof for the instance under the full variable
	// assignment and the public input assignment.
	Prove(instance Instance, vars, inputs Assignment, params Parameters, tr Transcript) (Proof, error)

	// DeserializeProof decodes a proof from its binary encoding.
	DeserializeProof(data []byte) (Proof, error)

	// Verify checks a proof against the instance and the public input
	// assignment. An invalid proof is (false, nil); errors are reserved for
	// structural failures.
	Verify(instance Instance, proof Proof, inputs Assignment, params Parameters, tr Transcript) (bool, error)
}
