// Package spartan drives a NIZK proving backend over circom witness files.
//
// Prove parses a wtns witness file, assembles the backend's variable and
// public input assignments and produces a serialized proof; Verify checks
// one. The proving system itself sits behind the nizk.Backend contract;
// this package owns the orchestration order, the witness file format and
// the transcript domain label.
package spartan

import (
	"github.com/makluganteng/spartan-ecdsa/nizk"
	"github.com/makluganteng/spartan-ecdsa/wtns"
)

// DefaultTranscriptLabel seeds prover and verifier transcripts unless
// WithTranscriptLabel overrides it.
var DefaultTranscriptLabel = []byte("nizk_example")

// Prover binds a backend to a witness format and a transcript label. It is
// immutable after New and its methods only touch locals, so a Prover is
// safe for concurrent use whenever its backend is.
type Prover struct {
	backend nizk.Backend
	format  wtns.Format
	label   []byte
}

// Option configures a Prover.
type Option func(*Prover)

// WithFormat overrides the witness file framing constants.
func WithFormat(f wtns.Format) Option {
	return func(p *Prover) { p.format = f }
}

// WithTranscriptLabel overrides the Fiat-Shamir domain label. A proof only
// verifies under the label it was produced with, byte for byte.
func WithTranscriptLabel(label []byte) Option {
	return func(p *Prover) { p.label = label }
}

// New returns a Prover over the given backend with the default wtns format
// and transcript label.
func New(backend nizk.Backend, opts ...Option) *Prover {
	p := &Prover{
		backend: backend,
		format:  wtns.DefaultFormat,
		label:   DefaultTranscriptLabel,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Prove runs a one-shot proof with default options.
func Prove(backend nizk.Backend, circuit, witness, publicInputs []byte) ([]byte, error) {
	return New(backend).Prove(circuit, witness, publicInputs)
}

// Verify runs a one-shot verification with default options.
func Verify(backend nizk.Backend, circuit, proof, publicInputs []byte) (bool, error) {
	return New(backend).Verify(circuit, proof, publicInputs)
}
