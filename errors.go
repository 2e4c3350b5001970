package spartan

import "errors"

var (
	// ErrCircuitDeserialization marks a circuit instance the backend could
	// not decode.
	ErrCircuitDeserialization = errors.New("spartan: circuit deserialization failed")

	// ErrProofDeserialization marks a proof the backend could not decode.
	ErrProofDeserialization = errors.New("spartan: proof deserialization failed")

	// ErrBackendInvocation marks any other failing backend call.
	ErrBackendInvocation = errors.New("spartan: backend invocation failed")
)
