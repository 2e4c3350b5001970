package wtns

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/witness"
)

// ToGnarkWitness repacks parsed witness elements into a gnark witness over
// the BN254 scalar field. The first nbPublic elements become the public
// part, the remainder the secret part.
func ToGnarkWitness(elements []fr.Element, nbPublic int) (witness.Witness, error) {
	if nbPublic < 0 || nbPublic > len(elements) {
		return nil, fmt.Errorf("wtns: %d public elements out of %d", nbPublic, len(elements))
	}
	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}
	values := make(chan any, len(elements))
	for _, e := range elements {
		values <- e
	}
	close(values)
	if err := w.Fill(nbPublic, len(elements)-nbPublic, values); err != nil {
		return nil, err
	}
	return w, nil
}
