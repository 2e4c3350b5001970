package wtns

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/makluganteng/spartan-ecdsa/utils"
)

// Encode writes a witness file that Parse accepts: the format's magic,
// version MaxVersion, the header section with the scalar field modulus, and
// the data section with every element in canonical little-endian form.
func (f Format) Encode(elements []fr.Element) []byte {
	o := &utils.OutputBuf{}
	o.AppendBytes(f.Magic[:])
	o.AppendUint32(f.MaxVersion)
	o.AppendUint32(2)

	o.AppendUint32(f.HeaderTag)
	o.AppendUint64(uint64(f.FieldByteSize) + 8)
	o.AppendUint32(f.FieldByteSize)
	o.AppendBigInt(int(f.FieldByteSize), fr.Modulus())
	o.AppendUint32(uint32(len(elements)))

	o.AppendUint32(f.DataTag)
	o.AppendUint64(uint64(len(elements)) * uint64(f.FieldByteSize))
	x := new(big.Int)
	for _, e := range elements {
		o.AppendBigInt(int(f.FieldByteSize), e.BigInt(x))
	}
	return o.Bytes()
}
