// Package wtns reads and writes the circom wtns binary witness format.
//
// A wtns file starts with a 4-byte magic, a little-endian version and a
// section count, followed by two sections: a header section declaring the
// field width, the field modulus and the witness length, and a data section
// holding the witness values as fixed-width little-endian field elements.
// All multi-byte integers are little-endian and the layout is strictly
// sequential.
package wtns

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/makluganteng/spartan-ecdsa/utils"
)

// Format holds the framing constants of a witness file. The zero value is
// not useful; start from DefaultFormat.
type Format struct {
	Magic         [4]byte
	MaxVersion    uint32
	FieldByteSize uint32
	HeaderTag     uint32
	DataTag       uint32
}

// DefaultFormat matches the files emitted by circom and snarkjs.
var DefaultFormat = Format{
	Magic:         [4]byte{'w', 't', 'n', 's'},
	MaxVersion:    2,
	FieldByteSize: 32,
	HeaderTag:     1,
	DataTag:       2,
}

// Header is the metadata carried by the first section of a witness file.
type Header struct {
	Version       uint32
	FieldByteSize uint32
	Modulus       *big.Int
	NumElements   uint32
}

// ParseHeader decodes the file header and the header section without
// touching the witness data.
func (f Format) ParseHeader(data []byte) (Header, error) {
	return f.parseHeader(utils.NewInputBuf(data))
}

// Parse decodes a complete witness file and returns the witness values in
// file order. The declared modulus is consumed but not checked against the
// scalar field; elements are reduced on decode. Input bytes past the data
// section are ignored.
func (f Format) Parse(data []byte) ([]fr.Element, error) {
	buf := utils.NewInputBuf(data)
	h, err := f.parseHeader(buf)
	if err != nil {
		return nil, err
	}

	tag, err := buf.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("read data section type: %w", err)
	}
	if tag != f.DataTag {
		return nil, fmt.Errorf("%w: data section tagged %d, want %d", ErrInvalidSectionType, tag, f.DataTag)
	}
	size, err := buf.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("read data section size: %w", err)
	}
	need := uint64(h.NumElements) * uint64(f.FieldByteSize)
	if size != need {
		return nil, fmt.Errorf("%w: data section is %d bytes, want %d for %d elements", ErrInvalidSectionSize, size, need, h.NumElements)
	}
	if uint64(buf.Remaining()) < need {
		return nil, fmt.Errorf("witness data: %w", io.ErrUnexpectedEOF)
	}

	elements := make([]fr.Element, h.NumElements)
	for i := range elements {
		x, err := buf.ReadBigInt(int(f.FieldByteSize))
		if err != nil {
			return nil, fmt.Errorf("read witness element %d: %w", i, err)
		}
		elements[i].SetBigInt(x)
	}
	return elements, nil
}

func (f Format) parseHeader(buf *utils.InputBuf) (Header, error) {
	var h Header

	magic, err := buf.ReadBytes(len(f.Magic))
	if err != nil {
		return h, ErrMalformedHeader
	}
	if !bytes.Equal(magic, f.Magic[:]) {
		return h, fmt.Errorf("%w: magic %q", ErrMalformedHeader, magic)
	}

	h.Version, err = buf.ReadUint32()
	if err != nil {
		return h, fmt.Errorf("read version: %w", err)
	}
	if h.Version > f.MaxVersion {
		return h, fmt.Errorf("%w: version %d, max %d", ErrUnsupportedVersion, h.Version, f.MaxVersion)
	}

	sections, err := buf.ReadUint32()
	if err != nil {
		return h, fmt.Errorf("read section count: %w", err)
	}
	if sections != 2 {
		return h, fmt.Errorf("%w: %d sections, want 2", ErrInvalidSectionCount, sections)
	}

	tag, err := buf.ReadUint32()
	if err != nil {
		return h, fmt.Errorf("read header section type: %w", err)
	}
	if tag != f.HeaderTag {
		return h, fmt.Errorf("%w: header section tagged %d, want %d", ErrInvalidSectionType, tag, f.HeaderTag)
	}
	size, err := buf.ReadUint64()
	if err != nil {
		return h, fmt.Errorf("read header section size: %w", err)
	}
	if size != uint64(f.FieldByteSize)+8 {
		return h, fmt.Errorf("%w: header section is %d bytes, want %d", ErrInvalidSectionSize, size, f.FieldByteSize+8)
	}

	h.FieldByteSize, err = buf.ReadUint32()
	if err != nil {
		return h, fmt.Errorf("read field byte size: %w", err)
	}
	if h.FieldByteSize != f.FieldByteSize {
		return h, fmt.Errorf("%w: %d bytes per element, want %d", ErrInvalidFieldSize, h.FieldByteSize, f.FieldByteSize)
	}

	h.Modulus, err = buf.ReadBigInt(int(f.FieldByteSize))
	if err != nil {
		return h, fmt.Errorf("read modulus: %w", err)
	}
	h.NumElements, err = buf.ReadUint32()
	if err != nil {
		return h, fmt.Errorf("read witness length: %w", err)
	}
	return h, nil
}
