package utils

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendBigInt(n int, x *big.Int) {
	b := x.Bytes()
	if len(b) > n {
		panic("value does not fit in the requested width")
	}
	zbuf := make([]byte, n)
	for i := 0; i < len(b); i++ {
		zbuf[i] = b[len(b)-i-1]
	}
	o.buf = append(o.buf, zbuf...)
}

func (o *OutputBuf) AppendElement(e fr.Element) {
	o.AppendBigInt(fr.Bytes, e.BigInt(new(big.Int)))
}

func (o *OutputBuf) AppendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) AppendBytes(b []byte) {
	o.buf = append(o.buf, b...)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

type InputBuf struct {
	buf []byte
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

// ReadBytes returns the next n bytes without copying. The returned slice
// aliases the underlying buffer.
func (i *InputBuf) ReadBytes(n int) ([]byte, error) {
	if n < 0 || len(i.buf) < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := i.buf[:n]
	i.buf = i.buf[n:]
	return b, nil
}

func (i *InputBuf) ReadUint32() (uint32, error) {
	b, err := i.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (i *InputBuf) ReadUint64() (uint64, error) {
	b, err := i.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBigInt reads an n-byte little-endian unsigned integer.
func (i *InputBuf) ReadBigInt(n int) (*big.Int, error) {
	b, err := i.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	zbuf := make([]byte, n)
	for j := 0; j < n; j++ {
		zbuf[j] = b[n-1-j]
	}
	return new(big.Int).SetBytes(zbuf), nil
}

// ReadElement reads a 32-byte little-endian field element, reducing it
// into the scalar field.
func (i *InputBuf) ReadElement() (fr.Element, error) {
	var e fr.Element
	x, err := i.ReadBigInt(fr.Bytes)
	if err != nil {
		return e, err
	}
	e.SetBigInt(x)
	return e, nil
}

func (i *InputBuf) Remaining() int {
	return len(i.buf)
}

func (i *InputBuf) IsEnd() bool {
	return len(i.buf) == 0
}
