package wtns

import (
	"io"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/makluganteng/spartan-ecdsa/utils"
)

// fileFields spells out every field of a witness file so tests can corrupt
// them one at a time.
type fileFields struct {
	magic     []byte
	version   uint32
	sections  uint32
	headerTag uint32
	headerLen uint64
	fieldLen  uint32
	modulus   *big.Int
	count     uint32
	dataTag   uint32
	dataLen   uint64
	elements  []fr.Element
	raw       []byte
	trailing  []byte
}

func defaultFields(elements []fr.Element) fileFields {
	return fileFields{
		magic:     []byte("wtns"),
		version:   2,
		sections:  2,
		headerTag: 1,
		headerLen: 40,
		fieldLen:  32,
		modulus:   fr.Modulus(),
		count:     uint32(len(elements)),
		dataTag:   2,
		dataLen:   uint64(len(elements)) * 32,
		elements:  elements,
	}
}

func buildFile(f fileFields) []byte {
	o := &utils.OutputBuf{}
	o.AppendBytes(f.magic)
	o.AppendUint32(f.version)
	o.AppendUint32(f.sections)
	o.AppendUint32(f.headerTag)
	o.AppendUint64(f.headerLen)
	o.AppendUint32(f.fieldLen)
	o.AppendBigInt(32, f.modulus)
	o.AppendUint32(f.count)
	o.AppendUint32(f.dataTag)
	o.AppendUint64(f.dataLen)
	if f.raw != nil {
		o.AppendBytes(f.raw)
	} else {
		x := new(big.Int)
		for _, e := range f.elements {
			o.AppendBigInt(32, e.BigInt(x))
		}
	}
	o.AppendBytes(f.trailing)
	return o.Bytes()
}

func randomElements(t *testing.T, n int, seed uint64) []fr.Element {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	elements := make([]fr.Element, n)
	for i := range elements {
		var buf [fr.Bytes]byte
		_, err := rng.Read(buf[:])
		require.NoError(t, err)
		elements[i].SetBytes(buf[:])
	}
	return elements
}

func TestParseRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 1000} {
		elements := randomElements(t, n, uint64(n)+1)
		decoded, err := DefaultFormat.Parse(DefaultFormat.Encode(elements))
		require.NoError(t, err, "n=%d", n)
		require.Len(t, decoded, n)
		for i := range elements {
			assert.True(t, elements[i].Equal(&decoded[i]), "element %d", i)
		}
	}
}

func TestParseSingleElementFile(t *testing.T) {
	var one fr.Element
	one.SetOne()
	data := buildFile(defaultFields([]fr.Element{one}))
	require.Len(t, data, 76+32)

	decoded, err := DefaultFormat.Parse(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].IsOne())
}

func TestParseRejectsBadFraming(t *testing.T) {
	elements := randomElements(t, 3, 7)
	cases := []struct {
		name string
		mut  func(*fileFields)
		want error
	}{
		{"wrong magic", func(f *fileFields) { f.magic = []byte("wtsn") }, ErrMalformedHeader},
		{"future version", func(f *fileFields) { f.version = 3 }, ErrUnsupportedVersion},
		{"one section", func(f *fileFields) { f.sections = 1 }, ErrInvalidSectionCount},
		{"three sections", func(f *fileFields) { f.sections = 3 }, ErrInvalidSectionCount},
		{"bad header tag", func(f *fileFields) { f.headerTag = 9 }, ErrInvalidSectionType},
		{"bad header size", func(f *fileFields) { f.headerLen = 39 }, ErrInvalidSectionSize},
		{"bad field width", func(f *fileFields) { f.fieldLen = 31 }, ErrInvalidFieldSize},
		{"bad data tag", func(f *fileFields) { f.dataTag = 1 }, ErrInvalidSectionType},
		{"data size mismatch", func(f *fileFields) { f.dataLen = 95 }, ErrInvalidSectionSize},
		{"count mismatch", func(f *fileFields) { f.count = 4 }, ErrInvalidSectionSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := defaultFields(elements)
			tc.mut(&f)
			_, err := DefaultFormat.Parse(buildFile(f))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseShortBuffer(t *testing.T) {
	data := DefaultFormat.Encode(randomElements(t, 2, 3))
	for _, n := range []int{5, 20, 70, len(data) - 1} {
		_, err := DefaultFormat.Parse(data[:n])
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "truncated at %d", n)
	}

	_, err := DefaultFormat.Parse(data[:3])
	require.ErrorIs(t, err, ErrMalformedHeader)
	_, err = DefaultFormat.Parse(nil)
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseIgnoresTrailingBytes(t *testing.T) {
	f := defaultFields(randomElements(t, 2, 9))
	f.trailing = []byte{1, 2, 3}
	decoded, err := DefaultFormat.Parse(buildFile(f))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
}

func TestParseAcceptsForeignModulus(t *testing.T) {
	f := defaultFields(randomElements(t, 1, 17))
	f.modulus = big.NewInt(23)
	_, err := DefaultFormat.Parse(buildFile(f))
	require.NoError(t, err)
}

func TestParseReducesNonCanonicalElements(t *testing.T) {
	f := defaultFields(nil)
	f.count = 1
	f.dataLen = 32
	var o utils.OutputBuf
	o.AppendBigInt(32, fr.Modulus())
	f.raw = o.Bytes()

	decoded, err := DefaultFormat.Parse(buildFile(f))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].IsZero())
}

func TestParseHeaderFields(t *testing.T) {
	elements := randomElements(t, 5, 13)
	h, err := DefaultFormat.ParseHeader(DefaultFormat.Encode(elements))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), h.Version)
	assert.Equal(t, uint32(32), h.FieldByteSize)
	assert.Equal(t, uint32(5), h.NumElements)
	assert.Zero(t, h.Modulus.Cmp(fr.Modulus()))
}

func TestCustomFormat(t *testing.T) {
	format := DefaultFormat
	format.Magic = [4]byte{'s', 'p', 't', 'n'}
	format.MaxVersion = 7

	elements := randomElements(t, 4, 11)
	data := format.Encode(elements)

	decoded, err := format.Parse(data)
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	_, err = DefaultFormat.Parse(data)
	require.ErrorIs(t, err, ErrMalformedHeader)
}
