package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuplekv/bintuple/internal/encoding"
)

func TestEncodeNull(t *testing.T) {
	require.Equal(t, []byte{0x00}, encoding.EncodeNull(nil))
}

func TestEncodeDecodeBoolean(t *testing.T) {
	got := encoding.EncodeBoolean(nil, false)
	require.Equal(t, []byte{0x26}, got)
	require.False(t, encoding.DecodeBoolean(got))

	got = encoding.EncodeBoolean(nil, true)
	require.Equal(t, []byte{0x27}, got)
	require.True(t, encoding.DecodeBoolean(got))
}

// Codes order element types: null, bytes, text, nested, integers, floats,
// booleans, UUIDs.
func TestCodeOrdering(t *testing.T) {
	codes := []byte{
		encoding.NullCode,
		encoding.BytesCode,
		encoding.TextCode,
		encoding.NestedCode,
		encoding.IntNegMinCode,
		encoding.IntZeroCode,
		encoding.IntPosMaxCode,
		encoding.Float32Code,
		encoding.Float64Code,
		encoding.FalseCode,
		encoding.TrueCode,
		encoding.UUIDCode,
	}

	for i := 1; i < len(codes); i++ {
		require.Less(t, codes[i-1], codes[i])
	}
}
