// Package encoding implements the primitive codecs of the tuple format.
//
// Each element is encoded as a one-byte type code followed by a payload
// whose unsigned byte-wise ordering matches the natural ordering of the
// value. The codes themselves are ordered, so elements of different types
// compare by type first. Code values are the ones used by the FoundationDB
// tuple layer and are fixed forever.
package encoding

import (
	"github.com/cockroachdb/errors"
)

// Type codes, one per element type. Gaps are left where the tuple layer
// assigns codes this package does not implement, such as arbitrary-precision
// integers and versionstamps.
const (
	NullCode   byte = 0x00
	BytesCode  byte = 0x01
	TextCode   byte = 0x02
	NestedCode byte = 0x05

	// Integers occupy the contiguous block [IntNegMinCode, IntPosMaxCode].
	// The distance between the code and IntZeroCode gives the number of
	// magnitude bytes that follow, the side gives the sign.
	IntNegMinCode byte = IntZeroCode - 8
	IntZeroCode   byte = 0x14
	IntPosMaxCode byte = IntZeroCode + 8

	Float32Code byte = 0x20
	Float64Code byte = 0x21

	FalseCode byte = 0x26
	TrueCode  byte = 0x27

	UUIDCode byte = 0x30

	// EscapeByte follows a 0x00 payload byte inside byte strings and text
	// to distinguish it from the 0x00 terminator.
	EscapeByte byte = 0xFF
)

var (
	// ErrTruncatedInput is returned when the input ends in the middle of
	// an element.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidUTF8 is returned when the payload of a text element is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrIntegerOverflow is returned when an encoded integer doesn't fit
	// in an int64.
	ErrIntegerOverflow = errors.New("integer overflow")
)

func EncodeNull(dst []byte) []byte {
	return append(dst, NullCode)
}

func EncodeBoolean(dst []byte, x bool) []byte {
	if x {
		return append(dst, TrueCode)
	}

	return append(dst, FalseCode)
}

func DecodeBoolean(b []byte) bool {
	return b[0] == TrueCode
}
