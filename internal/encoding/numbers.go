package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// EncodeInt encodes n as its type code followed by the minimal big-endian
// magnitude. Positive values use IntZeroCode plus the magnitude length,
// negative ones IntZeroCode minus it, with the magnitude bytes complemented
// so that larger negative values sort after smaller ones. Zero is the bare
// IntZeroCode.
func EncodeInt(dst []byte, n int64) []byte {
	if n == 0 {
		return append(dst, IntZeroCode)
	}

	var b [8]byte
	if n > 0 {
		l := magnitudeLen(uint64(n))
		binary.BigEndian.PutUint64(b[:], uint64(n))
		dst = append(dst, IntZeroCode+byte(l))
		return append(dst, b[8-l:]...)
	}

	// negating MinInt64 directly overflows, go through uint64
	m := uint64(-(n + 1)) + 1
	l := magnitudeLen(m)
	binary.BigEndian.PutUint64(b[:], ^m)
	dst = append(dst, IntZeroCode-byte(l))
	return append(dst, b[8-l:]...)
}

func magnitudeLen(m uint64) int {
	switch {
	case m <= math.MaxUint8:
		return 1
	case m <= math.MaxUint16:
		return 2
	case m <= 1<<24-1:
		return 3
	case m <= math.MaxUint32:
		return 4
	case m <= 1<<40-1:
		return 5
	case m <= 1<<48-1:
		return 6
	case m <= 1<<56-1:
		return 7
	default:
		return 8
	}
}

// DecodeInt decodes an integer element. b must start with a code in the
// integer block.
func DecodeInt(b []byte) (int64, int, error) {
	code := b[0]
	if code < IntNegMinCode || code > IntPosMaxCode {
		panic(fmt.Sprintf("invalid integer code %#x", code))
	}

	if code == IntZeroCode {
		return 0, 1, nil
	}

	if code > IntZeroCode {
		l := int(code - IntZeroCode)
		if len(b) < 1+l {
			return 0, 0, errors.WithStack(ErrTruncatedInput)
		}

		var buf [8]byte
		copy(buf[8-l:], b[1:1+l])
		m := binary.BigEndian.Uint64(buf[:])
		if m > math.MaxInt64 {
			return 0, 0, errors.WithStack(ErrIntegerOverflow)
		}
		return int64(m), 1 + l, nil
	}

	l := int(IntZeroCode - code)
	if len(b) < 1+l {
		return 0, 0, errors.WithStack(ErrTruncatedInput)
	}

	var buf [8]byte
	copy(buf[8-l:], b[1:1+l])
	for i := 8 - l; i < 8; i++ {
		buf[i] = ^buf[i]
	}
	m := binary.BigEndian.Uint64(buf[:])
	switch {
	case m > 1<<63:
		return 0, 0, errors.WithStack(ErrIntegerOverflow)
	case m == 1<<63:
		return math.MinInt64, 1 + l, nil
	}
	return -int64(m), 1 + l, nil
}

// EncodeFloat32 encodes x as its big-endian IEEE 754 bits, with the sign
// bit flipped when it is clear and all bits flipped when it is set. The
// transform is keyed on the sign bit rather than the value so that negative
// zero and NaN payloads survive a round trip.
func EncodeFloat32(dst []byte, x float32) []byte {
	fb := math.Float32bits(x)
	if fb&(1<<31) == 0 {
		fb ^= 1 << 31
	} else {
		fb ^= 1<<32 - 1
	}
	return write4(dst, Float32Code, fb)
}

func DecodeFloat32(b []byte) (float32, int, error) {
	if len(b) < 5 {
		return 0, 0, errors.WithStack(ErrTruncatedInput)
	}

	x := binary.BigEndian.Uint32(b[1:5])
	if x&(1<<31) != 0 {
		x ^= 1 << 31
	} else {
		x ^= 1<<32 - 1
	}
	return math.Float32frombits(x), 5, nil
}

// EncodeFloat64 encodes x like EncodeFloat32, on eight bytes.
func EncodeFloat64(dst []byte, x float64) []byte {
	fb := math.Float64bits(x)
	if fb&(1<<63) == 0 {
		fb ^= 1 << 63
	} else {
		fb ^= 1<<64 - 1
	}
	return write8(dst, Float64Code, fb)
}

func DecodeFloat64(b []byte) (float64, int, error) {
	if len(b) < 9 {
		return 0, 0, errors.WithStack(ErrTruncatedInput)
	}

	x := binary.BigEndian.Uint64(b[1:9])
	if x&(1<<63) != 0 {
		x ^= 1 << 63
	} else {
		x ^= 1<<64 - 1
	}
	return math.Float64frombits(x), 9, nil
}
