package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// EncodeBytes encodes x with every 0x00 payload byte followed by
// EscapeByte, then appends the 0x00 terminator. Escaping keeps the payload
// free of bare zeros, so encoded byte strings compare like their contents.
func EncodeBytes(dst []byte, x []byte) []byte {
	dst = append(dst, BytesCode)

	for {
		i := bytes.IndexByte(x, 0x00)
		if i < 0 {
			break
		}
		dst = append(dst, x[:i]...)
		dst = append(dst, 0x00, EscapeByte)
		x = x[i+1:]
	}

	dst = append(dst, x...)
	return append(dst, 0x00)
}

// EncodeText encodes x like EncodeBytes, with the text code.
func EncodeText(dst []byte, x string) []byte {
	dst = append(dst, TextCode)

	for {
		i := strings.IndexByte(x, 0x00)
		if i < 0 {
			break
		}
		dst = append(dst, x[:i]...)
		dst = append(dst, 0x00, EscapeByte)
		x = x[i+1:]
	}

	dst = append(dst, x...)
	return append(dst, 0x00)
}

// DecodeBytes decodes a byte string element. When the payload contains no
// escape sequence the returned slice points into b.
func DecodeBytes(b []byte) ([]byte, int, error) {
	x, n, err := decodeEscaped(b[1:])
	if err != nil {
		return nil, 0, err
	}
	return x, n + 1, nil
}

// DecodeText decodes a text element. The payload must be valid UTF-8.
func DecodeText(b []byte) (string, int, error) {
	x, n, err := decodeEscaped(b[1:])
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(x) {
		return "", 0, errors.WithStack(ErrInvalidUTF8)
	}
	return string(x), n + 1, nil
}

// decodeEscaped reads the payload up to the first 0x00 not followed by
// EscapeByte, undoing the escape sequences. The fast path returns a
// subslice of b.
func decodeEscaped(b []byte) ([]byte, int, error) {
	i := bytes.IndexByte(b, 0x00)
	if i < 0 {
		return nil, 0, errors.WithStack(ErrTruncatedInput)
	}
	if i+1 >= len(b) || b[i+1] != EscapeByte {
		return b[:i], i + 1, nil
	}

	out := make([]byte, 0, len(b))
	n := 0
	for {
		out = append(out, b[:i]...)
		n += i + 1
		if i+1 >= len(b) || b[i+1] != EscapeByte {
			return out, n, nil
		}
		out = append(out, 0x00)
		n++
		b = b[i+2:]
		i = bytes.IndexByte(b, 0x00)
		if i < 0 {
			return nil, 0, errors.WithStack(ErrTruncatedInput)
		}
	}
}
