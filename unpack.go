package bintuple

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/tuplekv/bintuple/internal/encoding"
)

// DefaultMaxDepth is the nesting depth limit applied by Unpack and by
// decoders that do not set their own.
const DefaultMaxDepth = 64

// A Decoder unpacks tuples. The zero value is ready for use and behaves
// like the package-level Unpack.
type Decoder struct {
	// MaxDepth bounds the nesting depth of decoded tuples. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Unpack decodes every segment of b. See the package-level Unpack.
func (d *Decoder) Unpack(b []byte) (Segments, error) {
	maxDepth := d.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	segs, _, err := unpackSegments(b, 0, maxDepth, false)
	return segs, err
}

// Unpack decodes every segment of b, undoing Pack. An empty input decodes
// into an empty tuple. Decoding is all or nothing: a malformed segment
// anywhere fails the whole call. Byte string segments may share memory
// with b.
func Unpack(b []byte) (Segments, error) {
	var d Decoder
	return d.Unpack(b)
}

func unpackSegments(b []byte, depth, maxDepth int, nested bool) (Segments, int, error) {
	var segs Segments

	n := 0
	for n < len(b) {
		if nested && b[n] == encoding.NullCode {
			// inside a nested tuple a null element is escaped, a bare
			// 0x00 closes the tuple
			if n+1 < len(b) && b[n+1] == encoding.EscapeByte {
				segs = append(segs, NullSegment{})
				n += 2
				continue
			}
			return segs, n + 1, nil
		}

		seg, sn, err := unpackOne(b[n:], depth, maxDepth)
		if err != nil {
			if !nested {
				return nil, 0, errors.Wrapf(err, "segment %d (offset %d)", len(segs), n)
			}
			return nil, 0, err
		}
		segs = append(segs, seg)
		n += sn
	}

	if nested {
		// the terminator never came
		return nil, 0, errors.WithStack(encoding.ErrTruncatedInput)
	}
	return segs, n, nil
}

func unpackOne(b []byte, depth, maxDepth int) (Segment, int, error) {
	tag := b[0]

	if tag >= encoding.IntNegMinCode && tag <= encoding.IntPosMaxCode {
		x, n, err := encoding.DecodeInt(b)
		if err != nil {
			return nil, 0, err
		}
		return IntegerSegment(x), n, nil
	}

	switch tag {
	case encoding.NullCode:
		return NullSegment{}, 1, nil
	case encoding.BytesCode:
		x, n, err := encoding.DecodeBytes(b)
		if err != nil {
			return nil, 0, err
		}
		return BytesSegment(x), n, nil
	case encoding.TextCode:
		x, n, err := encoding.DecodeText(b)
		if err != nil {
			return nil, 0, err
		}
		return TextSegment(x), n, nil
	case encoding.NestedCode:
		if depth >= maxDepth {
			return nil, 0, errors.Wrapf(ErrNestingTooDeep, "limit %d", maxDepth)
		}
		segs, n, err := unpackSegments(b[1:], depth+1, maxDepth, true)
		if err != nil {
			return nil, 0, err
		}
		return NestedSegment(segs), n + 1, nil
	case encoding.Float32Code:
		x, n, err := encoding.DecodeFloat32(b)
		if err != nil {
			return nil, 0, err
		}
		return Float32Segment(x), n, nil
	case encoding.Float64Code:
		x, n, err := encoding.DecodeFloat64(b)
		if err != nil {
			return nil, 0, err
		}
		return Float64Segment(x), n, nil
	case encoding.FalseCode, encoding.TrueCode:
		return BooleanSegment(encoding.DecodeBoolean(b)), 1, nil
	case encoding.UUIDCode:
		x, n, err := encoding.DecodeUUID(b)
		if err != nil {
			return nil, 0, err
		}
		return UUIDSegment(x), n, nil
	}

	return nil, 0, errors.Wrapf(ErrUnknownTypeTag, "tag %#x", tag)
}

// Segments is the decoded form of a tuple.
type Segments []Segment

// Len returns the number of segments.
func (s Segments) Len() int {
	return len(s)
}

// At returns the i-th segment.
func (s Segments) At(i int) (Segment, error) {
	if i < 0 || i >= len(s) {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, tuple of %d", i, len(s))
	}
	return s[i], nil
}

// IsNull reports whether the i-th segment is the null segment.
func (s Segments) IsNull(i int) (bool, error) {
	seg, err := s.At(i)
	if err != nil {
		return false, err
	}
	_, ok := seg.(NullSegment)
	return ok, nil
}

// Bytes returns the i-th segment as a byte string.
func (s Segments) Bytes(i int) ([]byte, error) {
	seg, err := s.At(i)
	if err != nil {
		return nil, err
	}
	x, ok := seg.(BytesSegment)
	if !ok {
		return nil, typeMismatch(i, seg, TypeBytes)
	}
	return []byte(x), nil
}

// Text returns the i-th segment as a string.
func (s Segments) Text(i int) (string, error) {
	seg, err := s.At(i)
	if err != nil {
		return "", err
	}
	x, ok := seg.(TextSegment)
	if !ok {
		return "", typeMismatch(i, seg, TypeText)
	}
	return string(x), nil
}

// Integer returns the i-th segment as an int64.
func (s Segments) Integer(i int) (int64, error) {
	seg, err := s.At(i)
	if err != nil {
		return 0, err
	}
	x, ok := seg.(IntegerSegment)
	if !ok {
		return 0, typeMismatch(i, seg, TypeInteger)
	}
	return int64(x), nil
}

// Float32 returns the i-th segment as a float32.
func (s Segments) Float32(i int) (float32, error) {
	seg, err := s.At(i)
	if err != nil {
		return 0, err
	}
	x, ok := seg.(Float32Segment)
	if !ok {
		return 0, typeMismatch(i, seg, TypeFloat32)
	}
	return float32(x), nil
}

// Float64 returns the i-th segment as a float64.
func (s Segments) Float64(i int) (float64, error) {
	seg, err := s.At(i)
	if err != nil {
		return 0, err
	}
	x, ok := seg.(Float64Segment)
	if !ok {
		return 0, typeMismatch(i, seg, TypeFloat64)
	}
	return float64(x), nil
}

// Boolean returns the i-th segment as a bool.
func (s Segments) Boolean(i int) (bool, error) {
	seg, err := s.At(i)
	if err != nil {
		return false, err
	}
	x, ok := seg.(BooleanSegment)
	if !ok {
		return false, typeMismatch(i, seg, TypeBoolean)
	}
	return bool(x), nil
}

// UUID returns the i-th segment as a UUID.
func (s Segments) UUID(i int) (uuid.UUID, error) {
	seg, err := s.At(i)
	if err != nil {
		return uuid.UUID{}, err
	}
	x, ok := seg.(UUIDSegment)
	if !ok {
		return uuid.UUID{}, typeMismatch(i, seg, TypeUUID)
	}
	return uuid.UUID(x), nil
}

// Nested returns the i-th segment as a nested tuple.
func (s Segments) Nested(i int) (Segments, error) {
	seg, err := s.At(i)
	if err != nil {
		return nil, err
	}
	x, ok := seg.(NestedSegment)
	if !ok {
		return nil, typeMismatch(i, seg, TypeNested)
	}
	return Segments(x), nil
}

func typeMismatch(i int, seg Segment, want Type) error {
	return errors.Wrapf(ErrTypeMismatch, "segment %d is %s, not %s", i, seg.Type(), want)
}

func (s Segments) String() string {
	var sb strings.Builder

	sb.WriteByte('(')
	for i, seg := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(seg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
