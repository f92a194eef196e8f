package bintuple

import (
	"github.com/cockroachdb/errors"
)

// Pack encodes segments into a single key. Packing an empty tuple returns
// nil. Pack fails only on segments that cannot be encoded, which today
// means nested ones.
func Pack(segments ...Segment) ([]byte, error) {
	return Append(nil, segments...)
}

// Append encodes segments at the end of dst and returns the extended
// buffer. Segment encodings are context-free, so appending to an already
// packed tuple yields exactly the bytes Pack would produce for the whole
// sequence.
func Append(dst []byte, segments ...Segment) ([]byte, error) {
	var err error
	for i, s := range segments {
		dst, err = s.encode(dst)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d", i)
		}
	}
	return dst, nil
}

// A Tuple holds a sequence of segments in decoded form, packed form, or
// both, converting lazily and caching the converted form.
type Tuple struct {
	segments Segments
	encoded  []byte
}

// New returns a tuple built from segments.
func New(segments ...Segment) *Tuple {
	return &Tuple{
		segments: segments,
	}
}

// FromBytes returns a tuple backed by an already packed buffer. The buffer
// is adopted, not copied, and is only validated when Segments is called.
func FromBytes(enc []byte) *Tuple {
	return &Tuple{
		encoded: enc,
	}
}

// Pack returns the packed form, encoding the segments on first call.
func (t *Tuple) Pack() ([]byte, error) {
	if t.encoded != nil || t.segments == nil {
		return t.encoded, nil
	}

	enc, err := Pack(t.segments...)
	if err != nil {
		return nil, err
	}

	t.encoded = enc
	return enc, nil
}

// Segments returns the decoded form, unpacking the packed form on first
// call.
func (t *Tuple) Segments() (Segments, error) {
	if t.segments != nil || t.encoded == nil {
		return t.segments, nil
	}

	segs, err := Unpack(t.encoded)
	if err != nil {
		return nil, err
	}

	t.segments = segs
	return segs, nil
}

// Append returns a new tuple extending t with segments. t is left
// untouched. When t is already packed, its packed bytes become the prefix
// of the new encoding without being re-encoded.
func (t *Tuple) Append(segments ...Segment) (*Tuple, error) {
	var nt Tuple

	if t.encoded != nil {
		// fresh copy, so sibling appends cannot share spare capacity
		enc := make([]byte, len(t.encoded))
		copy(enc, t.encoded)
		enc, err := Append(enc, segments...)
		if err != nil {
			return nil, err
		}
		nt.encoded = enc
	}

	if t.segments != nil || t.encoded == nil {
		segs := make(Segments, 0, len(t.segments)+len(segments))
		segs = append(segs, t.segments...)
		segs = append(segs, segments...)
		nt.segments = segs
	}

	return &nt, nil
}

func (t *Tuple) String() string {
	if t == nil {
		return ""
	}

	segs, _ := t.Segments()
	return segs.String()
}
