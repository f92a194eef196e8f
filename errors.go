package bintuple

import (
	"github.com/cockroachdb/errors"
	"github.com/tuplekv/bintuple/internal/encoding"
)

var (
	// ErrUnsupportedNesting is returned when packing a tuple that contains
	// a nested segment. Nested tuples are read-only: Unpack produces them,
	// Pack rejects them.
	ErrUnsupportedNesting = errors.New("unsupported nesting")

	// ErrUnknownTypeTag is returned when decoding input whose next byte is
	// not a known type code.
	ErrUnknownTypeTag = errors.New("unknown type tag")

	// ErrNestingTooDeep is returned when decoding tuples nested deeper
	// than the decoder allows.
	ErrNestingTooDeep = errors.New("nesting too deep")

	// ErrOutOfRange is returned by Segments accessors when the index does
	// not designate a segment.
	ErrOutOfRange = errors.New("segment index out of range")

	// ErrTypeMismatch is returned by typed Segments accessors when the
	// segment holds another type.
	ErrTypeMismatch = errors.New("segment type mismatch")
)

// Errors raised by the primitive codecs, re-exported so callers only deal
// with this package. Matching with errors.Is works on either value.
var (
	// ErrTruncatedInput is returned when the input ends in the middle of
	// an element.
	ErrTruncatedInput = encoding.ErrTruncatedInput

	// ErrInvalidUTF8 is returned when a text element does not contain
	// valid UTF-8.
	ErrInvalidUTF8 = encoding.ErrInvalidUTF8

	// ErrIntegerOverflow is returned when an encoded integer does not fit
	// in an int64.
	ErrIntegerOverflow = encoding.ErrIntegerOverflow
)
