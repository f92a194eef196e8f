package bintuple

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/tuplekv/bintuple/internal/encoding"
)

// Type represents the type of a tuple segment.
type Type uint8

// Segment types, in the order their encodings sort.
const (
	TypeNull Type = iota + 1
	TypeBytes
	TypeText
	TypeNested
	TypeInteger
	TypeFloat32
	TypeFloat64
	TypeBoolean
	TypeUUID
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBytes:
		return "bytes"
	case TypeText:
		return "text"
	case TypeNested:
		return "nested"
	case TypeInteger:
		return "integer"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeBoolean:
		return "boolean"
	case TypeUUID:
		return "uuid"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// A Segment is a single element of a tuple. The interface is sealed: the
// types of this package are its only implementations, one per tuple layer
// type.
type Segment interface {
	// Type returns the segment type.
	Type() Type

	// V returns the segment value as its natural Go type, nil for the
	// null segment.
	V() any

	fmt.Stringer

	encode(dst []byte) ([]byte, error)
}

// NullSegment is the typeless null segment.
type NullSegment struct{}

// NewNull returns the null segment.
func NewNull() NullSegment {
	return NullSegment{}
}

func (s NullSegment) Type() Type {
	return TypeNull
}

func (s NullSegment) V() any {
	return nil
}

func (s NullSegment) String() string {
	return "null"
}

func (s NullSegment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeNull(dst), nil
}

// BytesSegment is an arbitrary byte string segment.
type BytesSegment []byte

// NewBytes returns a byte string segment. The slice is not copied.
func NewBytes(x []byte) BytesSegment {
	return BytesSegment(x)
}

func (s BytesSegment) Type() Type {
	return TypeBytes
}

func (s BytesSegment) V() any {
	return []byte(s)
}

func (s BytesSegment) String() string {
	return "0x" + hex.EncodeToString(s)
}

func (s BytesSegment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeBytes(dst, s), nil
}

// TextSegment is a UTF-8 text segment.
type TextSegment string

// NewText returns a text segment.
func NewText(x string) TextSegment {
	return TextSegment(x)
}

func (s TextSegment) Type() Type {
	return TypeText
}

func (s TextSegment) V() any {
	return string(s)
}

func (s TextSegment) String() string {
	return strconv.Quote(string(s))
}

func (s TextSegment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeText(dst, string(s)), nil
}

// IntegerSegment is a signed 64-bit integer segment.
type IntegerSegment int64

// NewInteger returns an integer segment.
func NewInteger(x int64) IntegerSegment {
	return IntegerSegment(x)
}

func (s IntegerSegment) Type() Type {
	return TypeInteger
}

func (s IntegerSegment) V() any {
	return int64(s)
}

func (s IntegerSegment) String() string {
	return strconv.FormatInt(int64(s), 10)
}

func (s IntegerSegment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeInt(dst, int64(s)), nil
}

// Float32Segment is a single-precision float segment.
type Float32Segment float32

// NewFloat32 returns a single-precision float segment.
func NewFloat32(x float32) Float32Segment {
	return Float32Segment(x)
}

func (s Float32Segment) Type() Type {
	return TypeFloat32
}

func (s Float32Segment) V() any {
	return float32(s)
}

func (s Float32Segment) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 32)
}

func (s Float32Segment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeFloat32(dst, float32(s)), nil
}

// Float64Segment is a double-precision float segment.
type Float64Segment float64

// NewFloat64 returns a double-precision float segment.
func NewFloat64(x float64) Float64Segment {
	return Float64Segment(x)
}

func (s Float64Segment) Type() Type {
	return TypeFloat64
}

func (s Float64Segment) V() any {
	return float64(s)
}

func (s Float64Segment) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

func (s Float64Segment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeFloat64(dst, float64(s)), nil
}

// BooleanSegment is a boolean segment. False sorts before true.
type BooleanSegment bool

// NewBoolean returns a boolean segment.
func NewBoolean(x bool) BooleanSegment {
	return BooleanSegment(x)
}

func (s BooleanSegment) Type() Type {
	return TypeBoolean
}

func (s BooleanSegment) V() any {
	return bool(s)
}

func (s BooleanSegment) String() string {
	return strconv.FormatBool(bool(s))
}

func (s BooleanSegment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeBoolean(dst, bool(s)), nil
}

// UUIDSegment is a 128-bit UUID segment, ordered by its raw bytes.
type UUIDSegment uuid.UUID

// NewUUID returns a UUID segment.
func NewUUID(x uuid.UUID) UUIDSegment {
	return UUIDSegment(x)
}

func (s UUIDSegment) Type() Type {
	return TypeUUID
}

func (s UUIDSegment) V() any {
	return uuid.UUID(s)
}

func (s UUIDSegment) String() string {
	return uuid.UUID(s).String()
}

func (s UUIDSegment) encode(dst []byte) ([]byte, error) {
	return encoding.EncodeUUID(dst, uuid.UUID(s)), nil
}

// NestedSegment is a tuple nested inside another one. Nested segments are
// produced by Unpack; packing them is not supported.
type NestedSegment Segments

func (s NestedSegment) Type() Type {
	return TypeNested
}

func (s NestedSegment) V() any {
	return Segments(s)
}

// Segments returns the elements of the nested tuple.
func (s NestedSegment) Segments() Segments {
	return Segments(s)
}

func (s NestedSegment) String() string {
	return Segments(s).String()
}

func (s NestedSegment) encode(dst []byte) ([]byte, error) {
	return nil, errors.WithStack(ErrUnsupportedNesting)
}
