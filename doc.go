/*
Package bintuple encodes typed tuples into byte strings whose unsigned
byte-wise ordering matches the ordering of the tuples themselves. The format
is the FoundationDB tuple layer encoding, so packed tuples can share a
keyspace with any system speaking that format.

# Encoding

Each segment of a tuple is encoded independently as a one-byte type code
followed by an order-preserving payload, and a packed tuple is the plain
concatenation of its segments:

	b, err := bintuple.Pack(bintuple.NewText("users"), bintuple.NewInteger(1))
	// b = [0x02 'u' 's' 'e' 'r' 's' 0x00 0x15 0x01]

Because segments are self-delimiting, packing never depends on what came
before: appending segments to an already packed buffer with Append yields
exactly the bytes Pack would have produced for the whole sequence. Packed
prefixes can therefore be computed once and shared.

# Ordering

For two tuples a and b, bytes.Compare(Pack(a), Pack(b)) orders them by their
first differing segment: by type first (null < bytes < text < nested <
integer < float32 < float64 < boolean < uuid), then by value within the
type. A tuple that is a prefix of another sorts first. This makes packed
tuples directly usable as keys in ordered stores; see the pebbleutil
package.

# Decoding

Unpack is the exact inverse of Pack and validates its input: unknown type
codes, truncated elements, malformed UTF-8 and integers outside the int64
range are reported as typed errors matched with errors.Is. Nested tuples
are decoded into NestedSegment values, with a configurable depth limit
(Decoder). There is no API for packing nested tuples yet; read support
exists so keys written by other tuple-layer implementations stay readable.
*/
package bintuple
