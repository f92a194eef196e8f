// Package pebbleutil connects packed tuples to the pebble key-value store.
// Tuples encode so that byte-wise key comparison matches tuple order, which
// makes them usable as pebble keys without a custom comparer; this package
// provides the explicit wiring and the range helpers.
package pebbleutil

import (
	"bytes"
	"encoding/binary"

	"github.com/cockroachdb/pebble"
	"github.com/tuplekv/bintuple"
)

// Open a database at path with DefaultComparer installed, so that keys
// packed with bintuple iterate in tuple order.
func Open(path string, opts *pebble.Options) (*pebble.DB, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}

	if opts.Comparer == nil {
		opts.Comparer = DefaultComparer
	}
	return pebble.Open(path, opts)
}

// DefaultComparer is the comparer for packed tuple keys. Packed tuples
// compare correctly under plain bytes.Compare.
var DefaultComparer = &pebble.Comparer{
	Compare:        bytes.Compare,
	Equal:          bytes.Equal,
	AbbreviatedKey: AbbreviatedKey,
	FormatKey:      pebble.DefaultComparer.FormatKey,
	Separator:      pebble.DefaultComparer.Separator,
	Successor:      pebble.DefaultComparer.Successor,
	// This name is part of the C++ Level-DB implementation's default file
	// format, and should not be changed.
	Name: "leveldb.BytewiseComparator",
}

// AbbreviatedKey folds the first eight key bytes into a uint64 that sorts
// like the full key. Keys equal on their abbreviation fall back to a full
// comparison.
func AbbreviatedKey(key []byte) uint64 {
	if len(key) >= 8 {
		return binary.BigEndian.Uint64(key)
	}

	var buf [8]byte
	copy(buf[:], key)
	return binary.BigEndian.Uint64(buf[:])
}

// PrefixIterOptions returns iterator bounds covering every packed tuple
// that extends the packed prefix.
func PrefixIterOptions(prefix []byte) *pebble.IterOptions {
	begin, end := bintuple.PrefixRange(prefix)
	return &pebble.IterOptions{
		LowerBound: begin,
		UpperBound: end,
	}
}
