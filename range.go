package bintuple

// PrefixRange returns the half-open key range [begin, end) containing
// every packed tuple that extends prefix with one or more segments.
// prefix must itself be a packed tuple.
func PrefixRange(prefix []byte) (begin, end []byte) {
	// any further segment starts with a code in [0x00, 0xFF)
	begin = make([]byte, len(prefix)+1)
	copy(begin, prefix)

	end = make([]byte, len(prefix)+1)
	copy(end, prefix)
	end[len(prefix)] = 0xFF

	return begin, end
}

// Successor appends to dst the smallest key sorting after every key that
// starts with k, obtained by stripping trailing 0xFF bytes and
// incrementing the last remaining one. When k is empty or all 0xFF no such
// key exists and Successor returns nil.
func Successor(dst, k []byte) []byte {
	i := len(k) - 1
	for i >= 0 && k[i] == 0xFF {
		i--
	}
	if i < 0 {
		return nil
	}

	dst = append(dst, k[:i]...)
	return append(dst, k[i]+1)
}

// Range returns the key range spanning every tuple that extends t, packing
// t if needed.
func (t *Tuple) Range() (begin, end []byte, err error) {
	enc, err := t.Pack()
	if err != nil {
		return nil, nil, err
	}

	begin, end = PrefixRange(enc)
	return begin, end, nil
}
