// Package testutil provides helpers shared by the bintuple tests.
package testutil

import (
	"testing"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/tuplekv/bintuple"
)

// MakeSegments turns a JSON array literal into tuple segments. Plain
// numbers become integers, numbers with a fractional part or an exponent
// become 64-bit floats, and nested arrays become nested segments. The
// remaining segment types have no JSON syntax and must be built with the
// bintuple constructors.
func MakeSegments(t testing.TB, src string) bintuple.Segments {
	t.Helper()

	segs, err := parseJSONArray([]byte(src))
	require.NoError(t, err)
	return segs
}

func parseJSONArray(data []byte) (bintuple.Segments, error) {
	var segs bintuple.Segments
	var cbErr error

	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if cbErr != nil {
			return
		}

		var seg bintuple.Segment
		seg, cbErr = parseJSONValue(dataType, value)
		if cbErr != nil {
			return
		}
		segs = append(segs, seg)
	})
	if err != nil {
		return nil, err
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return segs, nil
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (bintuple.Segment, error) {
	switch dataType {
	case jsonparser.Null:
		return bintuple.NewNull(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return bintuple.NewBoolean(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// a fractional part or an exponent makes this a float
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}
			return bintuple.NewFloat64(f), nil
		}
		return bintuple.NewInteger(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return bintuple.NewText(s), nil
	case jsonparser.Array:
		segs, err := parseJSONArray(data)
		if err != nil {
			return nil, err
		}
		return bintuple.NestedSegment(segs), nil
	default:
	}

	return nil, errors.Errorf("unsupported JSON value %q", data)
}
