package pebbleutil_test

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"
	"github.com/tuplekv/bintuple"
	"github.com/tuplekv/bintuple/pebbleutil"
)

func openTestDB(t *testing.T) *pebble.DB {
	t.Helper()

	var opts pebble.Options
	opts.FS = vfs.NewMem()

	db, err := pebbleutil.Open("", &opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

func packKey(t testing.TB, segments ...bintuple.Segment) []byte {
	t.Helper()

	key, err := bintuple.Pack(segments...)
	require.NoError(t, err)
	return key
}

func TestIterationFollowsTupleOrder(t *testing.T) {
	db := openTestDB(t)

	// listed in tuple order
	keys := [][]byte{
		packKey(t, bintuple.NewNull()),
		packKey(t, bintuple.NewBytes([]byte{0x01})),
		packKey(t, bintuple.NewText("a")),
		packKey(t, bintuple.NewText("b")),
		packKey(t, bintuple.NewInteger(-300)),
		packKey(t, bintuple.NewInteger(-1)),
		packKey(t, bintuple.NewInteger(0)),
		packKey(t, bintuple.NewInteger(1)),
		packKey(t, bintuple.NewInteger(300)),
		packKey(t, bintuple.NewFloat64(1.5)),
		packKey(t, bintuple.NewBoolean(false)),
		packKey(t, bintuple.NewBoolean(true)),
	}

	shuffled := make([][]byte, len(keys))
	copy(shuffled, keys)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for _, k := range shuffled {
		require.NoError(t, db.Set(k, nil, pebble.Sync))
	}

	it := db.NewIter(nil)
	defer it.Close()

	var got [][]byte
	for it.First(); it.Valid(); it.Next() {
		k := make([]byte, len(it.Key()))
		copy(k, it.Key())
		got = append(got, k)
	}
	require.NoError(t, it.Error())
	require.Equal(t, keys, got)
}

func TestPrefixIterOptions(t *testing.T) {
	db := openTestDB(t)

	for i := int64(0); i < 10; i++ {
		require.NoError(t, db.Set(packKey(t, bintuple.NewText("users"), bintuple.NewInteger(i)), nil, pebble.Sync))
		require.NoError(t, db.Set(packKey(t, bintuple.NewText("orders"), bintuple.NewInteger(i)), nil, pebble.Sync))
	}
	// the bare prefix tuple itself sorts before the range
	require.NoError(t, db.Set(packKey(t, bintuple.NewText("users")), nil, pebble.Sync))

	it := db.NewIter(pebbleutil.PrefixIterOptions(packKey(t, bintuple.NewText("users"))))
	defer it.Close()

	var count int
	for it.First(); it.Valid(); it.Next() {
		segs, err := bintuple.Unpack(it.Key())
		require.NoError(t, err)

		name, err := segs.Text(0)
		require.NoError(t, err)
		require.Equal(t, "users", name)

		n, err := segs.Integer(1)
		require.NoError(t, err)
		require.Equal(t, int64(count), n)

		count++
	}
	require.NoError(t, it.Error())
	require.Equal(t, 10, count)
}

func TestAbbreviatedKey(t *testing.T) {
	// listed in byte order
	keys := [][]byte{
		{},
		{0x00},
		{0x00, 0x01},
		{0x01},
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
		{0x02, 'u', 's', 'e', 'r', 's', 0x00, 0x15, 0x01},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}

	// the abbreviation must never invert the key order
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			a, b := pebbleutil.AbbreviatedKey(keys[i]), pebbleutil.AbbreviatedKey(keys[j])
			require.LessOrEqual(t, a, b, "% x vs % x", keys[i], keys[j])
		}
	}
}
