package encoding

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// EncodeUUID encodes x as its type code followed by the raw 16 bytes, which
// already sort in lexicographic UUID order.
func EncodeUUID(dst []byte, x uuid.UUID) []byte {
	dst = append(dst, UUIDCode)
	return append(dst, x[:]...)
}

func DecodeUUID(b []byte) (uuid.UUID, int, error) {
	var x uuid.UUID
	if len(b) < 17 {
		return x, 0, errors.WithStack(ErrTruncatedInput)
	}

	copy(x[:], b[1:17])
	return x, 17, nil
}
