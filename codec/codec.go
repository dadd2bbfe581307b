/*
Package codec turns filter items into the bytes that get hashed.

An Encoder must be deterministic and injective: equal items give equal bytes
and distinct items give distinct bytes. A filter only answers correctly for
items encoded the same way they were added.
*/
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/constraints"
)

// ErrUnsupportedType is returned when an encoder can't be built for a type.
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Encoder returns the byte view of an item.
type Encoder[T any] func(item T) []byte

// String encodes a string as its raw bytes.
func String(item string) []byte {
	return []byte(item)
}

// Bytes returns the item unchanged.
func Bytes(item []byte) []byte {
	return item
}

// Integer encodes an integer as its little-endian bytes, using the width of
// the type (1, 2, 4 or 8 bytes).
func Integer[T constraints.Integer](item T) []byte {
	switch unsafe.Sizeof(item) {
	case 1:
		return []byte{byte(item)}
	case 2:
		return binary.LittleEndian.AppendUint16(nil, uint16(item))
	case 4:
		return binary.LittleEndian.AppendUint32(nil, uint32(item))
	default:
		return binary.LittleEndian.AppendUint64(nil, uint64(item))
	}
}

// Fixed returns an encoder for fixed-size values (numbers, bools, arrays and
// structs made of those). Fields are packed little-endian without padding,
// so two values encode the same only when every field is equal.
func Fixed[T any]() (Encoder[T], error) {
	var zero T
	size := binary.Size(zero)
	if size < 0 {
		return nil, fmt.Errorf("%w: %T has no fixed size", ErrUnsupportedType, zero)
	}
	return func(item T) []byte {
		buf := bytes.NewBuffer(make([]byte, 0, size))
		// can't fail: the type was checked above and bytes.Buffer doesn't error
		_ = binary.Write(buf, binary.LittleEndian, item)
		return buf.Bytes()
	}, nil
}

// CBOR returns an encoder producing Core Deterministic CBOR, so maps and
// structs encode the same regardless of iteration order. The zero value is
// encoded once up front to reject types CBOR can't represent.
//
// The returned encoder panics if a value of an accepted type still fails to
// encode (for example an interface field holding a channel).
func CBOR[T any]() (Encoder[T], error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	var zero T
	if _, err := em.Marshal(zero); err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrUnsupportedType, zero, err)
	}
	return func(item T) []byte {
		data, err := em.Marshal(item)
		if err != nil {
			panic(fmt.Sprintf("codec: cbor encoding %T: %v", item, err))
		}
		return data
	}, nil
}
