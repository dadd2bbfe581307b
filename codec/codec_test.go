package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
	Tag  uint8
}

type record struct {
	Name   string            `cbor:"name"`
	Labels map[string]string `cbor:"labels"`
}

func TestString(t *testing.T) {
	var enc Encoder[string] = String
	require.Equal(t, []byte("hola"), enc("hola"))
	require.Empty(t, enc(""))
}

func TestBytes(t *testing.T) {
	var enc Encoder[[]byte] = Bytes
	require.Equal(t, []byte{1, 2, 3}, enc([]byte{1, 2, 3}))
}

func TestInteger(t *testing.T) {
	require.Equal(t, []byte{0xff}, Integer[int8](-1))
	require.Equal(t, []byte{0x34, 0x12}, Integer[uint16](0x1234))
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, Integer[int32](0x12345678))
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, Integer[uint64](1))
	require.Len(t, Integer[int](7), 8)
	require.NotEqual(t, Integer[int64](100), Integer[int64](101))
}

func TestFixed(t *testing.T) {
	enc, err := Fixed[point]()
	require.NoError(t, err)
	a := enc(point{X: 1, Y: 2, Tag: 3})
	// packed: 4 + 4 + 1 bytes, no padding
	require.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 3}, a)
	require.Equal(t, a, enc(point{X: 1, Y: 2, Tag: 3}))
	require.NotEqual(t, a, enc(point{X: 2, Y: 1, Tag: 3}))
}

func TestFixedUnsupported(t *testing.T) {
	_, err := Fixed[string]()
	require.ErrorIs(t, err, ErrUnsupportedType)
	_, err = Fixed[int]()
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCBORDeterministic(t *testing.T) {
	enc, err := CBOR[record]()
	require.NoError(t, err)
	labels := map[string]string{}
	for _, k := range []string{"zone", "app", "env", "tier", "owner"} {
		labels[k] = k + "-value"
	}
	first := enc(record{Name: "svc", Labels: labels})
	for i := 0; i < 20; i++ {
		copied := map[string]string{}
		for k, v := range labels {
			copied[k] = v
		}
		require.Equal(t, first, enc(record{Name: "svc", Labels: copied}))
	}
	require.NotEqual(t, first, enc(record{Name: "svc2", Labels: labels}))
}

func TestCBORUnsupported(t *testing.T) {
	_, err := CBOR[chan int]()
	require.ErrorIs(t, err, ErrUnsupportedType)
}
