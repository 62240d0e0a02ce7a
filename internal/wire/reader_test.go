package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeVarint(v uint64) []byte {
	var b []byte
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

func TestReadVarintKnownBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  uint64
	}{
		{"single byte", []byte{0x01}, 1},
		{"zero", []byte{0x00}, 0},
		{"two bytes", []byte{0xAC, 0x02}, 300},
		{"max single byte", []byte{0x7F}, 127},
		{"boundary", []byte{0x80, 0x01}, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.bytes)
			assert.Equal(t, tc.want, r.ReadVarint())
			assert.False(t, r.HasMore())
		})
	}
}

func TestReadVarintRoundTrip(t *testing.T) {
	// Powers of two and their neighbors up to 2^35 cover every byte-length
	// transition the feeds can produce.
	var values []uint64
	for shift := 0; shift <= 35; shift++ {
		v := uint64(1) << shift
		values = append(values, v-1, v, v+1)
	}

	for _, v := range values {
		r := NewReader(encodeVarint(v))
		require.Equal(t, v, r.ReadVarint(), "value %d", v)
	}
}

func TestReadVarintSequence(t *testing.T) {
	buf := append(encodeVarint(300), encodeVarint(7)...)
	r := NewReader(buf)
	assert.Equal(t, uint64(300), r.ReadVarint())
	assert.Equal(t, uint64(7), r.ReadVarint())
	assert.False(t, r.HasMore())
}

func TestReadFixedAdvances(t *testing.T) {
	r := NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0xFF})
	assert.Equal(t, uint32(1), r.ReadFixed32())
	assert.True(t, r.HasMore())

	r = NewReader([]byte{0x02, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, uint64(2), r.ReadFixed64())
	assert.False(t, r.HasMore())
}

func TestReadLengthDelimitedClampsOnTruncation(t *testing.T) {
	r := NewReader([]byte("abc"))
	got := r.ReadLengthDelimited(10)
	assert.Equal(t, []byte("abc"), got)
	assert.False(t, r.HasMore())
}

func TestReadString(t *testing.T) {
	r := NewReader([]byte("G33N rest"))
	assert.Equal(t, "G33N", r.ReadString(4))
	assert.True(t, r.HasMore())
}

func TestSkipField(t *testing.T) {
	t.Run("varint", func(t *testing.T) {
		r := NewReader(append(encodeVarint(300), 0x05))
		require.True(t, r.SkipField(TypeVarint))
		assert.Equal(t, uint64(5), r.ReadVarint())
	})

	t.Run("fixed64", func(t *testing.T) {
		r := NewReader(make([]byte, 9))
		require.True(t, r.SkipField(TypeFixed64))
		assert.True(t, r.HasMore())
		r.advance(1)
		assert.False(t, r.HasMore())
	})

	t.Run("length delimited", func(t *testing.T) {
		buf := append([]byte{0x03}, []byte("abcXY")...)
		r := NewReader(buf)
		require.True(t, r.SkipField(TypeLengthDelimited))
		assert.Equal(t, "XY", r.ReadString(2))
	})

	t.Run("fixed32", func(t *testing.T) {
		r := NewReader(make([]byte, 4))
		require.True(t, r.SkipField(TypeFixed32))
		assert.False(t, r.HasMore())
	})

	t.Run("unknown wire type stops decoding", func(t *testing.T) {
		r := NewReader([]byte{0x01})
		assert.False(t, r.SkipField(3))
		assert.False(t, r.SkipField(7))
	})

	t.Run("skip past truncated payload clamps", func(t *testing.T) {
		r := NewReader([]byte{0x20, 'a'}) // declares 32 bytes, has 1
		require.True(t, r.SkipField(TypeLengthDelimited))
		assert.False(t, r.HasMore())
	})
}
