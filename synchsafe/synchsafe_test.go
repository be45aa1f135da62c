package synchsafe

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchsafeRoundTrip(t *testing.T) {
	assert.Equal(t, uint32(681570), EncodeUint32(176994))
	assert.Equal(t, uint32(176994), DecodeUint32(681570))

	for n := uint32(0); n < (1 << 28); n += 104729 {
		enc := EncodeUint32(n)
		for i := uint(0); i < 4; i++ {
			assert.Zero(t, (enc>>(i*8))&0x80, "byte %d of encoded %d has its top bit set", i, n)
		}
		assert.Equal(t, n, DecodeUint32(enc))
	}
}

func TestSynchsafeBytesRoundTrip(t *testing.T) {
	b := EncodeBytes(176994)
	assert.Equal(t, uint32(176994), DecodeBytes(b[:]))
}

func TestUnsynchRoundTrip(t *testing.T) {
	v := []byte{66, 0, 0xFF, 0, 0xFF, 0, 0, 0xFF, 66}
	enc := EncodeBuffer(v)
	assert.Equal(t, []byte{66, 0, 0xFF, 0, 0, 0xFF, 0, 0, 0, 0xFF, 66}, enc)

	for i := 0; i+1 < len(enc); i++ {
		if enc[i] == 0xFF {
			next := enc[i+1]
			require.Falsef(t, next&0xE0 == 0xE0,
				"encoded output retains sync pattern 0xFF 0x%02X at index %d", next, i)
		}
	}

	assert.Equal(t, v, DecodeBuffer(enc))
}

func TestUnsynchReaderMatchesBufferDecode(t *testing.T) {
	v := []byte{66, 0, 0xFF, 0xE3, 0, 0xFF, 0, 0, 0xFF, 66}
	enc := EncodeBuffer(v)

	r := NewReader(bytes.NewReader(enc))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestUnsynchEveryByte(t *testing.T) {
	for b := 0; b < 256; b++ {
		v := []byte{byte(b)}
		assert.Equal(t, v, DecodeBuffer(EncodeBuffer(v)))
	}
}
