package enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	cases := []struct {
		enc Encoding
		s   string
	}{
		{Latin1, "Hello"},
		{UTF8, "Héllo, 世界"},
		{UTF16, "Héllo, 世界"},
		{UTF16BE, "Héllo, 世界"},
	}
	for _, c := range cases {
		data, err := Encode(c.enc, c.s)
		require.NoError(t, err, c.enc)
		got, err := Decode(c.enc, data)
		require.NoError(t, err, c.enc)
		assert.Equal(t, c.s, got, c.enc)
	}
}

func TestEmptyDecodesToEmptyString(t *testing.T) {
	for _, e := range []Encoding{Latin1, UTF8, UTF16, UTF16BE} {
		s, err := Decode(e, nil)
		require.NoError(t, err)
		assert.Equal(t, "", s)
	}
}

func TestUTF16MissingBOMDefaultsBigEndian(t *testing.T) {
	// "A" in UTF-16BE without a BOM.
	got, err := Decode(UTF16, []byte{0x00, 'A'})
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestIndexTerminatorUTF16Alignment(t *testing.T) {
	data := []byte{0x00, 'A', 0x00, 0x00, 'X'}
	idx := IndexTerminator(UTF16BE, data)
	assert.Equal(t, 2, idx)
}

func TestSplitTerminated(t *testing.T) {
	data := append([]byte("desc"), 0x00)
	data = append(data, []byte("rest")...)
	s, rest, err := SplitTerminated(Latin1, data)
	require.NoError(t, err)
	assert.Equal(t, "desc", s)
	assert.Equal(t, []byte("rest"), rest)
}

func TestSplitTerminatedMissingFails(t *testing.T) {
	_, _, err := SplitTerminated(Latin1, []byte("no terminator"))
	require.Error(t, err)
}

func TestValidForVersion(t *testing.T) {
	assert.True(t, Latin1.ValidForVersion(3))
	assert.True(t, UTF16.ValidForVersion(3))
	assert.False(t, UTF16BE.ValidForVersion(3))
	assert.False(t, UTF8.ValidForVersion(3))
	assert.True(t, UTF16BE.ValidForVersion(4))
	assert.True(t, UTF8.ValidForVersion(4))
}
