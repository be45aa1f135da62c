package id3tag

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMinimalWAV constructs a RIFF/WAVE file with a fmt and data
// chunk but no ID3 chunk, enough for WriteWavId3 to add one to.
func buildMinimalWAV() []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	var sizeBuf [4]byte
	body := append([]byte("WAVE"), []byte("fmt ")...)
	var fmtSize [4]byte
	binary.LittleEndian.PutUint32(fmtSize[:], 16)
	body = append(body, fmtSize[:]...)
	body = append(body, make([]byte, 16)...)
	dataContent := []byte{1, 2, 3, 4}
	body = append(body, []byte("data")...)
	var dataSize [4]byte
	binary.LittleEndian.PutUint32(dataSize[:], uint32(len(dataContent)))
	body = append(body, dataSize[:]...)
	body = append(body, dataContent...)

	binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(body)))
	buf.Write(sizeBuf[:])
	buf.Write(body)
	return buf.Bytes()
}

func TestWavId3RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, os.WriteFile(path, buildMinimalWAV(), 0666))

	tag := New()
	tag.SetTitle("WAV Title")
	require.NoError(t, WriteWavId3(path, tag, Encoder{Version: V23}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := LoadWavId3(f)
	require.NoError(t, err)
	assert.Equal(t, "WAV Title", got.Title())
}
