package chunk

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildWAV(id3 []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	var sizeBuf [4]byte
	dataChunk := []byte("data")
	dataContent := []byte{1, 2, 3, 4}
	body := append([]byte("WAVE"), []byte("fmt ")...)
	var fmtSize [4]byte
	binary.LittleEndian.PutUint32(fmtSize[:], 16)
	body = append(body, fmtSize[:]...)
	body = append(body, make([]byte, 16)...)
	body = append(body, dataChunk...)
	var dataSize [4]byte
	binary.LittleEndian.PutUint32(dataSize[:], uint32(len(dataContent)))
	body = append(body, dataSize[:]...)
	body = append(body, dataContent...)

	if len(id3) > 0 {
		body = append(body, []byte("ID3 ")...)
		var id3Size [4]byte
		binary.LittleEndian.PutUint32(id3Size[:], uint32(len(id3)))
		body = append(body, id3Size[:]...)
		body = append(body, id3...)
	}

	binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(body)))
	buf.Write(sizeBuf[:])
	buf.Write(body)
	return buf.Bytes()
}

func TestLocateID3InWAV(t *testing.T) {
	id3 := []byte("hello-id3-bytes")
	raw := buildWAV(id3)

	start, size, err := LocateID3(bytes.NewReader(raw), WAV)
	require.NoError(t, err)
	require.EqualValues(t, len(id3), size)
	require.Equal(t, id3, raw[start:int(start)+len(id3)])
}

func TestLocateID3NoTag(t *testing.T) {
	raw := buildWAV(nil)
	_, _, err := LocateID3(bytes.NewReader(raw), WAV)
	require.Error(t, err)
}

func TestWriteTagBytesCreatesChunk(t *testing.T) {
	raw := buildWAV(nil)
	f, err := os.CreateTemp(t.TempDir(), "wav-*")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Write(raw)
	require.NoError(t, err)

	require.NoError(t, WriteTagBytes(f, WAV, []byte("newtagbytes")))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	start, size, err := LocateID3(f, WAV)
	require.NoError(t, err)
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, size)
	_, err = io.ReadFull(f, got)
	require.NoError(t, err)
	require.Equal(t, []byte("newtagbytes"), got)
}

func TestWriteTagBytesOverwritesChunk(t *testing.T) {
	raw := buildWAV([]byte("old"))
	f, err := os.CreateTemp(t.TempDir(), "wav-*")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Write(raw)
	require.NoError(t, err)

	require.NoError(t, WriteTagBytes(f, WAV, []byte("a-much-longer-replacement")))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	start, size, err := LocateID3(f, WAV)
	require.NoError(t, err)
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, size)
	_, err = io.ReadFull(f, got)
	require.NoError(t, err)
	require.Equal(t, []byte("a-much-longer-replacement"), got)
}
