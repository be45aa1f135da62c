package storage

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempFileWith(t *testing.T, content []byte) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "plain-storage-*")
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	return f
}

func TestReaderBoundedToRegion(t *testing.T) {
	f := tempFileWith(t, []byte("HEADAAAABBBBTAIL"))
	defer f.Close()

	s := New(f, 4, 12)
	r, err := s.Reader()
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("AAAABBBB"), got)
}

func TestWriterGrowShiftsTrailingContent(t *testing.T) {
	f := tempFileWith(t, []byte("HEADoldTAIL"))
	defer f.Close()

	s := New(f, 4, 7) // region covers "old"
	w, err := s.Writer()
	require.NoError(t, err)
	_, err = w.Write([]byte("much-longer-value"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	out, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	require.Equal(t, "HEADmuch-longer-valueTAIL", string(out))
}

func TestWriterShrinkShiftsTrailingContent(t *testing.T) {
	f := tempFileWith(t, []byte("HEADmuch-longer-valueTAIL"))
	defer f.Close()

	s := New(f, 4, 4+len("much-longer-value"))
	w, err := s.Writer()
	require.NoError(t, err)
	_, err = w.Write([]byte("old"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	out, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	require.Equal(t, "HEADoldTAIL", string(out))
}

func TestWriterNoOpSizeFlushesInPlace(t *testing.T) {
	f := tempFileWith(t, []byte("HEADoldTAIL"))
	defer f.Close()

	s := New(f, 4, 7)
	w, err := s.Writer()
	require.NoError(t, err)
	_, err = w.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	out, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	require.Equal(t, "HEADnewTAIL", string(out))
}

func TestSeekBufferWriteAndSeek(t *testing.T) {
	var b seekBuffer
	_, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	pos, err := b.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Zero(t, pos)
	_, err = b.Write([]byte("H"))
	require.NoError(t, err)
	require.True(t, bytes.Equal(b.data, []byte("Hello")))
}
