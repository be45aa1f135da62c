package id3tag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(path, data, 0666))
	return path
}

func TestWriteToFileInsertsThenOverwrites(t *testing.T) {
	path := writeTempFile(t, []byte("trailing audio bytes"))

	tag := New()
	tag.SetTitle("First")
	require.NoError(t, WriteToFile(path, tag, Encoder{Version: V23}))

	got, err := ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title())

	tag.SetTitle("A much longer title than before, to force a grow")
	require.NoError(t, WriteToFile(path, tag, Encoder{Version: V23}))

	got, err = ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A much longer title than before, to force a grow", got.Title())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "trailing audio bytes")
}

func TestRemoveFromFile(t *testing.T) {
	path := writeTempFile(t, []byte("audio"))

	tag := New()
	tag.SetTitle("Gone Soon")
	require.NoError(t, WriteToFile(path, tag, Encoder{Version: V24}))

	removed, err := RemoveFromFile(path)
	require.NoError(t, err)
	assert.True(t, removed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio", string(raw))

	removedAgain, err := RemoveFromFile(path)
	require.NoError(t, err)
	assert.False(t, removedAgain)
}

func TestIsCandidateAndReadFromFileNoTag(t *testing.T) {
	path := writeTempFile(t, []byte("not a tag at all"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	ok, err := IsCandidate(f)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ReadFromFile(path)
	assert.Error(t, err)
}
