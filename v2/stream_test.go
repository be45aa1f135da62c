package v2

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadFromS1Scenario mirrors spec scenario S1 exactly: a ten-byte
// v2.4 header declaring size 10, followed by one TIT2 frame (UTF-8
// "Hello").
func TestReadFromS1Scenario(t *testing.T) {
	data := []byte{
		'I', 'D', '3', 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0A,
		'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x06, 0x00, 0x00,
		0x03, 'H', 'e', 'l', 'l', 'o',
	}
	tag, versions, err := ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, V24, versions[0])
	require.Len(t, tag.Frames(), 1)
	assert.Equal(t, "TIT2", tag.Frames()[0].ID)
	assert.Equal(t, Text{Value: "Hello"}, tag.Frames()[0].Content)
	assert.Equal(t, "Hello", tag.Title())
}

// TestTagRoundTripS2Scenario mirrors spec scenario S2.
func TestTagRoundTripS2Scenario(t *testing.T) {
	tag := New()
	tag.SetTitle("Title")
	tag.SetArtist("Artist")
	tag.SetGenre("Genre")

	var buf bytes.Buffer
	enc := Encoder{Version: V23}
	require.NoError(t, enc.EncodeTo(&buf, tag))

	got, _, err := ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Title", got.Title())
	assert.Equal(t, "Artist", got.Artist())
	assert.Equal(t, "Genre", got.Genre())
}

// TestTagRoundTripS3Scenario mirrors spec scenario S3: v2.4 with
// unsynch on, disc/total_discs and a CoverFront picture.
func TestTagRoundTripS3Scenario(t *testing.T) {
	tag := New()
	tag.SetDisc(1, 1, true)
	tag.AddFrame(Frame{ID: "APIC", Content: Picture{
		MIMEType:    "image/jpeg",
		PictureType: PictureCoverFront,
		Data:        []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}})

	var buf bytes.Buffer
	enc := Encoder{Version: V24, Unsynchronisation: true}
	require.NoError(t, enc.EncodeTo(&buf, tag))

	got, _, err := ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Disc())
	total, ok := got.TotalDiscs()
	require.True(t, ok)
	assert.Equal(t, 1, total)
	pics := got.Pictures()
	require.Len(t, pics, 1)
	assert.Equal(t, PictureCoverFront, pics[0].Content.(Picture).PictureType)
}

func TestTagRoundTripCrossFileDiscardsLayoutFrames(t *testing.T) {
	tag := New()
	tag.SetTitle("T")
	tag.AddFrame(Frame{ID: "SYLT", Content: SynchronisedLyrics{Lang: "eng"}})

	var buf bytes.Buffer
	enc := Encoder{Version: V23, CrossFile: true}
	require.NoError(t, enc.EncodeTo(&buf, tag))

	got, _, err := ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title())
	assert.Nil(t, got.Get("SYLT"))
}

func TestTagRoundTripPaddingTolerance(t *testing.T) {
	tag := New()
	tag.SetTitle("Padded")

	var body bytes.Buffer
	enc := Encoder{Version: V23}
	require.NoError(t, enc.EncodeTo(&body, tag))

	// Re-encode with extra zero padding appended inside the declared
	// size, per testable property 9.
	raw := body.Bytes()
	size := int(raw[6])<<21 | int(raw[7])<<14 | int(raw[8])<<7 | int(raw[9])
	padded := append(append([]byte{}, raw[:10]...), raw[10:10+size]...)
	padded = append(padded, make([]byte, 16)...)
	newSize := size + 16
	padded[6] = byte(newSize >> 21 & 0x7F)
	padded[7] = byte(newSize >> 14 & 0x7F)
	padded[8] = byte(newSize >> 7 & 0x7F)
	padded[9] = byte(newSize & 0x7F)

	got, _, err := ReadFrom(bytes.NewReader(padded))
	require.NoError(t, err)
	assert.Equal(t, "Padded", got.Title())
}
