package v1

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackPtr(n uint8) *uint8 { return &n }

func TestParseTagRoundTrip(t *testing.T) {
	cases := []Tag{
		{Title: "Foo", Artist: "Bar", Album: "Baz", Year: "2014", Comment: "Blah", GenreID: 1},
		{Title: "Foo", Artist: "Bar", Album: "Baz", Year: "2014", Comment: "Blah", GenreID: 1, Track: trackPtr(1)},
	}
	for i, tag := range cases {
		r := bytes.NewReader(tag.Bytes())
		got, err := ReadFrom(r)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, tag.Title, got.Title)
		assert.Equal(t, tag.Artist, got.Artist)
		assert.Equal(t, tag.Album, got.Album)
		assert.Equal(t, tag.Year, got.Year)
		assert.Equal(t, tag.Comment, got.Comment)
		assert.Equal(t, tag.GenreID, got.GenreID)
		if tag.Track != nil {
			require.NotNil(t, got.Track)
			assert.Equal(t, *tag.Track, *got.Track)
		} else {
			assert.Nil(t, got.Track)
		}
	}
}

// TestParseTagTrackAndGenre mirrors spec scenario S4: a trailer with
// comment[28]=0, comment[29]=1 carries a track number, and genre id 31
// resolves to "Trance".
func TestParseTagTrackAndGenre(t *testing.T) {
	tag := Tag{Title: "Title", Artist: "Artist", Album: "Album", Year: "2017", GenreID: 31, Track: trackPtr(1)}
	tag.Comment = "Comment"

	r := bytes.NewReader(tag.Bytes())
	got, err := ReadFrom(r)
	require.NoError(t, err)
	require.NotNil(t, got.Track)
	assert.EqualValues(t, 1, *got.Track)
	genre, ok := got.Genre()
	require.True(t, ok)
	assert.Equal(t, "Trance", genre)
}

func TestIsCandidate(t *testing.T) {
	tag := Tag{Title: "T"}
	r := bytes.NewReader(tag.Bytes())
	ok, err := IsCandidate(r)
	require.NoError(t, err)
	assert.True(t, ok)

	pos, _ := r.Seek(0, 1)
	assert.Zero(t, pos, "IsCandidate must restore the stream position")

	r2 := bytes.NewReader([]byte("not a tag at all, way too short"))
	ok, err = IsCandidate(r2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenreParsed(t *testing.T) {
	assert.Equal(t, "Vocal Trance", ParseTCON("(28)(31)"))
	assert.Equal(t, "Remix", ParseTCON("(RX)"))
	assert.Equal(t, "(Foo)", ParseTCON("((Foo)"))
	assert.Equal(t, "(lol)", ParseTCON("(lol)"))
}
