package v2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-audio/id3tag/enc"
)

func TestSameSlotText(t *testing.T) {
	a := Frame{ID: "TIT2", Content: Text{Value: "A"}}
	b := Frame{ID: "TIT2", Content: Text{Value: "B"}}
	assert.True(t, SameSlot(a, b))
}

func TestSameSlotExtendedTextByDescription(t *testing.T) {
	a := Frame{ID: "TXXX", Content: ExtendedText{Description: "x", Value: "1"}}
	b := Frame{ID: "TXXX", Content: ExtendedText{Description: "x", Value: "2"}}
	c := Frame{ID: "TXXX", Content: ExtendedText{Description: "y", Value: "3"}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotPictureByType(t *testing.T) {
	a := Frame{ID: "APIC", Content: Picture{PictureType: PictureCoverFront}}
	b := Frame{ID: "APIC", Content: Picture{PictureType: PictureCoverFront, Description: "other"}}
	c := Frame{ID: "APIC", Content: Picture{PictureType: PictureCoverBack}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotCommentByLangAndDescription(t *testing.T) {
	a := Frame{ID: "COMM", Content: Comment{Lang: "eng", Description: "d"}}
	b := Frame{ID: "COMM", Content: Comment{Lang: "eng", Description: "d", Text: "different"}}
	c := Frame{ID: "COMM", Content: Comment{Lang: "deu", Description: "d"}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotSynchronisedLyricsByLangAndDescription(t *testing.T) {
	a := Frame{ID: "SYLT", Content: SynchronisedLyrics{Lang: "eng", Description: "d"}}
	b := Frame{ID: "SYLT", Content: SynchronisedLyrics{Lang: "eng", Description: "d", ContentType: 1}}
	c := Frame{ID: "SYLT", Content: SynchronisedLyrics{Lang: "deu", Description: "d"}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotEncapsulatedObjectByDescription(t *testing.T) {
	a := Frame{ID: "GEOB", Content: EncapsulatedObject{Description: "d", MIMEType: "a/b"}}
	b := Frame{ID: "GEOB", Content: EncapsulatedObject{Description: "d", MIMEType: "c/d"}}
	c := Frame{ID: "GEOB", Content: EncapsulatedObject{Description: "other"}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotChapterByElementID(t *testing.T) {
	a := Frame{ID: "CHAP", Content: Chapter{ElementID: "chp1"}}
	b := Frame{ID: "CHAP", Content: Chapter{ElementID: "chp1", EndTime: 5000}}
	c := Frame{ID: "CHAP", Content: Chapter{ElementID: "chp2"}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotTableOfContentsByElementID(t *testing.T) {
	a := Frame{ID: "CTOC", Content: TableOfContents{ElementID: "toc1"}}
	b := Frame{ID: "CTOC", Content: TableOfContents{ElementID: "toc1", Ordered: true}}
	c := Frame{ID: "CTOC", Content: TableOfContents{ElementID: "toc2"}}
	assert.True(t, SameSlot(a, b))
	assert.False(t, SameSlot(a, c))
}

func TestSameSlotUnknownNeverCoexists(t *testing.T) {
	a := Frame{ID: "ZZZZ", Content: Unknown{Data: []byte{1}}}
	b := Frame{ID: "ZZZZ", Content: Unknown{Data: []byte{1}}}
	assert.False(t, SameSlot(a, b))
}

func TestAddFrameKeepsMultipleChaptersWithDistinctElementID(t *testing.T) {
	tag := New()
	tag.AddFrame(Frame{ID: "CHAP", Content: Chapter{ElementID: "chp1"}})
	tag.AddFrame(Frame{ID: "CHAP", Content: Chapter{ElementID: "chp2"}})
	assert.Len(t, tag.Remove("CHAP"), 2)
}

func TestAddFrameKeepsMultipleUnknownFramesWithSameID(t *testing.T) {
	tag := New()
	tag.AddFrame(Frame{ID: "ZZZZ", Content: Unknown{Data: []byte{1}}})
	tag.AddFrame(Frame{ID: "ZZZZ", Content: Unknown{Data: []byte{2}}})
	assert.Len(t, tag.Remove("ZZZZ"), 2)
}

func TestDecodeTextFrameS1Scenario(t *testing.T) {
	data := []byte{0x03, 'H', 'e', 'l', 'l', 'o'}
	content, err := decodeText(data)
	require.NoError(t, err)
	assert.Equal(t, Text{Value: "Hello"}, content)
}

func TestTextEncodeDecodeRoundTrip(t *testing.T) {
	encoded, err := encodeText(Text{Value: "Grüße"}, enc.UTF8)
	require.NoError(t, err)
	got, err := decodeText(encoded)
	require.NoError(t, err)
	assert.Equal(t, Text{Value: "Grüße"}, got)
}

func TestPictureEncodeDecodeRoundTrip(t *testing.T) {
	p := Picture{MIMEType: "image/png", PictureType: PictureCoverFront, Description: "cover", Data: []byte{1, 2, 3, 4}}
	encoded, err := encodePicture(p, enc.Latin1)
	require.NoError(t, err)
	got, err := decodePicture(encoded)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPICv22DowngradesMIME(t *testing.T) {
	p := Picture{MIMEType: "image/jpeg", PictureType: PictureOther, Description: "d"}
	encoded, err := encodePICv22(p, enc.Latin1)
	require.NoError(t, err)
	got, err := decodePICv22(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", got.(Picture).MIMEType)
}

func TestPICv22RejectsUnsupportedMIME(t *testing.T) {
	p := Picture{MIMEType: "image/gif"}
	_, err := encodePICv22(p, enc.Latin1)
	assert.Error(t, err)
}

func TestPopularimeterVariableWidthCounter(t *testing.T) {
	p := Popularimeter{User: "ripper", Rating: 200, Counter: 1 << 40}
	encoded, err := encodePopularimeter(p)
	require.NoError(t, err)
	got, err := decodePopularimeter(encoded)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSynchronisedLyricsRoundTrip(t *testing.T) {
	s := SynchronisedLyrics{
		Lang:        "eng",
		ContentType: 1,
		Description: "d",
		Entries: []SyncedLyricsEntry{
			{Timestamp: 1000, Text: "line one"},
			{Timestamp: 2000, Text: "line two"},
		},
	}
	encoded, err := encodeSynchronisedLyrics(s, enc.UTF8)
	require.NoError(t, err)
	got, err := decodeSynchronisedLyrics(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestChapterWithNestedFrames(t *testing.T) {
	ch := Chapter{
		ElementID:   "chp1",
		StartTime:   0,
		EndTime:     5000,
		StartOffset: 0xFFFFFFFF,
		EndOffset:   0xFFFFFFFF,
		Nested:      []Frame{{ID: "TIT2", Content: Text{Value: "Chapter One"}}},
	}
	encoded, err := encodeChapter(ch, V24)
	require.NoError(t, err)
	got, err := decodeChapter(encoded, V24, 0)
	require.NoError(t, err)
	assert.Equal(t, ch, got)
}

func TestTableOfContentsWithChildIDs(t *testing.T) {
	toc := TableOfContents{
		ElementID: "toc",
		TopLevel:  true,
		Ordered:   true,
		ChildIDs:  []string{"chp1", "chp2"},
	}
	encoded, err := encodeTableOfContents(toc, V24)
	require.NoError(t, err)
	got, err := decodeTableOfContents(encoded, V24, 0)
	require.NoError(t, err)
	assert.Equal(t, toc, got)
}

func TestNestedFrameDepthLimitRejected(t *testing.T) {
	_, err := decodeFrameStream([]byte{}, V24, maxNestingDepth+1)
	assert.Error(t, err)
}
