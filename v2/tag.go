package v2

import (
	"strconv"
	"strings"

	"github.com/go-audio/id3tag/v1"
)

// Tag is the in-memory model of an ID3v2 tag: an ordered collection of
// frames with slot-replace insert semantics (spec §4.F). Iteration
// order always matches read/insert order, per the ordering guarantees
// in spec §5.
type Tag struct {
	frames []Frame
}

// New returns an empty tag.
func New() *Tag {
	return &Tag{}
}

// Get returns the first frame with the given identifier, or nil.
func (t *Tag) Get(id string) *Frame {
	for i := range t.frames {
		if t.frames[i].ID == id {
			return &t.frames[i]
		}
	}
	return nil
}

// AddFrame inserts f under slot identity (§3): an existing frame in
// the same slot is replaced in place and returned; otherwise f is
// appended and nil is returned.
func (t *Tag) AddFrame(f Frame) *Frame {
	for i := range t.frames {
		if SameSlot(t.frames[i], f) {
			prior := t.frames[i]
			t.frames[i] = f
			return &prior
		}
	}
	t.frames = append(t.frames, f)
	return nil
}

// Remove removes and returns every frame with the given identifier, in
// their original order.
func (t *Tag) Remove(id string) []Frame {
	var removed, kept []Frame
	for _, f := range t.frames {
		if f.ID == id {
			removed = append(removed, f)
		} else {
			kept = append(kept, f)
		}
	}
	t.frames = kept
	return removed
}

// Frames returns every frame, in tag order.
func (t *Tag) Frames() []Frame {
	return t.frames
}

func (t *Tag) filter(keep func(Content) bool) []Frame {
	var out []Frame
	for _, f := range t.frames {
		if keep(f.Content) {
			out = append(out, f)
		}
	}
	return out
}

func (t *Tag) Pictures() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(Picture); return ok })
}

func (t *Tag) Comments() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(Comment); return ok })
}

func (t *Tag) Lyrics() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(Lyrics); return ok })
}

func (t *Tag) ExtendedTexts() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(ExtendedText); return ok })
}

func (t *Tag) ExtendedLinks() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(ExtendedLink); return ok })
}

func (t *Tag) Chapters() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(Chapter); return ok })
}

func (t *Tag) TablesOfContents() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(TableOfContents); return ok })
}

func (t *Tag) UniqueFileIdentifiers() []Frame {
	return t.filter(func(c Content) bool { _, ok := c.(UniqueFileIdentifier); return ok })
}

func (t *Tag) textValue(id string) string {
	f := t.Get(id)
	if f == nil {
		return ""
	}
	if text, ok := f.Content.(Text); ok {
		return text.Value
	}
	return ""
}

func (t *Tag) setText(id, value string) {
	t.AddFrame(Frame{ID: id, Content: Text{Value: value}})
}

func (t *Tag) Title() string       { return t.textValue("TIT2") }
func (t *Tag) SetTitle(s string)   { t.setText("TIT2", s) }
func (t *Tag) Artist() string      { return t.textValue("TPE1") }
func (t *Tag) SetArtist(s string)  { t.setText("TPE1", s) }
func (t *Tag) Album() string       { return t.textValue("TALB") }
func (t *Tag) SetAlbum(s string)   { t.setText("TALB", s) }
func (t *Tag) AlbumArtist() string { return t.textValue("TPE2") }
func (t *Tag) SetAlbumArtist(s string) { t.setText("TPE2", s) }
func (t *Tag) Genre() string       { return t.textValue("TCON") }
func (t *Tag) SetGenre(s string)   { t.setText("TCON", s) }

// GenreParsed resolves legacy "(n)" genre references embedded in TCON,
// per §4.J's TCON parser.
func (t *Tag) GenreParsed() string {
	return v1.ParseTCON(t.Genre())
}

// Year strips leading zeros from TYER, per spec §4.F.
func (t *Tag) Year() string {
	y := t.textValue("TYER")
	trimmed := strings.TrimLeft(y, "0")
	if trimmed == "" && y != "" {
		return "0"
	}
	return trimmed
}

func (t *Tag) SetYear(s string) { t.setText("TYER", s) }

// Duration returns TLEN parsed as milliseconds, and false if absent or
// unparseable.
func (t *Tag) Duration() (int, bool) {
	v := t.textValue("TLEN")
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (t *Tag) SetDuration(ms int) {
	t.setText("TLEN", strconv.Itoa(ms))
}

func splitPair(s string) (n int, total int, hasTotal bool) {
	s = strings.ReplaceAll(s, "\x00", "/")
	parts := strings.SplitN(s, "/", 2)
	n, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		total, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err == nil {
			return n, total, true
		}
	}
	return n, 0, false
}

func formatPair(n int, total int, hasTotal bool) string {
	if hasTotal {
		return strconv.Itoa(n) + "/" + strconv.Itoa(total)
	}
	return strconv.Itoa(n)
}

// Track and TotalTracks parse/format TRCK's "A" or "A/B" form.
func (t *Tag) Track() int {
	n, _, _ := splitPair(t.textValue("TRCK"))
	return n
}

func (t *Tag) TotalTracks() (int, bool) {
	_, total, ok := splitPair(t.textValue("TRCK"))
	return total, ok
}

func (t *Tag) SetTrack(track int, total int, hasTotal bool) {
	t.setText("TRCK", formatPair(track, total, hasTotal))
}

// Disc and TotalDiscs parse/format TPOS the same way as Track.
func (t *Tag) Disc() int {
	n, _, _ := splitPair(t.textValue("TPOS"))
	return n
}

func (t *Tag) TotalDiscs() (int, bool) {
	_, total, ok := splitPair(t.textValue("TPOS"))
	return total, ok
}

func (t *Tag) SetDisc(disc int, total int, hasTotal bool) {
	t.setText("TPOS", formatPair(disc, total, hasTotal))
}

func (t *Tag) DateRecorded() string         { return t.textValue("TDRC") }
func (t *Tag) SetDateRecorded(s string)     { t.setText("TDRC", s) }
func (t *Tag) DateReleased() string         { return t.textValue("TDRL") }
func (t *Tag) SetDateReleased(s string)     { t.setText("TDRL", s) }
func (t *Tag) OriginalDateReleased() string { return t.textValue("TDOR") }
func (t *Tag) SetOriginalDateReleased(s string) { t.setText("TDOR", s) }

// Artists returns TPE1's NUL-split multi-values.
func (t *Tag) Artists() []string {
	return splitMulti(t.textValue("TPE1"))
}

// Genres returns TCON's NUL-split multi-values.
func (t *Tag) Genres() []string {
	return splitMulti(t.textValue("TCON"))
}

func splitMulti(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}

// FromV1 converts a v1 tag into a v2 tag, per spec §4.I's bridge: sets
// title/artist/album/year/comment, creates an English-language COMM,
// sets track if present, and resolves genre from the fixed 148-entry
// genre table when the id is in range.
func FromV1(src *v1.Tag) *Tag {
	t := New()
	t.SetTitle(src.Title)
	t.SetArtist(src.Artist)
	t.SetAlbum(src.Album)
	t.SetYear(src.Year)
	t.AddFrame(Frame{ID: "COMM", Content: Comment{Lang: "eng", Text: src.Comment}})
	if src.Track != nil {
		t.SetTrack(int(*src.Track), 0, false)
	}
	if genre, ok := src.Genre(); ok {
		t.SetGenre(genre)
	}
	return t
}
