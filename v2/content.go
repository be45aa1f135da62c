package v2

// Content is the decoded payload of a Frame. It is a closed set of
// concrete types (Text, ExtendedText, Link, ...); callers discriminate
// with a type switch the way a Rust match would on the original enum.
//
// Grounded on original_source/src/frame/content.rs's Content enum: Go
// lacks tagged unions, so the variant is approximated with a sealed
// interface (an unexported marker method) and one struct per case,
// rather than a single struct with optional fields for every variant.
type Content interface {
	isContent()
}

// Text holds a parsed text-frame value ("T???" except TXXX). A v2.4
// value may itself be several NUL-separated strings; Values splits on
// that separator, Text.Value keeps the raw joined form.
type Text struct {
	Value string
}

// ExtendedText is the content of a TXXX/TXX user-defined text frame.
type ExtendedText struct {
	Description string
	Value       string
}

// Link holds a parsed link-frame value ("W???" except WXXX), always
// Latin-1 and unterminated to the end of the frame.
type Link struct {
	URL string
}

// ExtendedLink is the content of a WXXX/WXX user-defined link frame.
type ExtendedLink struct {
	Description string
	Link        string
}

// Comment is the content of a COMM/COM frame.
type Comment struct {
	Lang        string
	Description string
	Text        string
}

// Lyrics is the content of a USLT/ULT unsynchronised-lyrics frame.
type Lyrics struct {
	Lang        string
	Description string
	Text        string
}

// SyncedLyricsEntry is one (timestamp, text) pair of a SYLT frame.
type SyncedLyricsEntry struct {
	Timestamp uint32
	Text      string
}

// SynchronisedLyrics is the content of a SYLT frame.
type SynchronisedLyrics struct {
	Lang             string
	TimestampFormat  uint8
	ContentType      uint8
	Description      string
	Entries          []SyncedLyricsEntry
}

// PictureType enumerates the 21 APIC/PIC picture kinds, in on-disk id
// order (id == array index), per original_source/src/frame/picture.rs.
type PictureType uint8

const (
	PictureOther PictureType = iota
	PictureIcon
	PictureOtherIcon
	PictureCoverFront
	PictureCoverBack
	PictureLeaflet
	PictureMedia
	PictureLeadArtist
	PictureArtist
	PictureConductor
	PictureBand
	PictureComposer
	PictureLyricist
	PictureRecordingLocation
	PictureDuringRecording
	PictureDuringPerformance
	PictureScreenCapture
	PictureBrightFish
	PictureIllustration
	PictureBandLogo
	PicturePublisherLogo
)

var pictureTypeNames = [...]string{
	"Other", "Icon", "OtherIcon", "CoverFront", "CoverBack", "Leaflet",
	"Media", "LeadArtist", "Artist", "Conductor", "Band", "Composer",
	"Lyricist", "RecordingLocation", "DuringRecording", "DuringPerformance",
	"ScreenCapture", "BrightFish", "Illustration", "BandLogo", "PublisherLogo",
}

func (p PictureType) String() string {
	if int(p) < len(pictureTypeNames) {
		return pictureTypeNames[p]
	}
	return "Unknown"
}

// Picture is the content of an APIC/PIC frame.
type Picture struct {
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

// EncapsulatedObject is the content of a GEOB/GEO frame.
type EncapsulatedObject struct {
	MIMEType    string
	Filename    string
	Description string
	Data        []byte
}

// Popularimeter is the content of a POPM frame. Counter is widened to
// uint64 regardless of its on-disk width (1 to 8 bytes, big-endian).
type Popularimeter struct {
	User    string
	Rating  uint8
	Counter uint64
}

// Chapter is the content of a CHAP frame. Nested holds the frame
// stream embedded after the fixed fields.
type Chapter struct {
	ElementID   string
	StartTime   uint32
	EndTime     uint32
	StartOffset uint32
	EndOffset   uint32
	Nested      []Frame
}

// TableOfContents is the content of a CTOC frame.
type TableOfContents struct {
	ElementID  string
	TopLevel   bool
	Ordered    bool
	ChildIDs   []string
	Nested     []Frame
}

// UniqueFileIdentifier is the content of a UFID frame.
type UniqueFileIdentifier struct {
	OwnerIdentifier string
	Identifier      []byte
}

// Unknown preserves the raw payload of a frame whose identifier (or
// content grammar) was not recognized, so it round-trips unmodified.
type Unknown struct {
	Data []byte
}

func (Text) isContent()                 {}
func (ExtendedText) isContent()         {}
func (Link) isContent()                 {}
func (ExtendedLink) isContent()         {}
func (Comment) isContent()              {}
func (Lyrics) isContent()               {}
func (SynchronisedLyrics) isContent()   {}
func (Picture) isContent()              {}
func (EncapsulatedObject) isContent()   {}
func (Popularimeter) isContent()        {}
func (Chapter) isContent()              {}
func (TableOfContents) isContent()      {}
func (UniqueFileIdentifier) isContent() {}
func (Unknown) isContent()              {}

// Frame is a single parsed ID3v2 frame: an identifier (a three-letter
// id read from a v2.2 stream is normalized to its v2.3/2.4 four-letter
// form through the id map in idmap.go; an id the map does not know
// keeps its three letters), its decoded
// Content, and the two preservation flags that control whether the
// frame survives alteration/file changes.
type Frame struct {
	ID                   string
	Content              Content
	TagAlterPreservation bool
	FileAlterPreservation bool
}

// SameSlot reports whether a and b occupy the same logical slot in a
// Tag and so one must replace the other on insert, rather than
// co-exist. Most frame kinds are unique per identifier; the
// multi-instance kinds (TXXX, WXXX, COMM, USLT, SYLT, APIC, GEOB,
// CHAP, CTOC, UFID) are unique per their own discriminating sub-key
// instead, mirroring each Content variant's PartialEq impl in
// original_source/src/frame/content.rs (e.g. ExtendedText compares by
// description only, Picture by picture_type only, Comment/Lyrics by
// lang+description). Unknown is the odd one out: it has no
// discriminating key at all and so never matches, per
// original_source/src/frame/content_cmp.rs's ContentCmp::Incomparable
// ("used to mark frames to be always different").
func SameSlot(a, b Frame) bool {
	if a.ID != b.ID {
		return false
	}
	switch ac := a.Content.(type) {
	case ExtendedText:
		bc, ok := b.Content.(ExtendedText)
		return ok && ac.Description == bc.Description
	case ExtendedLink:
		bc, ok := b.Content.(ExtendedLink)
		return ok && ac.Description == bc.Description
	case Comment:
		bc, ok := b.Content.(Comment)
		return ok && ac.Lang == bc.Lang && ac.Description == bc.Description
	case Lyrics:
		bc, ok := b.Content.(Lyrics)
		return ok && ac.Lang == bc.Lang && ac.Description == bc.Description
	case Picture:
		bc, ok := b.Content.(Picture)
		return ok && ac.PictureType == bc.PictureType
	case UniqueFileIdentifier:
		bc, ok := b.Content.(UniqueFileIdentifier)
		return ok && ac.OwnerIdentifier == bc.OwnerIdentifier
	case SynchronisedLyrics:
		bc, ok := b.Content.(SynchronisedLyrics)
		return ok && ac.Lang == bc.Lang && ac.Description == bc.Description
	case EncapsulatedObject:
		bc, ok := b.Content.(EncapsulatedObject)
		return ok && ac.Description == bc.Description
	case Chapter:
		bc, ok := b.Content.(Chapter)
		return ok && ac.ElementID == bc.ElementID
	case TableOfContents:
		bc, ok := b.Content.(TableOfContents)
		return ok && ac.ElementID == bc.ElementID
	case Unknown:
		// Unknown frames always coexist: an unrecognized four-letter id
		// carries no discriminating sub-key, so two of them are never
		// the same slot (original_source's ContentCmp::Incomparable).
		return false
	default:
		return true
	}
}
