package v2

// Version selects an ID3v2 dialect. Internally a Tag always holds the
// richest representation (content-wise); Version is only ever used as
// an output preference for Encoder and as the frame-header dialect
// selector while reading.
type Version int

const (
	V22 Version = 2
	V23 Version = 3
	V24 Version = 4
)

func (v Version) String() string {
	switch v {
	case V22:
		return "ID3v2.2"
	case V23:
		return "ID3v2.3"
	case V24:
		return "ID3v2.4"
	default:
		return "ID3v2.?"
	}
}

// FrameHeaderSize is the on-disk width of a frame header for this
// version: 6 bytes for v2.2, 10 bytes for v2.3/v2.4.
func (v Version) FrameHeaderSize() int {
	if v == V22 {
		return 6
	}
	return 10
}
