package v2

import (
	"encoding/binary"

	"github.com/go-audio/id3tag/enc"
	"github.com/go-audio/id3tag/id3err"
)

// cursor is a forward-only reader over a frame's already-desynchronised,
// already-decompressed content bytes. It centralizes the small set of
// field shapes the component C grammar table uses (terminated strings,
// to-end strings, fixed-width binary) so each content_*.go file reads
// like the grammar table it implements.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() []byte {
	return c.data[c.pos:]
}

func (c *cursor) empty() bool {
	return c.pos >= len(c.data)
}

func (c *cursor) byte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, id3err.ParsingErr("unexpected end of frame content")
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) fixed(n int) ([]byte, error) {
	if c.pos+n > len(c.data) {
		return nil, id3err.ParsingErr("unexpected end of frame content")
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

func (c *cursor) u32be() (uint32, error) {
	b, err := c.fixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) toEnd() []byte {
	out := c.data[c.pos:]
	c.pos = len(c.data)
	return out
}

// latin1Terminated reads a NUL-terminated Latin-1 string, per the
// "terminated" field rule (fails Parsing when the terminator is
// missing).
func (c *cursor) latin1Terminated() (string, error) {
	s, rest, err := enc.SplitTerminated(enc.Latin1, c.remaining())
	if err != nil {
		return "", err
	}
	c.pos = len(c.data) - len(rest)
	return s, nil
}

// encTerminated reads a terminated string in the frame's leading
// encoding.
func (c *cursor) encTerminated(e enc.Encoding) (string, error) {
	s, rest, err := enc.SplitTerminated(e, c.remaining())
	if err != nil {
		return "", err
	}
	c.pos = len(c.data) - len(rest)
	return s, nil
}

// encToEnd decodes the remaining bytes in the frame's leading encoding.
func (c *cursor) encToEnd(e enc.Encoding) (string, error) {
	return enc.Decode(e, c.toEnd())
}
