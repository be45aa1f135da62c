package v2

import (
	"bytes"

	"github.com/go-audio/id3tag/id3err"
)

// maxNestingDepth bounds CHAP/CTOC's re-entrant frame-stream decoding.
// Per spec §4.C, nested frames require a depth limit to rule out
// unbounded recursion from a crafted or corrupt CTOC chain.
const maxNestingDepth = 8

// decodeFrameStream parses data as a sequence of standard v2.3/2.4
// frames (CHAP/CTOC's "nested frames" field; the top-level tag body is
// read by ReadFrom in stream.go instead). It stops at the first padding
// sentinel or once data is exhausted, much like the top-level reader
// driver, just bounded to an in-memory window instead of a stream.
func decodeFrameStream(data []byte, version Version, depth int) ([]Frame, error) {
	if depth > maxNestingDepth {
		return nil, id3err.ParsingErr("nested CHAP/CTOC frames exceed maximum depth")
	}
	r := bytes.NewReader(data)
	var frames []Frame
	for r.Len() > 0 {
		// Nested CHAP/CTOC frames were already desynced as part of
		// decoding their parent's content, so no further tag-level
		// unsynch applies here.
		hdr, content, ok, err := readFrameHeader(r, version, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		f, err := decodeFrameContent(hdr, content, version, depth+1)
		if err != nil {
			return nil, err
		}
		frames = appendSlot(frames, f)
	}
	return frames, nil
}

// encodeFrameStream serializes frames (CHAP/CTOC's nested list) back
// into the flat byte form decodeFrameStream reads.
func encodeFrameStream(frames []Frame, version Version) ([]byte, error) {
	var buf bytes.Buffer
	for _, f := range frames {
		content, err := encodeFrameContent(f, version)
		if err != nil {
			return nil, err
		}
		if err := writeFrameHeader(&buf, version, f.ID, content, f.TagAlterPreservation, f.FileAlterPreservation, false, false); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// appendSlot appends f to frames, replacing an existing same-slot
// frame in place rather than growing the slice, per the tag's
// slot-replace insert semantics (spec §4.E driver step 6).
func appendSlot(frames []Frame, f Frame) []Frame {
	for i, existing := range frames {
		if SameSlot(existing, f) {
			frames[i] = f
			return frames
		}
	}
	return append(frames, f)
}
