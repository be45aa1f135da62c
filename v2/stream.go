package v2

import (
	"bytes"
	"errors"
	"io"

	"github.com/go-audio/id3tag/id3err"
	"github.com/go-audio/id3tag/synchsafe"
)

// discardOnCrossFileWrite is the fixed set of frames whose meaning
// depends on the audio layout they were read from; they must not
// survive a write to a different file, per spec §4.E writer policy.
var discardOnCrossFileWrite = map[string]bool{
	"AENC": true, "ETCO": true, "EQUA": true, "MLLT": true, "POSS": true,
	"SYLT": true, "SYTC": true, "RVAD": true, "TENC": true, "TLEN": true,
	"TSIZ": true,
}

// ReadFrom reads a v2 tag from r: header, optional extended header,
// then the per-version frame loop, which runs while bytes of the
// declared size remain and stops early at a padding sentinel. A frame
// that starts inside the declared size is read whole, even when its
// own size runs past the end of the declared size; bytes after that
// point are left unread.
func ReadFrom(r io.Reader) (*Tag, []Version, error) {
	hdr, err := readTagHeader(r)
	if err != nil {
		return nil, nil, err
	}
	if err := skipExtendedHeader(r, hdr); err != nil {
		return nil, nil, err
	}

	body := make([]byte, hdr.Size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, nil, id3err.IOErr(err)
	}

	bodyReader := bytes.NewReader(body)
	var frameReader io.Reader = io.MultiReader(bodyReader, r)
	if hdr.Version != V24 && hdr.Unsynch {
		frameReader = synchsafe.NewReader(frameReader)
	}

	tag := New()
	for bodyReader.Len() > 0 {
		fhdr, content, ok, err := readFrameHeader(frameReader, hdr.Version, hdr.Unsynch)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// The input ended exactly where a frame's content was
				// due to start; a clean stop.
				break
			}
			return nil, nil, err
		}
		if !ok {
			break
		}
		f, err := decodeFrameContent(fhdr, content, hdr.Version, 0)
		if err != nil {
			return nil, nil, err
		}
		tag.AddFrame(f)
	}

	return tag, []Version{hdr.Version}, nil
}

// Encoder serializes a Tag back to bytes, per spec §4.E's writer
// driver. CrossFile marks a write to a file other than the one the tag
// was read from, which additionally drops the file-alter discard list.
type Encoder struct {
	Version           Version
	Unsynchronisation bool
	Compression       bool
	CrossFile         bool
}

// EncodeTo serializes tag to w using e's configuration.
func (e Encoder) EncodeTo(w io.Writer, tag *Tag) error {
	var body bytes.Buffer
	for _, f := range tag.Frames() {
		if f.TagAlterPreservation {
			continue
		}
		if e.CrossFile && discardOnCrossFileWrite[f.ID] {
			continue
		}

		id := f.ID
		if e.Version == V22 {
			shortID, ok := downgradeFrameID(id)
			if !ok {
				return id3err.InvalidInputErr("frame " + id + " has no ID3v2.2 equivalent")
			}
			id = shortID
		}

		content, err := encodeFrameContent(Frame{ID: id, Content: f.Content}, e.Version)
		if err != nil {
			return err
		}
		// v2.4 protects content per frame (frame flag 0x0002); v2.2/v2.3
		// have no such flag, so the whole body is wrapped below instead.
		frameUnsynch := e.Unsynchronisation && e.Version == V24
		if err := writeFrameHeader(&body, e.Version, id, content, f.TagAlterPreservation, f.FileAlterPreservation, e.Compression && e.Version != V22, frameUnsynch); err != nil {
			return err
		}
	}

	payload := body.Bytes()
	tagUnsynch := e.Unsynchronisation
	if e.Version != V24 && tagUnsynch {
		payload = synchsafe.EncodeBuffer(payload)
	}
	if e.Version == V24 {
		// Content is already protected per frame; the tag-level flag is
		// not needed and left clear to avoid a redundant whole-body pass
		// on the next read.
		tagUnsynch = false
	}

	if err := writeTagHeader(w, e.Version, tagUnsynch, len(payload)); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return id3err.IOErr(err)
}
