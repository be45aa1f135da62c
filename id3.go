// Package id3tag reads and writes ID3 metadata embedded in audio
// files: ID3v2.2/2.3/2.4 tags (package v2), ID3v1/1.1/extended
// trailers (package v1), and the RIFF (WAV) / AIFF containers that
// can carry a v2 tag as a named chunk instead of a raw prefix
// (package chunk).
//
// This file is the v2-only slice of the façade: probing, reading and
// writing a tag by itself, independent of any v1 trailer that might
// also be present. See facade.go for the combined v1+v2 entry points
// most callers want, and wav.go/aiff.go for the container helpers.
package id3tag

import (
	"bytes"
	"io"
	"os"

	"github.com/go-audio/id3tag/id3err"
	"github.com/go-audio/id3tag/storage"
	"github.com/go-audio/id3tag/synchsafe"
	"github.com/go-audio/id3tag/v2"
)

// Tag, Version, Frame and Encoder are the v2 package's types,
// re-exported so callers of this façade don't need a second import.
type (
	Tag     = v2.Tag
	Version = v2.Version
	Frame   = v2.Frame
	Encoder = v2.Encoder
)

const (
	V22 = v2.V22
	V23 = v2.V23
	V24 = v2.V24
)

// New returns an empty tag.
func New() *Tag { return v2.New() }

// IsCandidate reports whether r, a seekable reader, starts with an
// "ID3" v2 tag header at its current position. The position is
// restored before returning.
func IsCandidate(r io.ReadSeeker) (bool, error) {
	return v2.IsCandidate(r)
}

// ReadFrom reads a v2 tag from r.
func ReadFrom(r io.Reader) (*Tag, error) {
	tag, _, err := v2.ReadFrom(r)
	return tag, err
}

// WriteTo serializes tag to w per enc's configuration.
func WriteTo(w io.Writer, tag *Tag, enc Encoder) error {
	return enc.EncodeTo(w, tag)
}

// ReadFromFile opens path and reads a v2 tag from its start. No
// fallback to ID3v1 is attempted; see the combined ReadFromPath in
// facade.go for that.
func ReadFromFile(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, id3err.IOErr(err)
	}
	defer f.Close()
	return ReadFrom(f)
}

// WriteToFile writes tag into the file at path, replacing any
// existing v2 tag in place (growing or shrinking the file around it
// via storage.PlainStorage) or inserting one at the start if none is
// present. It does not touch any ID3v1 trailer; see the combined
// WriteToPath in facade.go, which additionally strips one.
//
// Grounded on original_source/src/tag.rs's Tag::write_to_path and its
// locate_id3v2 helper.
func WriteToFile(path string, tag *Tag, enc Encoder) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return id3err.IOErr(err)
	}
	defer f.Close()

	start, end, err := locateV2Region(f)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := enc.EncodeTo(&buf, tag); err != nil {
		return err
	}

	st := storage.New(f, start, end)
	w, err := st.Writer()
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return id3err.IOErr(err)
	}
	return w.Flush()
}

// RemoveFromFile strips any v2 tag from the start of the file at
// path, reporting whether one was present. It does not touch an
// ID3v1 trailer.
func RemoveFromFile(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return false, id3err.IOErr(err)
	}
	defer f.Close()
	return removeV2(f)
}

func removeV2(f *os.File) (bool, error) {
	start, end, err := locateV2Region(f)
	if err != nil {
		return false, err
	}
	if start == end {
		return false, nil
	}
	st := storage.New(f, start, end)
	w, err := st.Writer()
	if err != nil {
		return false, err
	}
	if err := w.Flush(); err != nil {
		return false, err
	}
	return true, nil
}

// locateV2Region finds the byte range [0, N) a v2 tag currently
// occupies at the start of f, including any trailing zero padding, or
// returns 0..0 ("insert here") if no tag is present.
//
// Grounded on original_source/src/tag.rs's locate_id3v2: read the
// 10-byte header, decode its synchsafe size, then count zero padding
// bytes immediately after the declared tag body.
func locateV2Region(f *os.File) (start, end int64, err error) {
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, id3err.IOErr(err)
	}
	var hdr [10]byte
	n, rerr := io.ReadFull(f, hdr[:])
	if rerr != nil || n < len(hdr) || string(hdr[0:3]) != "ID3" {
		return 0, 0, nil
	}
	size := int64(synchsafe.DecodeBytes(hdr[6:10]))
	bodyEnd := int64(len(hdr)) + size

	if _, err = f.Seek(bodyEnd, io.SeekStart); err != nil {
		return 0, 0, id3err.IOErr(err)
	}
	padding := int64(0)
	var b [1]byte
	for {
		if _, err := io.ReadFull(f, b[:]); err != nil {
			break
		}
		if b[0] != 0 {
			break
		}
		padding++
	}
	return 0, bodyEnd + padding, nil
}
