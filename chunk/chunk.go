// Package chunk locates and rewrites the `ID3 ` sub-chunk inside a RIFF
// (WAV) or AIFF container, so a v2 tag can be read from or written into
// those audio formats instead of only appearing as a bare trailer/prefix.
//
// Grounded on original_source/src/chunk.rs: the root-chunk header
// shape, the flat chunk-sequence scan, and the read/write drivers are
// carried over directly. Endianness is expressed with the standard
// library's encoding/binary.ByteOrder instead of the original's
// byteorder crate, since Go's own binary package is the idiomatic,
// dependency-free equivalent for this exact concern.
package chunk

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/go-audio/id3tag/id3err"
	"github.com/go-audio/id3tag/storage"
)

const (
	tagLen         = 4
	sizeLen        = 4
	chunkHeaderLen = tagLen + sizeLen
)

var id3ChunkTag = [4]byte{'I', 'D', '3', ' '}

// Format distinguishes the two supported container dialects.
type Format struct {
	Endianness binary.ByteOrder
	RootTag    [4]byte
	RootFormat *[4]byte // nil means "don't check the format field" (AIFF)
}

// WAV is "RIFF....WAVE", little-endian sizes.
var WAV = Format{Endianness: binary.LittleEndian, RootTag: [4]byte{'R', 'I', 'F', 'F'}, RootFormat: &[4]byte{'W', 'A', 'V', 'E'}}

// AIFF is "FORM....<any 4-byte form id>", big-endian sizes.
var AIFF = Format{Endianness: binary.BigEndian, RootTag: [4]byte{'F', 'O', 'R', 'M'}}

func tagsEqualFold(a, b [4]byte) bool {
	for i := range a {
		ac, bc := a[i], b[i]
		if 'a' <= ac && ac <= 'z' {
			ac -= 'a' - 'A'
		}
		if 'a' <= bc && bc <= 'z' {
			bc -= 'a' - 'A'
		}
		if ac != bc {
			return false
		}
	}
	return true
}

type header struct {
	tag  [4]byte
	size uint32
}

// readRootHeader reads and validates the 12-byte root header (tag,
// size, format) at the start of the stream.
func readRootHeader(r io.Reader, f Format) (header, error) {
	var buf [12]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return header{}, id3err.IOErr(err)
	}
	var tag [4]byte
	copy(tag[:], buf[0:4])
	if !tagsEqualFold(tag, f.RootTag) {
		return header{}, id3err.ParsingErr("invalid root chunk header")
	}
	size := f.Endianness.Uint32(buf[4:8])

	if f.RootFormat != nil {
		var format [4]byte
		copy(format[:], buf[8:12])
		if !tagsEqualFold(format, *f.RootFormat) {
			return header{}, id3err.ParsingErr("invalid root chunk format")
		}
	}
	return header{tag: tag, size: size}, nil
}

// readHeader reads a single 8-byte chunk header (tag, size).
func readHeader(r io.Reader, f Format) (header, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return header{}, id3err.IOErr(err)
	}
	var tag [4]byte
	copy(tag[:], buf[0:4])
	return header{tag: tag, size: f.Endianness.Uint32(buf[4:8])}, nil
}

func writeHeader(w io.Writer, f Format, h header) error {
	var buf [8]byte
	copy(buf[0:4], h.tag[:])
	f.Endianness.PutUint32(buf[4:8], h.size)
	_, err := w.Write(buf[:])
	return id3err.IOErr(err)
}

// findID3 scans a flat sequence of chunks (starting at the reader's
// current position, ending end bytes later) for the first `ID3 `
// chunk, returning its header and the absolute position its content
// starts at. It never recurses into sub-chunks.
func findID3(r io.ReadSeeker, f Format, end int64) (header, int64, error) {
	scanStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return header{}, 0, id3err.IOErr(err)
	}

	for {
		pos, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return header{}, 0, id3err.IOErr(err)
		}
		if pos-scanStart >= end {
			break
		}

		h, err := readHeader(r, f)
		if err != nil {
			return header{}, 0, err
		}
		contentStart, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return header{}, 0, id3err.IOErr(err)
		}
		if tagsEqualFold(h.tag, id3ChunkTag) {
			return h, contentStart, nil
		}
		skip := int64(h.size) + int64(h.size%2)
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return header{}, 0, id3err.IOErr(err)
		}
	}
	return header{}, 0, id3err.ErrNoTag
}

// LocateID3 finds the `ID3 ` chunk in a container stream of the given
// format, returning the absolute byte offset its content starts at and
// its declared size. The stream's position afterward is unspecified.
func LocateID3(r io.ReadSeeker, f Format) (start int64, size uint32, err error) {
	root, err := readRootHeader(r, f)
	if err != nil {
		return 0, 0, err
	}
	if root.size < tagLen {
		return 0, 0, id3err.ParsingErr("invalid root chunk size")
	}
	scanLen := int64(root.size - tagLen)
	h, contentStart, err := findID3(r, f, scanLen)
	if err != nil {
		return 0, 0, err
	}
	return contentStart, h.size, nil
}

// ReadTagBytes returns the raw bytes of the `ID3 ` chunk's content
// (the undecoded v2 tag stream), for the root façade to hand to the v2
// reader driver.
func ReadTagBytes(r io.ReadSeeker, f Format) ([]byte, error) {
	start, size, err := LocateID3(r, f)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, id3err.IOErr(err)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, id3err.IOErr(err)
	}
	return buf, nil
}

// WriteTagBytes writes tagBytes into file's `ID3 ` chunk, creating the
// chunk (and growing the root chunk's declared size) if none exists
// yet, or overwriting it in place (growing/shrinking the file around
// it) if one does. Odd-length content is padded with a single zero
// byte, per the RIFF/AIFF even-alignment rule; the chunk header's
// declared size is the unpadded length of tagBytes.
func WriteTagBytes(file storage.File, f Format, tagBytes []byte) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return id3err.IOErr(err)
	}
	root, err := readRootHeader(file, f)
	if err != nil {
		return err
	}

	var chunkContentStart int64
	var existingSize uint32
	var chunkHeaderPos int64
	hasExisting := true

	if root.size < tagLen {
		return id3err.ParsingErr("invalid root chunk size")
	}
	h, contentStart, err := findID3(file, f, int64(root.size-tagLen))
	if err == nil {
		chunkContentStart = contentStart
		existingSize = h.size
		chunkHeaderPos = contentStart - chunkHeaderLen
	} else if errors.Is(err, id3err.ErrNoTag) {
		hasExisting = false
		end, serr := file.Seek(0, io.SeekEnd)
		if serr != nil {
			return id3err.IOErr(serr)
		}
		chunkHeaderPos = end
		chunkContentStart = end + chunkHeaderLen
	} else {
		return err
	}

	padded := tagBytes
	if len(padded)%2 == 1 {
		padded = append(append([]byte{}, padded...), 0)
	}

	if hasExisting {
		// The region includes the existing chunk's pad byte, if any.
		existingLen := existingSize + existingSize%2
		st := storage.New(file, chunkContentStart, chunkContentStart+int64(existingLen))
		w, werr := st.Writer()
		if werr != nil {
			return werr
		}
		if _, err := w.Write(padded); err != nil {
			return id3err.IOErr(err)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		root.size = root.size - existingLen + uint32(len(padded))
	} else {
		st := storage.New(file, chunkContentStart, chunkContentStart)
		w, werr := st.Writer()
		if werr != nil {
			return werr
		}
		if _, err := w.Write(padded); err != nil {
			return id3err.IOErr(err)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		root.size += chunkHeaderLen + uint32(len(padded))
	}

	if _, err := file.Seek(chunkHeaderPos, io.SeekStart); err != nil {
		return id3err.IOErr(err)
	}
	if err := writeHeader(file, f, header{tag: id3ChunkTag, size: uint32(len(tagBytes))}); err != nil {
		return err
	}

	if _, err := file.Seek(4, io.SeekStart); err != nil {
		return id3err.IOErr(err)
	}
	var sizeBuf [4]byte
	f.Endianness.PutUint32(sizeBuf[:], root.size)
	if _, err := file.Write(sizeBuf[:]); err != nil {
		return id3err.IOErr(err)
	}
	return nil
}
