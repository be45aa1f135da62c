package v2

import (
	"io"

	"github.com/go-audio/id3tag/id3err"
	"github.com/go-audio/id3tag/synchsafe"
)

// tagHeader is the parsed 10-byte tag header, per spec §4.E.
type tagHeader struct {
	Version       Version
	Unsynch       bool
	ExtendedFlag  bool
	Experimental  bool
	Footer        bool
	Size          int
}

// readTagHeader reads and validates the fixed 10-byte tag header.
func readTagHeader(r io.Reader) (tagHeader, error) {
	var buf [10]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return tagHeader{}, id3err.IOErr(err)
	}
	if string(buf[0:3]) != "ID3" {
		return tagHeader{}, id3err.ErrNoTag
	}
	major, minor := buf[3], buf[4]
	if major != 2 && major != 3 && major != 4 {
		return tagHeader{}, id3err.UnsupportedVersionErr(major, minor)
	}
	version := Version(major)
	flags := buf[5]

	if version == V22 && flags&0x40 != 0 {
		return tagHeader{}, id3err.UnsupportedFeatureErr("ID3v2.2 tag-level compression is not supported")
	}

	size := int(synchsafe.DecodeBytes(buf[6:10]))

	return tagHeader{
		Version:      version,
		Unsynch:      flags&0x80 != 0,
		ExtendedFlag: (version != V22) && flags&0x40 != 0,
		Experimental: flags&0x20 != 0,
		Footer:       version == V24 && flags&0x10 != 0,
		Size:         size,
	}, nil
}

// skipExtendedHeader consumes the extended header (present on v2.3/
// v2.4 when the ExtendedFlag bit is set), applying unsynch decode to
// its own bytes first if the tag-level unsynch flag is set, per spec
// §4.E reader step 3.
func skipExtendedHeader(r io.Reader, hdr tagHeader) error {
	if !hdr.ExtendedFlag {
		return nil
	}
	if hdr.Unsynch {
		r = synchsafe.NewReader(r)
	}
	var sizeBuf [4]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return id3err.IOErr(err)
	}
	var extSize int
	if hdr.Version == V24 {
		extSize = int(synchsafe.DecodeBytes(sizeBuf[:]))
	} else {
		extSize = int(sizeBuf[0])<<24 | int(sizeBuf[1])<<16 | int(sizeBuf[2])<<8 | int(sizeBuf[3])
	}
	// v2.3's extended header size excludes the 4 size bytes themselves;
	// v2.4's includes them. Either way, the remaining bytes to discard
	// is extSize minus what a v2.3 reader hasn't already accounted for.
	remaining := extSize
	if hdr.Version == V24 {
		remaining = extSize - 4
	}
	if remaining < 0 {
		return id3err.ParsingErr("invalid extended header size")
	}
	buf := make([]byte, remaining)
	if _, err := io.ReadFull(r, buf); err != nil {
		return id3err.IOErr(err)
	}
	return nil
}

// writeTagHeader serializes a v2 tag header with the given body size.
func writeTagHeader(w io.Writer, version Version, unsynch bool, size int) error {
	var buf [10]byte
	copy(buf[0:3], "ID3")
	buf[3] = byte(version)
	buf[4] = 0
	var flags byte
	if unsynch {
		flags |= 0x80
	}
	buf[5] = flags
	sizeBytes := synchsafe.EncodeBytes(uint32(size))
	copy(buf[6:10], sizeBytes[:])
	_, err := w.Write(buf[:])
	return id3err.IOErr(err)
}
