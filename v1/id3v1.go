// Package v1 implements the ID3v1, ID3v1.1 and ID3v1-extended ("TAG+")
// trailer reader (spec component I), plus the supporting genre table
// and TCON parser that the richer v2 tag model depends on.
package v1

import (
	"io"

	"github.com/go-audio/id3tag/id3err"
)

const (
	tagSize     = 128
	xtagSize    = 227
	totalSize   = xtagSize + tagSize
	tagOffset   = -128
	xtagOffset  = -355
)

// Tag is a fully materialized ID3v1 tag. Its lifetime is independent of
// any ID3v2 tag also present in the same file.
type Tag struct {
	Title, Artist, Album, Year, Comment string
	Track                               *uint8
	GenreID                             uint8

	// Extended ("TAG+") fields, nil when no extension was present.
	Speed               *uint8
	GenreString         *string
	StartTime, EndTime  *string
}

// Genre resolves GenreID to its English name, per the fixed genre table.
func (t Tag) Genre() (string, bool) {
	return GenreName(t.GenreID)
}

// IsCandidate reports whether r, a seekable reader, has the three-byte
// "TAG" marker at offset -128 from the end. The reader's position is
// restored before returning.
func IsCandidate(r io.ReadSeeker) (bool, error) {
	initial, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, id3err.IOErr(err)
	}
	defer r.Seek(initial, io.SeekStart)

	if _, err := r.Seek(tagOffset, io.SeekEnd); err != nil {
		return false, nil
	}
	var buf [3]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && n < 3 {
		return false, nil
	}
	return buf == [3]byte{'T', 'A', 'G'}, nil
}

// ReadFrom reads an ID3v1(.1)/extended tag from r.
//
// Grounded on original_source/src/v1/mod.rs's Tag::read_from: the same
// fixed-offset table is used, corrected per spec §4.I to source
// genre_str/start_time/end_time from their own 30/6/6-byte windows
// (the original source reuses the genre_str window for all three, a
// defect that the distilled specification's explicit field widths do
// not carry forward).
func ReadFrom(r io.ReadSeeker) (*Tag, error) {
	fileLen, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, id3err.IOErr(err)
	}

	buf := make([]byte, totalSize)
	var tag, xtag []byte
	switch {
	case fileLen >= int64(-xtagOffset):
		if _, err := r.Seek(xtagOffset, io.SeekEnd); err != nil {
			return nil, id3err.IOErr(err)
		}
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, id3err.IOErr(err)
		}
		xtag, tag = buf[:xtagSize], buf[xtagSize:]
	case fileLen >= int64(-tagOffset):
		if _, err := r.Seek(tagOffset, io.SeekEnd); err != nil {
			return nil, id3err.IOErr(err)
		}
		if _, err := io.ReadFull(r, buf[xtagSize:]); err != nil {
			return nil, id3err.IOErr(err)
		}
		tag = buf[xtagSize:]
	default:
		return nil, id3err.NoTagErr("file is too small to contain an ID3v1 tag")
	}

	if len(tag) < tagSize || string(tag[0:3]) != "TAG" {
		return nil, id3err.ErrNoTag
	}
	var hasExt bool
	if len(xtag) == xtagSize && string(xtag[0:4]) == "TAG+" {
		hasExt = true
	} else {
		xtag = nil
	}

	decodeStr := func(base []byte, ext []byte) string {
		out := make([]byte, 0, len(base)+len(ext))
		for _, c := range base {
			if c == 0 {
				break
			}
			out = append(out, c)
		}
		for _, c := range ext {
			if c == 0 {
				break
			}
			out = append(out, c)
		}
		return string(out)
	}

	var titleExt, artistExt, albumExt []byte
	if hasExt {
		titleExt, artistExt, albumExt = xtag[4:64], xtag[64:124], xtag[124:184]
	}

	t := &Tag{
		Title:  decodeStr(tag[3:33], titleExt),
		Artist: decodeStr(tag[33:63], artistExt),
		Album:  decodeStr(tag[63:93], albumExt),
		Year:   decodeStr(tag[93:97], nil),
	}

	var commentRaw []byte
	if tag[125] == 0 && tag[126] != 0 {
		track := tag[126]
		t.Track = &track
		commentRaw = tag[97:125]
	} else {
		commentRaw = tag[97:127]
	}
	t.Comment = decodeStr(commentRaw, nil)
	t.GenreID = tag[127]

	if hasExt {
		if xtag[184] != 0 {
			speed := xtag[184]
			t.Speed = &speed
		}
		genreStr := decodeStr(xtag[185:215], nil)
		startTime := decodeStr(xtag[215:221], nil)
		endTime := decodeStr(xtag[221:227], nil)
		t.GenreString = &genreStr
		t.StartTime = &startTime
		t.EndTime = &endTime
	}

	return t, nil
}

// Bytes serializes t as a 128-byte ID3v1(.1) trailer, without the
// extended "TAG+" section. It exists primarily to support round-trip
// tests of ReadFrom.
func (t Tag) Bytes() []byte {
	buf := make([]byte, tagSize)
	copy(buf[0:3], "TAG")
	putFixed(buf[3:33], t.Title)
	putFixed(buf[33:63], t.Artist)
	putFixed(buf[63:93], t.Album)
	putFixed(buf[93:97], t.Year)
	if t.Track != nil {
		putFixed(buf[97:125], t.Comment)
		buf[125] = 0
		buf[126] = *t.Track
	} else {
		putFixed(buf[97:127], t.Comment)
	}
	buf[127] = t.GenreID
	return buf
}

func putFixed(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
