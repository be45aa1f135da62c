package v2

import (
	"strings"

	"github.com/go-audio/id3tag/enc"
	"github.com/go-audio/id3tag/id3err"
)

// decodeFrameContent dispatches raw frame content to its grammar per
// the identifier table in spec §4.C, and normalizes a v2.2 three-letter
// id to its v2.3/2.4 four-letter form so every Frame in a Tag carries
// a uniform identifier regardless of which dialect it was read from.
func decodeFrameContent(hdr frameHeader, data []byte, version Version, depth int) (Frame, error) {
	id := hdr.ID
	if version == V22 {
		id = normalizeFrameID(id)
	}

	content, err := decodeContentByID(hdr.ID, id, data, version, depth)
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		ID:                    id,
		Content:               content,
		TagAlterPreservation:  hdr.TagAlterPreservation,
		FileAlterPreservation: hdr.FileAlterPreservation,
	}, nil
}

func decodeContentByID(rawID, id string, data []byte, version Version, depth int) (Content, error) {
	switch {
	case rawID == "PIC" && version == V22:
		return decodePICv22(data)
	case id == "APIC":
		return decodePicture(data)
	case id == "TXXX":
		return decodeExtendedText(data)
	case strings.HasPrefix(id, "T"):
		return decodeText(data)
	case id == "WXXX":
		return decodeExtendedLink(data)
	case strings.HasPrefix(id, "W"):
		return decodeLink(data)
	case id == "COMM":
		return decodeComment(data)
	case id == "USLT":
		return decodeLyrics(data)
	case id == "SYLT":
		return decodeSynchronisedLyrics(data)
	case id == "GEOB":
		return decodeEncapsulatedObject(data)
	case id == "POPM":
		return decodePopularimeter(data)
	case id == "CHAP":
		return decodeChapter(data, version, depth)
	case id == "CTOC":
		return decodeTableOfContents(data, version, depth)
	case id == "UFID":
		return decodeUniqueFileIdentifier(data)
	default:
		return Unknown{Data: data}, nil
	}
}

// encodeFrameContent is decodeFrameContent's inverse. The text encoding
// for string-bearing variants is picked per frame by chooseEncoding,
// per the emitter rule in spec §4.C.
func encodeFrameContent(f Frame, version Version) ([]byte, error) {
	e := chooseEncoding(f.Content, version)

	switch c := f.Content.(type) {
	case Text:
		return encodeText(c, e)
	case ExtendedText:
		return encodeExtendedText(c, e)
	case Link:
		return encodeLink(c)
	case ExtendedLink:
		return encodeExtendedLink(c, e)
	case Comment:
		return encodeComment(c, e)
	case Lyrics:
		return encodeLyrics(c, e)
	case SynchronisedLyrics:
		return encodeSynchronisedLyrics(c, e)
	case Picture:
		if f.ID == "PIC" && version == V22 {
			return encodePICv22(c, e)
		}
		return encodePicture(c, e)
	case EncapsulatedObject:
		return encodeEncapsulatedObject(c, e)
	case Popularimeter:
		return encodePopularimeter(c)
	case Chapter:
		return encodeChapter(c, version)
	case TableOfContents:
		return encodeTableOfContents(c, version)
	case UniqueFileIdentifier:
		return encodeUniqueFileIdentifier(c)
	case Unknown:
		return c.Data, nil
	default:
		return nil, id3err.InvalidInputErr("unrecognized content type for frame " + f.ID)
	}
}

// chooseEncoding picks the text encoding to emit a frame's string
// fields in. v2.2/v2.3 may only use Latin-1 or UTF-16-with-BOM;
// v2.4 additionally allows UTF-16BE and UTF-8. This module always
// prefers UTF-8 on v2.4 (the simplest encoding byte to round-trip
// correctly) and falls back to UTF-16 pre-2.4, upgrading a Latin-1
// incompatible value automatically.
func chooseEncoding(content Content, version Version) enc.Encoding {
	if version == V24 {
		return enc.UTF8
	}
	if isASCIILike(content) {
		return enc.Latin1
	}
	return enc.UTF16
}

func isASCIILike(content Content) bool {
	var s string
	switch c := content.(type) {
	case Text:
		s = c.Value
	case ExtendedText:
		s = c.Description + c.Value
	case Comment:
		s = c.Description + c.Text
	case Lyrics:
		s = c.Description + c.Text
	case ExtendedLink:
		s = c.Description
	default:
		return true
	}
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}
