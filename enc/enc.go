// Package enc implements the ID3v2 text-encoding codec (spec component
// B): the four declared text encodings (Latin-1, UTF-16 with BOM,
// UTF-16BE, UTF-8), their terminator lengths, and delimiter search.
//
// Grounded on original_source/src/util.rs (string_from_utf16/
// string_to_utf16/find_delim) for the decode/encode/terminator-search
// semantics. The teacher (mikkyang-id3-go) performed this conversion
// with cgo iconv (github.com/djimenez/iconv-go); this module instead
// uses golang.org/x/text, the pure-Go ecosystem choice also reached for
// by the sibling pack repo tmthrgd-id3v2 for exactly this concern (see
// DESIGN.md).
package enc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/go-audio/id3tag/id3err"
)

// Encoding is the one-byte encoding tag that leads every ID3v2 text
// payload.
type Encoding byte

const (
	Latin1  Encoding = 0
	UTF16   Encoding = 1 // with a leading byte-order mark
	UTF16BE Encoding = 2
	UTF8    Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "Latin1"
	case UTF16:
		return "UTF16"
	case UTF16BE:
		return "UTF16BE"
	case UTF8:
		return "UTF8"
	default:
		return "invalid"
	}
}

// TerminatorLen returns the width, in bytes, of this encoding's string
// terminator: 1 for Latin-1/UTF-8, 2 for the UTF-16 variants.
func (e Encoding) TerminatorLen() int {
	if e == UTF16 || e == UTF16BE {
		return 2
	}
	return 1
}

// ValidForVersion reports whether this encoding may be emitted for the
// given ID3v2 major version. Only v2.4 permits UTF-16BE and UTF-8.
func (e Encoding) ValidForVersion(major int) bool {
	switch e {
	case Latin1, UTF16:
		return true
	case UTF16BE, UTF8:
		return major >= 4
	default:
		return false
	}
}

var latin1 = charmap.ISO8859_1

// Decode converts data, in the declared encoding, to a Go string. Empty
// input always decodes to the empty string regardless of encoding, even
// when a BOM would otherwise be expected.
func Decode(e Encoding, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	switch e {
	case Latin1:
		out, err := latin1.NewDecoder().Bytes(data)
		if err != nil {
			return "", id3err.StringDecodingErr(data)
		}
		return string(out), nil
	case UTF8:
		if !utf8.Valid(data) {
			return "", id3err.StringDecodingErr(data)
		}
		return string(data), nil
	case UTF16, UTF16BE:
		return decodeUTF16(e, data)
	default:
		return "", id3err.ParsingErr("invalid text encoding byte")
	}
}

// decodeUTF16 mirrors original_source/src/util.rs's string_from_utf16:
// a BOM, if present, selects the byte order; otherwise big-endian is
// assumed, per spec §4.B.
func decodeUTF16(e Encoding, data []byte) (string, error) {
	payload := data
	endian := unicode.BigEndian
	if e == UTF16 {
		if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
			endian = unicode.LittleEndian
			payload = data[2:]
		} else if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
			endian = unicode.BigEndian
			payload = data[2:]
		}
		// else: no BOM, fall back to big-endian over the whole payload.
	}

	if len(payload)%2 != 0 {
		return "", id3err.StringDecodingErr(data)
	}

	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(payload)
	if err != nil {
		return "", id3err.StringDecodingErr(data)
	}
	return string(out), nil
}

// Encode renders s in the given encoding, including a leading BOM for
// Encoding(UTF16) (little-endian, matching the teacher pack's choice in
// util.rs's string_to_utf16). It does not append a terminator; callers
// append the encoding-appropriate terminator themselves.
func Encode(e Encoding, s string) ([]byte, error) {
	switch e {
	case Latin1:
		out, err := latin1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, id3err.UnsupportedFeatureErr("string is not representable in Latin-1")
		}
		return out, nil
	case UTF8:
		return []byte(s), nil
	case UTF16:
		body, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, id3err.ParsingErr("string is not representable in UTF-16")
		}
		return append([]byte{0xFF, 0xFE}, body...), nil
	case UTF16BE:
		body, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, id3err.ParsingErr("string is not representable in UTF-16")
		}
		return body, nil
	default:
		return nil, id3err.ParsingErr("invalid text encoding byte")
	}
}

// IndexTerminator returns the index of the start of the first
// terminator in data for the given encoding, or -1 if none is present.
// For the UTF-16 variants the scan advances two bytes at a time and
// requires both bytes of a pair to be zero simultaneously.
func IndexTerminator(e Encoding, data []byte) int {
	if e == UTF16 || e == UTF16BE {
		limit := len(data) - len(data)%2
		for i := 0; i < limit; i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	}
	return bytes.IndexByte(data, 0x00)
}

// SplitTerminated reads one terminator-delimited field from the front
// of data and returns the decoded string plus the remainder of data
// after the terminator. It fails with a Parsing error if no terminator
// is present.
func SplitTerminated(e Encoding, data []byte) (string, []byte, error) {
	idx := IndexTerminator(e, data)
	if idx < 0 {
		return "", nil, id3err.ParsingErr("missing string terminator")
	}
	s, err := Decode(e, data[:idx])
	if err != nil {
		return "", nil, err
	}
	return s, data[idx+e.TerminatorLen():], nil
}
