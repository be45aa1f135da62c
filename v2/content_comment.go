package v2

import (
	"github.com/go-audio/id3tag/enc"
)

func decodeComment(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	langRaw, err := c.fixed(3)
	if err != nil {
		return nil, err
	}
	lang, err := enc.Decode(enc.Latin1, langRaw)
	if err != nil {
		return nil, err
	}
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	text, err := c.encToEnd(e)
	if err != nil {
		return nil, err
	}
	return Comment{Lang: lang, Description: desc, Text: text}, nil
}

func encodeComment(cm Comment, e enc.Encoding) ([]byte, error) {
	lang, err := enc.Encode(enc.Latin1, padLang(cm.Lang))
	if err != nil {
		return nil, err
	}
	desc, err := enc.Encode(e, cm.Description)
	if err != nil {
		return nil, err
	}
	text, err := enc.Encode(e, cm.Text)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, lang...)
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, text...)
	return out, nil
}

func decodeLyrics(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	langRaw, err := c.fixed(3)
	if err != nil {
		return nil, err
	}
	lang, err := enc.Decode(enc.Latin1, langRaw)
	if err != nil {
		return nil, err
	}
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	text, err := c.encToEnd(e)
	if err != nil {
		return nil, err
	}
	return Lyrics{Lang: lang, Description: desc, Text: text}, nil
}

func encodeLyrics(l Lyrics, e enc.Encoding) ([]byte, error) {
	lang, err := enc.Encode(enc.Latin1, padLang(l.Lang))
	if err != nil {
		return nil, err
	}
	desc, err := enc.Encode(e, l.Description)
	if err != nil {
		return nil, err
	}
	text, err := enc.Encode(e, l.Text)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, lang...)
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, text...)
	return out, nil
}

// decodeSynchronisedLyrics implements the SYLT grammar: after the fixed
// header fields, a repeated (terminated text, u32 BE timestamp) list
// runs to the end of the frame.
func decodeSynchronisedLyrics(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	langRaw, err := c.fixed(3)
	if err != nil {
		return nil, err
	}
	lang, err := enc.Decode(enc.Latin1, langRaw)
	if err != nil {
		return nil, err
	}
	tsFormat, err := c.byte()
	if err != nil {
		return nil, err
	}
	contentType, err := c.byte()
	if err != nil {
		return nil, err
	}
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}

	var entries []SyncedLyricsEntry
	for !c.empty() {
		text, err := c.encTerminated(e)
		if err != nil {
			return nil, err
		}
		ts, err := c.u32be()
		if err != nil {
			return nil, err
		}
		entries = append(entries, SyncedLyricsEntry{Timestamp: ts, Text: text})
	}

	return SynchronisedLyrics{
		Lang:            lang,
		TimestampFormat: tsFormat,
		ContentType:     contentType,
		Description:     desc,
		Entries:         entries,
	}, nil
}

func encodeSynchronisedLyrics(s SynchronisedLyrics, e enc.Encoding) ([]byte, error) {
	lang, err := enc.Encode(enc.Latin1, padLang(s.Lang))
	if err != nil {
		return nil, err
	}
	desc, err := enc.Encode(e, s.Description)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, lang...)
	out = append(out, s.TimestampFormat, s.ContentType)
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	for _, entry := range s.Entries {
		text, err := enc.Encode(e, entry.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, text...)
		out = append(out, make([]byte, e.TerminatorLen())...)
		out = append(out, byte(entry.Timestamp>>24), byte(entry.Timestamp>>16), byte(entry.Timestamp>>8), byte(entry.Timestamp))
	}
	return out, nil
}

// padLang truncates/pads a language code to exactly 3 bytes; malformed
// input is clamped rather than rejected since lang is informational.
func padLang(lang string) string {
	if len(lang) >= 3 {
		return lang[:3]
	}
	return lang + "\x00\x00\x00"[:3-len(lang)]
}
