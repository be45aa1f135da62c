package v2

import (
	"strings"

	"github.com/go-audio/id3tag/enc"
)

// Values splits a Text's raw value on NUL, the v2.4 multi-value
// separator described in spec §4.C's "T???" row. Pre-2.4 text never
// contains an embedded NUL, so this is safe to call unconditionally.
func (t Text) Values() []string {
	if t.Value == "" {
		return nil
	}
	return strings.Split(t.Value, "\x00")
}

func decodeText(data []byte) (Content, error) {
	c := newCursor(data)
	e, err := c.byte()
	if err != nil {
		return nil, err
	}
	s, err := c.encToEnd(enc.Encoding(e))
	if err != nil {
		return nil, err
	}
	return Text{Value: s}, nil
}

func encodeText(t Text, e enc.Encoding) ([]byte, error) {
	body, err := enc.Encode(e, t.Value)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(e)}, body...), nil
}

func decodeExtendedText(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	value, err := c.encToEnd(e)
	if err != nil {
		return nil, err
	}
	return ExtendedText{Description: desc, Value: value}, nil
}

func encodeExtendedText(t ExtendedText, e enc.Encoding) ([]byte, error) {
	desc, err := enc.Encode(e, t.Description)
	if err != nil {
		return nil, err
	}
	value, err := enc.Encode(e, t.Value)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, value...)
	return out, nil
}

// decodeLink handles the "W???" rows: a bare Latin-1 URL running to
// the end of the frame, with no leading encoding byte.
func decodeLink(data []byte) (Content, error) {
	s, err := enc.Decode(enc.Latin1, data)
	if err != nil {
		return nil, err
	}
	return Link{URL: s}, nil
}

func encodeLink(l Link) ([]byte, error) {
	return enc.Encode(enc.Latin1, l.URL)
}

func decodeExtendedLink(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	link, err := enc.Decode(enc.Latin1, c.toEnd())
	if err != nil {
		return nil, err
	}
	return ExtendedLink{Description: desc, Link: link}, nil
}

func encodeExtendedLink(l ExtendedLink, e enc.Encoding) ([]byte, error) {
	desc, err := enc.Encode(e, l.Description)
	if err != nil {
		return nil, err
	}
	link, err := enc.Encode(enc.Latin1, l.Link)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, link...)
	return out, nil
}
