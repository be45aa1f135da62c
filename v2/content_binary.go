package v2

import (
	"github.com/go-audio/id3tag/enc"
	"github.com/go-audio/id3tag/id3err"
)

func decodePicture(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	mime, err := c.latin1Terminated()
	if err != nil {
		return nil, err
	}
	ptype, err := c.byte()
	if err != nil {
		return nil, err
	}
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	return Picture{
		MIMEType:    mime,
		PictureType: PictureType(ptype),
		Description: desc,
		Data:        c.toEnd(),
	}, nil
}

func encodePicture(p Picture, e enc.Encoding) ([]byte, error) {
	mime, err := enc.Encode(enc.Latin1, p.MIMEType)
	if err != nil {
		return nil, err
	}
	desc, err := enc.Encode(e, p.Description)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, mime...)
	out = append(out, 0)
	out = append(out, byte(p.PictureType))
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, p.Data...)
	return out, nil
}

// decodePICv22 implements the v2.2 "PIC" grammar: a 3-byte format code
// instead of a free-form MIME string.
func decodePICv22(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	format, err := c.fixed(3)
	if err != nil {
		return nil, err
	}
	ptype, err := c.byte()
	if err != nil {
		return nil, err
	}
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	mime, err := mimeFromPICFormat(format)
	if err != nil {
		return nil, err
	}
	return Picture{
		MIMEType:    mime,
		PictureType: PictureType(ptype),
		Description: desc,
		Data:        c.toEnd(),
	}, nil
}

func mimeFromPICFormat(format []byte) (string, error) {
	switch string(format) {
	case "JPG":
		return "image/jpeg", nil
	case "PNG":
		return "image/png", nil
	default:
		return "", id3err.UnsupportedFeatureErr("unsupported PIC format code: " + string(format))
	}
}

// picFormatFromMIME is the inverse used when downgrading an APIC
// picture to the v2.2 PIC frame on encode.
func picFormatFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg":
		return "JPG", nil
	case "image/png":
		return "PNG", nil
	default:
		return "", id3err.UnsupportedFeatureErr("cannot downgrade MIME type to v2.2 PIC: " + mime)
	}
}

func encodePICv22(p Picture, e enc.Encoding) ([]byte, error) {
	format, err := picFormatFromMIME(p.MIMEType)
	if err != nil {
		return nil, err
	}
	desc, err := enc.Encode(e, p.Description)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, format...)
	out = append(out, byte(p.PictureType))
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, p.Data...)
	return out, nil
}

func decodeEncapsulatedObject(data []byte) (Content, error) {
	c := newCursor(data)
	eb, err := c.byte()
	if err != nil {
		return nil, err
	}
	e := enc.Encoding(eb)
	mime, err := c.latin1Terminated()
	if err != nil {
		return nil, err
	}
	filename, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	desc, err := c.encTerminated(e)
	if err != nil {
		return nil, err
	}
	return EncapsulatedObject{
		MIMEType:    mime,
		Filename:    filename,
		Description: desc,
		Data:        c.toEnd(),
	}, nil
}

func encodeEncapsulatedObject(g EncapsulatedObject, e enc.Encoding) ([]byte, error) {
	mime, err := enc.Encode(enc.Latin1, g.MIMEType)
	if err != nil {
		return nil, err
	}
	filename, err := enc.Encode(e, g.Filename)
	if err != nil {
		return nil, err
	}
	desc, err := enc.Encode(e, g.Description)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(e)}
	out = append(out, mime...)
	out = append(out, 0)
	out = append(out, filename...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, desc...)
	out = append(out, make([]byte, e.TerminatorLen())...)
	out = append(out, g.Data...)
	return out, nil
}

// decodePopularimeter implements POPM's variable-width counter (1 to 8
// bytes, big-endian, widened to uint64), per spec §8 S(POPM).
func decodePopularimeter(data []byte) (Content, error) {
	c := newCursor(data)
	user, err := c.latin1Terminated()
	if err != nil {
		return nil, err
	}
	rating, err := c.byte()
	if err != nil {
		return nil, err
	}
	counterBytes := c.toEnd()
	if len(counterBytes) == 0 || len(counterBytes) > 8 {
		return nil, id3err.ParsingErr("POPM counter must be 1 to 8 bytes")
	}
	var counter uint64
	for _, b := range counterBytes {
		counter = counter<<8 | uint64(b)
	}
	return Popularimeter{User: user, Rating: rating, Counter: counter}, nil
}

func encodePopularimeter(p Popularimeter) ([]byte, error) {
	user, err := enc.Encode(enc.Latin1, p.User)
	if err != nil {
		return nil, err
	}
	out := append([]byte{}, user...)
	out = append(out, 0)
	out = append(out, p.Rating)
	out = append(out, counterBytes(p.Counter)...)
	return out, nil
}

// counterBytes emits the smallest big-endian width (at least 1 byte)
// that represents n, since the encoder controls its own output width.
func counterBytes(n uint64) []byte {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	start := 0
	for start < 7 && buf[start] == 0 {
		start++
	}
	return buf[start:]
}

func decodeUniqueFileIdentifier(data []byte) (Content, error) {
	c := newCursor(data)
	owner, err := c.latin1Terminated()
	if err != nil {
		return nil, err
	}
	return UniqueFileIdentifier{OwnerIdentifier: owner, Identifier: c.toEnd()}, nil
}

func encodeUniqueFileIdentifier(u UniqueFileIdentifier) ([]byte, error) {
	owner, err := enc.Encode(enc.Latin1, u.OwnerIdentifier)
	if err != nil {
		return nil, err
	}
	out := append([]byte{}, owner...)
	out = append(out, 0)
	out = append(out, u.Identifier...)
	return out, nil
}
