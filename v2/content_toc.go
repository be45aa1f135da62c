package v2

import (
	"encoding/binary"

	"github.com/go-audio/id3tag/enc"
)

func decodeChapter(data []byte, version Version, depth int) (Content, error) {
	c := newCursor(data)
	elementID, err := c.latin1Terminated()
	if err != nil {
		return nil, err
	}
	start, err := c.u32be()
	if err != nil {
		return nil, err
	}
	end, err := c.u32be()
	if err != nil {
		return nil, err
	}
	startOffset, err := c.u32be()
	if err != nil {
		return nil, err
	}
	endOffset, err := c.u32be()
	if err != nil {
		return nil, err
	}
	nested, err := decodeFrameStream(c.toEnd(), version, depth)
	if err != nil {
		return nil, err
	}
	return Chapter{
		ElementID:   elementID,
		StartTime:   start,
		EndTime:     end,
		StartOffset: startOffset,
		EndOffset:   endOffset,
		Nested:      nested,
	}, nil
}

func encodeChapter(ch Chapter, version Version) ([]byte, error) {
	elementID, err := enc.Encode(enc.Latin1, ch.ElementID)
	if err != nil {
		return nil, err
	}
	nested, err := encodeFrameStream(ch.Nested, version)
	if err != nil {
		return nil, err
	}
	out := append([]byte{}, elementID...)
	out = append(out, 0)
	var fixed [16]byte
	binary.BigEndian.PutUint32(fixed[0:4], ch.StartTime)
	binary.BigEndian.PutUint32(fixed[4:8], ch.EndTime)
	binary.BigEndian.PutUint32(fixed[8:12], ch.StartOffset)
	binary.BigEndian.PutUint32(fixed[12:16], ch.EndOffset)
	out = append(out, fixed[:]...)
	out = append(out, nested...)
	return out, nil
}

func decodeTableOfContents(data []byte, version Version, depth int) (Content, error) {
	c := newCursor(data)
	elementID, err := c.latin1Terminated()
	if err != nil {
		return nil, err
	}
	flags, err := c.byte()
	if err != nil {
		return nil, err
	}
	count, err := c.byte()
	if err != nil {
		return nil, err
	}
	childIDs := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		id, err := c.latin1Terminated()
		if err != nil {
			return nil, err
		}
		childIDs = append(childIDs, id)
	}
	nested, err := decodeFrameStream(c.toEnd(), version, depth)
	if err != nil {
		return nil, err
	}
	return TableOfContents{
		ElementID: elementID,
		Ordered:   flags&0x01 != 0,
		TopLevel:  flags&0x02 != 0,
		ChildIDs:  childIDs,
		Nested:    nested,
	}, nil
}

func encodeTableOfContents(toc TableOfContents, version Version) ([]byte, error) {
	elementID, err := enc.Encode(enc.Latin1, toc.ElementID)
	if err != nil {
		return nil, err
	}
	var flags byte
	if toc.Ordered {
		flags |= 0x01
	}
	if toc.TopLevel {
		flags |= 0x02
	}
	nested, err := encodeFrameStream(toc.Nested, version)
	if err != nil {
		return nil, err
	}

	out := append([]byte{}, elementID...)
	out = append(out, 0)
	out = append(out, flags, byte(len(toc.ChildIDs)))
	for _, id := range toc.ChildIDs {
		encodedID, err := enc.Encode(enc.Latin1, id)
		if err != nil {
			return nil, err
		}
		out = append(out, encodedID...)
		out = append(out, 0)
	}
	out = append(out, nested...)
	return out, nil
}
