package id3tag

import (
	"bytes"
	"os"

	"github.com/go-audio/id3tag/chunk"
	"github.com/go-audio/id3tag/id3err"
)

// LoadAiffId3 reads the v2 tag stored in the `ID3 ` FORM chunk of the
// AIFF file at path.
func LoadAiffId3(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, id3err.IOErr(err)
	}
	defer f.Close()

	tagBytes, err := chunk.ReadTagBytes(f, chunk.AIFF)
	if err != nil {
		return nil, err
	}
	return ReadFrom(bytes.NewReader(tagBytes))
}

// OverwriteAiffId3 writes tag into the `ID3 ` chunk of the AIFF file
// at path, creating the chunk (and growing the FORM root size) if one
// isn't already present.
func OverwriteAiffId3(path string, tag *Tag, enc Encoder) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return id3err.IOErr(err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := enc.EncodeTo(&buf, tag); err != nil {
		return err
	}
	return chunk.WriteTagBytes(f, chunk.AIFF, buf.Bytes())
}
