package id3tag

import (
	"bytes"
	"io"
	"os"

	"github.com/go-audio/id3tag/chunk"
	"github.com/go-audio/id3tag/id3err"
)

// LoadWavId3 reads the v2 tag stored in r's `ID3 ` RIFF chunk. r must
// be a WAV file (RIFF/.../WAVE) positioned at its start.
func LoadWavId3(r io.ReadSeeker) (*Tag, error) {
	tagBytes, err := chunk.ReadTagBytes(r, chunk.WAV)
	if err != nil {
		return nil, err
	}
	return ReadFrom(bytes.NewReader(tagBytes))
}

// WriteWavId3 writes tag into the `ID3 ` chunk of the WAV file at
// path, creating the chunk (and growing the RIFF root size) if one
// isn't already present.
func WriteWavId3(path string, tag *Tag, enc Encoder) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return id3err.IOErr(err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := enc.EncodeTo(&buf, tag); err != nil {
		return err
	}
	return chunk.WriteTagBytes(f, chunk.WAV, buf.Bytes())
}
