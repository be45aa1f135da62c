// Combined v1+v2 entry points, per spec's "combined façade" API
// surface: each tries (or affects) both tag formats, unlike the
// v2-only ReadFromFile/WriteToFile/RemoveFromFile in id3.go.
//
// Grounded on original_source/src/v1v2.rs.
package id3tag

import (
	"errors"
	"os"

	"github.com/go-audio/id3tag/id3err"
	"github.com/go-audio/id3tag/v1"
	"github.com/go-audio/id3tag/v2"
)

// FormatVersion reports which tag format(s) a file carries.
type FormatVersion int

const (
	FormatNone FormatVersion = iota
	FormatId3v1
	FormatId3v2
	FormatBoth
)

func (f FormatVersion) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatId3v1:
		return "id3v1"
	case FormatId3v2:
		return "id3v2"
	case FormatBoth:
		return "id3v1+id3v2"
	default:
		return "unknown"
	}
}

func formatVersion(hasV1, hasV2 bool) FormatVersion {
	switch {
	case hasV1 && hasV2:
		return FormatBoth
	case hasV1:
		return FormatId3v1
	case hasV2:
		return FormatId3v2
	default:
		return FormatNone
	}
}

// IsCandidatePath reports which tag format(s) are present in the file
// at path, checking both a v2 header at the start and a v1 trailer at
// the end.
func IsCandidatePath(path string) (FormatVersion, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatNone, id3err.IOErr(err)
	}
	defer f.Close()

	hasV2, err := IsCandidate(f)
	if err != nil {
		return FormatNone, err
	}
	hasV1, err := v1.IsCandidate(f)
	if err != nil {
		return FormatNone, err
	}
	return formatVersion(hasV1, hasV2), nil
}

// ReadFromPath attempts to read a v2 tag from path first; if none is
// present it falls back to a v1 trailer, converted via v2.FromV1. An
// ErrNoTag is returned only if neither is present.
func ReadFromPath(path string) (*Tag, error) {
	tag, err := ReadFromFile(path)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, id3err.ErrNoTag) {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, id3err.IOErr(err)
	}
	defer f.Close()

	v1Tag, err := v1.ReadFrom(f)
	if err != nil {
		return nil, err
	}
	return v2.FromV1(v1Tag), nil
}

// WriteToPath writes tag to path as a v2 tag (replacing any existing
// one in place) and removes any ID3v1 trailer also present: a v1 tag
// cannot represent everything a v2 tag can, so the two are never left
// both present after a combined write.
func WriteToPath(path string, tag *Tag, enc Encoder) error {
	if err := WriteToFile(path, tag, enc); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return id3err.IOErr(err)
	}
	defer f.Close()
	_, err = v1.Remove(f)
	return err
}

// RemoveFromPath strips both a v2 tag and a v1 trailer from the file
// at path, if present, and reports which were found beforehand.
func RemoveFromPath(path string) (FormatVersion, error) {
	hadV2, err := RemoveFromFile(path)
	if err != nil {
		return FormatNone, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return FormatNone, id3err.IOErr(err)
	}
	defer f.Close()
	hadV1, err := v1.Remove(f)
	if err != nil {
		return FormatNone, err
	}

	return formatVersion(hadV1, hadV2), nil
}
