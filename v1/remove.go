package v1

import (
	"errors"
	"io"

	"github.com/go-audio/id3tag/id3err"
	"github.com/go-audio/id3tag/storage"
)

// Remove strips an ID3v1(.1) or ID3v1-extended ("TAG+") trailer off
// the end of file, if one is present, and reports whether it removed
// anything. Unlike v2 removal (which rewrites a byte range in place),
// a v1 trailer is always a fixed-size file suffix, so removal is a
// plain truncate rather than a storage.PlainStorage shift.
func Remove(file storage.File) (bool, error) {
	tag, err := ReadFrom(file)
	if err != nil {
		if errors.Is(err, id3err.ErrNoTag) {
			return false, nil
		}
		return false, err
	}

	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return false, id3err.IOErr(err)
	}

	newSize := size - tagSize
	if tag.GenreString != nil {
		newSize = size - totalSize
	}
	if err := file.Truncate(newSize); err != nil {
		return false, id3err.IOErr(err)
	}
	return true, nil
}
