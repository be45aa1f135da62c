package v2

import (
	"io"

	"github.com/go-audio/id3tag/id3err"
)

// IsCandidate reports whether r, a seekable reader, has the three-byte
// "ID3" magic at its current position. The position is restored before
// returning, so a caller can probe before committing to ReadFrom — the
// same non-consuming pattern v1.IsCandidate uses for its trailer check.
func IsCandidate(r io.ReadSeeker) (bool, error) {
	initial, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, id3err.IOErr(err)
	}
	defer r.Seek(initial, io.SeekStart)

	var buf [3]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil && n < 3 {
		return false, nil
	}
	return buf == [3]byte{'I', 'D', '3'}, nil
}
