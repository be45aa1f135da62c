// Package storage implements the in-place byte-range rewriting window
// that the root package's WriteToFile/WriteToPath (and package chunk)
// use to replace an ID3v2
// tag's bytes without rewriting the rest of the file: everything after
// the tag's region is shifted left or right as the region grows or
// shrinks.
//
// Grounded on original_source/src/storage/plain.rs's PlainStorage: the
// region-bounded reader/writer pair and the grow/shrink block-copy
// flush algorithm are carried over directly; the buffered Cursor<Vec<u8>>
// becomes a small in-package seek buffer since the standard library has
// no seekable in-memory byte buffer of its own.
package storage

import (
	"io"

	"github.com/go-audio/id3tag/id3err"
)

// BlockSize is the chunk size used when shifting file contents during
// a grow or shrink flush. 64 KiB, matching plain.rs's COPY_BUF_SIZE.
const BlockSize = 65536

// File is the subset of *os.File that PlainStorage needs: seekable
// reads and writes plus the ability to resize the underlying file.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	Truncate(size int64) error
}

// PlainStorage tracks a writable [start, end) byte region of file,
// including any trailing padding, and keeps everything after that
// region intact by moving it as the region is resized.
type PlainStorage struct {
	file       File
	start, end int64
}

// New creates a PlainStorage over the half-open region [start, end) of
// file. end may equal start for a zero-length (tag absent) region.
func New(file File, start, end int64) *PlainStorage {
	return &PlainStorage{file: file, start: start, end: end}
}

// Reader returns a reader positioned at the start of the region, bounded
// to not read past its end.
func (s *PlainStorage) Reader() (*Reader, error) {
	if _, err := s.file.Seek(s.start, io.SeekStart); err != nil {
		return nil, id3err.IOErr(err)
	}
	return &Reader{storage: s}, nil
}

// Writer returns a buffered writer over the region. Nothing is
// committed to file until Flush or Close is called.
func (s *PlainStorage) Writer() (*Writer, error) {
	if _, err := s.file.Seek(s.start, io.SeekStart); err != nil {
		return nil, id3err.IOErr(err)
	}
	return &Writer{storage: s, changed: true}, nil
}

// Reader reads sequentially within a PlainStorage's region.
type Reader struct {
	storage *PlainStorage
}

func (r *Reader) Read(buf []byte) (int, error) {
	cur, err := r.storage.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, id3err.IOErr(err)
	}
	if cur >= r.storage.end {
		return 0, io.EOF
	}
	upper := len(buf)
	if remaining := r.storage.end - cur; int64(upper) > remaining {
		upper = int(remaining)
	}
	n, err := r.storage.file.Read(buf[:upper])
	if err != nil && err != io.EOF {
		return n, id3err.IOErr(err)
	}
	return n, nil
}

// Seek interprets offsets relative to the region, not the file.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = r.storage.start + offset
	case io.SeekEnd:
		abs = r.storage.end + offset
	case io.SeekCurrent:
		cur, err := r.storage.file.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, id3err.IOErr(err)
		}
		abs = cur + offset
	}
	if abs < r.storage.start {
		return 0, id3err.InvalidInputErr("attempted to seek before the start of the region")
	}
	newAbs, err := r.storage.file.Seek(abs, io.SeekStart)
	if err != nil {
		return 0, id3err.IOErr(err)
	}
	return newAbs - r.storage.start, nil
}

// Writer buffers writes within a PlainStorage's region; Flush (or
// Close) commits the buffer, growing or shrinking the file as needed.
type Writer struct {
	storage *PlainStorage
	buf     seekBuffer
	changed bool
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	w.changed = true
	return n, err
}

func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	return w.buf.Seek(offset, whence)
}

// Flush commits the buffered content to the underlying file, resizing
// the file and shifting any trailing content as the region grows or
// shrinks.
func (w *Writer) Flush() error {
	if !w.changed {
		return nil
	}

	bufLen := int64(len(w.buf.data))
	regionLen := w.storage.end - w.storage.start

	switch {
	case bufLen > regionLen:
		if err := w.grow(bufLen, regionLen); err != nil {
			return err
		}
	case bufLen < regionLen:
		if err := w.shrink(bufLen, regionLen); err != nil {
			return err
		}
	}

	if _, err := w.storage.file.Seek(w.storage.start, io.SeekStart); err != nil {
		return id3err.IOErr(err)
	}
	if _, err := w.storage.file.Write(w.buf.data); err != nil {
		return id3err.IOErr(err)
	}
	w.changed = false
	return nil
}

// grow expands the region to fit bufLen bytes by moving the trailing
// content (everything after the old region end) further toward the
// end of the file, back to front in BlockSize chunks.
func (w *Writer) grow(bufLen, regionLen int64) error {
	oldFileEnd, err := w.storage.file.Seek(0, io.SeekEnd)
	if err != nil {
		return id3err.IOErr(err)
	}
	delta := bufLen - regionLen
	newFileEnd := oldFileEnd + delta
	oldRegionEnd := w.storage.end
	newRegionEnd := w.storage.start + bufLen

	if err := w.storage.file.Truncate(newFileEnd); err != nil {
		return id3err.IOErr(err)
	}

	rwbuf := make([]byte, BlockSize)
	for from := oldFileEnd; from > oldRegionEnd; {
		chunk := int64(len(rwbuf))
		if from-oldRegionEnd < chunk {
			chunk = from - oldRegionEnd
		}
		from -= chunk
		to := from + delta
		if err := copyBlock(w.storage.file, from, to, rwbuf[:chunk]); err != nil {
			return err
		}
	}

	w.storage.end = newRegionEnd
	return nil
}

// shrink contracts the region to fit bufLen bytes by moving the
// trailing content closer to the start of the file, front to back.
func (w *Writer) shrink(bufLen, regionLen int64) error {
	oldFileEnd, err := w.storage.file.Seek(0, io.SeekEnd)
	if err != nil {
		return id3err.IOErr(err)
	}
	oldRegionEnd := w.storage.end
	newRegionEnd := w.storage.start + bufLen
	delta := regionLen - bufLen
	newFileEnd := oldFileEnd - delta

	rwbuf := make([]byte, BlockSize)
	for from := oldRegionEnd; from < oldFileEnd; {
		chunk := int64(len(rwbuf))
		if oldFileEnd-from < chunk {
			chunk = oldFileEnd - from
		}
		to := from - delta
		if err := copyBlock(w.storage.file, from, to, rwbuf[:chunk]); err != nil {
			return err
		}
		from += chunk
	}

	if err := w.storage.file.Truncate(newFileEnd); err != nil {
		return id3err.IOErr(err)
	}
	w.storage.end = newRegionEnd
	return nil
}

func copyBlock(f File, from, to int64, buf []byte) error {
	if _, err := f.Seek(from, io.SeekStart); err != nil {
		return id3err.IOErr(err)
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return id3err.IOErr(err)
	}
	if _, err := f.Seek(to, io.SeekStart); err != nil {
		return id3err.IOErr(err)
	}
	if _, err := f.Write(buf); err != nil {
		return id3err.IOErr(err)
	}
	return nil
}

// Close flushes any buffered writes. Like plain.rs's Drop impl, a
// caller that forgets to Flush explicitly still gets a best-effort
// commit, but errors should be checked via an explicit Flush call
// when they matter.
func (w *Writer) Close() error {
	return w.Flush()
}

// seekBuffer is a minimal growable, seekable byte buffer: the Go
// standard library's bytes.Buffer has no Seek, so Writer needs
// its own, mirroring Rust's io::Cursor<Vec<u8>>.
type seekBuffer struct {
	data []byte
	pos  int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.pos:end], p)
	b.pos = end
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	}
	if abs < 0 {
		return 0, id3err.InvalidInputErr("negative seek position")
	}
	b.pos = abs
	return abs, nil
}
