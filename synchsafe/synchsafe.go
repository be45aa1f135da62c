// Package synchsafe implements the ID3v2 synchsafe integer encoding and
// the unsynchronisation byte-stuffing scheme (spec component A).
//
// Grounded on original_source/src/unsynch.rs: the bit-twiddling form of
// EncodeUint32/DecodeUint32 is carried over directly, the streaming
// Reader mirrors its discard-next-null-byte state machine, and
// EncodeBuffer generalizes its buffer-insert loop to the fuller "insert
// after 0xFF when the next byte is 0x00 or has its top three bits set"
// condition the specification calls for.
package synchsafe

import "io"

// EncodeUint32 spreads the low 28 bits of n across four bytes, leaving
// the top bit of each byte clear. Behavior for n >= 2^28 is undefined;
// the caller is responsible for staying in range.
func EncodeUint32(n uint32) uint32 {
	x := n&0x7F | (n & 0xFFFFFF80 << 1)
	x = x&0x7FFF | (x & 0xFFFF8000 << 1)
	x = x&0x7FFFFF | (x & 0xFF800000 << 1)
	return x
}

// DecodeUint32 is the inverse of EncodeUint32. It never rejects input;
// the top bit of each byte is not masked off, so a byte with that bit
// set decodes to a value in which it overlaps a neighbouring bit.
func DecodeUint32(n uint32) uint32 {
	return n&0xFF | (n&0xFF00)>>1 | (n&0xFF0000)>>2 | (n&0xFF000000)>>3
}

// EncodeBytes returns the four-byte big-endian synchsafe encoding of n.
func EncodeBytes(n uint32) [4]byte {
	e := EncodeUint32(n)
	return [4]byte{byte(e >> 24), byte(e >> 16), byte(e >> 8), byte(e)}
}

// DecodeBytes decodes a four-byte big-endian synchsafe integer. It
// panics if len(b) < 4, matching the fixed-width nature of the field.
func DecodeBytes(b []byte) uint32 {
	n := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return DecodeUint32(n)
}

// EncodeBuffer applies unsynchronisation byte-stuffing to src, returning
// a new buffer. After every 0xFF byte, a 0x00 is inserted when the byte
// that follows is 0x00 or has its top three bits set (0xEy or higher) -
// the pattern that could otherwise be mistaken for an MPEG frame sync.
func EncodeBuffer(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/8+1)
	for i, b := range src {
		out = append(out, b)
		if b != 0xFF || i+1 >= len(src) {
			continue
		}
		next := src[i+1]
		if next == 0x00 || next&0xE0 == 0xE0 {
			out = append(out, 0x00)
		}
	}
	return out
}

// DecodeBuffer strips the byte-stuffing applied by EncodeBuffer: every
// 0x00 immediately following a 0xFF is dropped.
func DecodeBuffer(src []byte) []byte {
	out := make([]byte, 0, len(src))
	skipZero := false
	for _, b := range src {
		if skipZero && b == 0x00 {
			skipZero = false
			continue
		}
		out = append(out, b)
		skipZero = b == 0xFF
	}
	return out
}

// Reader decodes an unsynchronized byte stream lazily, one byte source
// read at a time, so it is safe to wrap any io.Reader including a file.
type Reader struct {
	r           io.Reader
	buf         [1]byte
	discardZero bool
}

// NewReader wraps r so that reads from the result have unsynchronisation
// byte-stuffing removed.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader. It reads and resynchronises one underlying
// byte per output byte, which keeps the state machine simple at the
// cost of extra read(2)-equivalent calls; buffering upstream (e.g. via
// bufio.Reader) is the caller's responsibility if that matters.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(p) {
		b, err := r.readOne()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (r *Reader) readOne() (byte, error) {
	for {
		if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
			return 0, err
		}
		b := r.buf[0]
		if r.discardZero && b == 0x00 {
			r.discardZero = false
			continue
		}
		r.discardZero = b == 0xFF
		return b, nil
	}
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	return r.readOne()
}
