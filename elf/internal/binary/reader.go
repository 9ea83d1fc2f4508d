package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read runs past the end of the buffer.
var ErrShortBuffer = errors.New("short buffer")

// Reader is a positional cursor over an in-memory buffer that reads
// fixed-width integers in a given byte order. Word reads are sized by the
// address width the reader was created with and always widen to uint64.
//
// The first failed read is sticky: later reads return zero values and
// Err reports the original failure.
type Reader struct {
	err   error
	order binary.ByteOrder
	buf   []byte
	pos   int
	word  int
}

// NewReader creates a Reader over buf. wordSize must be 4 or 8.
func NewReader(buf []byte, order binary.ByteOrder, wordSize int) *Reader {
	return &Reader{buf: buf, order: order, word: wordSize}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// WordSize returns the width in bytes of Word reads.
func (r *Reader) WordSize() int {
	return r.word
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Reset seeks to the given position and clears any sticky error.
func (r *Reader) Reset(pos int) error {
	if pos < 0 || pos > len(r.buf) {
		return fmt.Errorf("reset to %d: %w", pos, ErrShortBuffer)
	}
	r.pos = pos
	r.err = nil
	return nil
}

// next returns the next n bytes and advances, or nil once the reader has failed.
func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.Remaining() {
		r.err = r.wrapError(fmt.Errorf("need %d bytes, have %d: %w", n, r.Remaining(), ErrShortBuffer))
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Bytes returns the next n bytes. The slice aliases the underlying buffer.
func (r *Reader) Bytes(n int) []byte {
	return r.next(n)
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) {
	r.next(n)
}

// U8 reads a single byte.
func (r *Reader) U8() uint8 {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// U16 reads a 2-byte unsigned integer.
func (r *Reader) U16() uint16 {
	b := r.next(2)
	if b == nil {
		return 0
	}
	return r.order.Uint16(b)
}

// U32 reads a 4-byte unsigned integer.
func (r *Reader) U32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return r.order.Uint32(b)
}

// U64 reads an 8-byte unsigned integer.
func (r *Reader) U64() uint64 {
	b := r.next(8)
	if b == nil {
		return 0
	}
	return r.order.Uint64(b)
}

// Word reads an address-width integer and widens it to uint64.
func (r *Reader) Word() uint64 {
	if r.word == 4 {
		return uint64(r.U32())
	}
	return r.U64()
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}

// Fits reports whether the range [off, off+n) lies within a buffer of the
// given length, without overflowing.
func Fits(off, n uint64, length int) bool {
	l := uint64(length)
	return off <= l && n <= l-off
}
