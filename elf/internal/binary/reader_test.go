package binary

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestReaderFixedWidthLittleEndian(t *testing.T) {
	data := []byte{
		0x01,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	r := NewReader(data, binary.LittleEndian, 8)

	if got := r.U8(); got != 0x01 {
		t.Errorf("U8: got 0x%x, want 0x01", got)
	}
	if got := r.U16(); got != 0x0102 {
		t.Errorf("U16: got 0x%x, want 0x0102", got)
	}
	if got := r.U32(); got != 0x01020304 {
		t.Errorf("U32: got 0x%x, want 0x01020304", got)
	}
	if got := r.U64(); got != 0x0102030405060708 {
		t.Errorf("U64: got 0x%x, want 0x0102030405060708", got)
	}
	if r.Position() != len(data) {
		t.Errorf("position: got %d, want %d", r.Position(), len(data))
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestReaderBigEndian(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04}, binary.BigEndian, 4)
	if got := r.U32(); got != 0x01020304 {
		t.Errorf("U32: got 0x%x, want 0x01020304", got)
	}
}

func TestReaderWord(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		word int
		want uint64
		pos  int
	}{
		{"word4", []byte{0xff, 0xff, 0xff, 0xff, 0xaa}, 4, math.MaxUint32, 4},
		{"word8", []byte{1, 0, 0, 0, 1, 0, 0, 0}, 8, 0x0000000100000001, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data, binary.LittleEndian, tt.word)
			if got := r.Word(); got != tt.want {
				t.Errorf("Word: got 0x%x, want 0x%x", got, tt.want)
			}
			if r.Position() != tt.pos {
				t.Errorf("position: got %d, want %d", r.Position(), tt.pos)
			}
		})
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03}, binary.LittleEndian, 4)

	if got := r.U32(); got != 0 {
		t.Errorf("short U32: got %d, want 0", got)
	}
	if !errors.Is(r.Err(), ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", r.Err())
	}
	if got := r.U8(); got != 0 {
		t.Errorf("U8 after failure: got %d, want 0", got)
	}
	if r.Position() != 0 {
		t.Errorf("position after failure: got %d, want 0", r.Position())
	}

	if err := r.Reset(1); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if r.Err() != nil {
		t.Errorf("Reset should clear error, got %v", r.Err())
	}
	if got := r.U16(); got != 0x0302 {
		t.Errorf("U16 after reset: got 0x%x, want 0x0302", got)
	}
}

func TestReaderResetOutOfRange(t *testing.T) {
	r := NewReader([]byte{0x01}, binary.LittleEndian, 4)
	if err := r.Reset(2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
	if err := r.Reset(-1); err == nil {
		t.Error("expected error for negative position")
	}
}

func TestReaderBytesAndSkip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := NewReader(data, binary.LittleEndian, 4)

	r.Skip(1)
	got := r.Bytes(3)
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("Bytes: got %v, want [2 3 4]", got)
	}
	if r.Remaining() != 1 {
		t.Errorf("Remaining: got %d, want 1", r.Remaining())
	}
	if r.Bytes(2) != nil {
		t.Error("expected nil for over-read")
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		off, n uint64
		length int
		want   bool
	}{
		{0, 0, 0, true},
		{0, 16, 16, true},
		{1, 16, 16, false},
		{16, 0, 16, true},
		{17, 0, 16, false},
		{math.MaxUint64, 2, 16, false},
		{2, math.MaxUint64, 16, false},
	}

	for _, tt := range tests {
		if got := Fits(tt.off, tt.n, tt.length); got != tt.want {
			t.Errorf("Fits(%d, %d, %d): got %v, want %v", tt.off, tt.n, tt.length, got, tt.want)
		}
	}
}
