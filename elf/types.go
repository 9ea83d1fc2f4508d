package elf

import (
	"encoding/binary"
	"fmt"
)

// Class is the address width of the file (EI_CLASS).
type Class uint8

const (
	Class32 Class = 1 // 32-bit objects
	Class64 Class = 2 // 64-bit objects
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return "Unknown"
	}
}

// WordSize returns the width in bytes of addresses and offsets.
func (c Class) WordSize() int {
	if c == Class64 {
		return 8
	}
	return 4
}

// Data is the byte order of the file (EI_DATA).
type Data uint8

const (
	DataLSB Data = 1 // two's complement, little-endian
	DataMSB Data = 2 // two's complement, big-endian
)

func (d Data) String() string {
	switch d {
	case DataLSB:
		return "Little Endian"
	case DataMSB:
		return "Big Endian"
	default:
		return "Unknown"
	}
}

// ByteOrder returns the byte order the data encoding declares.
func (d Data) ByteOrder() binary.ByteOrder {
	if d == DataMSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Ident is the decoded identification block.
type Ident struct {
	Magic      [4]byte
	Class      Class
	Data       Data
	Version    uint8
	OSABI      OSABI
	ABIVersion uint8
	Pad        [IdentSize - identPad]byte
}

// Header is the primary file header. Address-width fields are widened to
// 64 bits whatever the class.
type Header struct {
	Class     Class
	Type      Type
	Machine   Machine
	Version   uint32
	Entry     uint64
	PhOff     uint64
	ShOff     uint64
	Flags     uint32
	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16
}

// Is64 reports whether the header was decoded from the 64-bit layout.
func (h Header) Is64() bool {
	return h.Class == Class64
}

// ProgramHeader describes one segment. The Class tag records which on-disk
// layout it came from; all fields are widened to 64 bits.
type ProgramHeader struct {
	Class  Class
	Type   SegmentType
	Flags  SegmentFlag
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// Is64 reports whether the entry was decoded from the 64-bit layout.
func (p ProgramHeader) Is64() bool {
	return p.Class == Class64
}

// SectionHeader describes one section. Flags keep their full 64-bit value
// for ELF64 files.
type SectionHeader struct {
	Class     Class
	Name      uint32 // offset into the section name string table
	Type      SectionType
	Flags     SectionFlag
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// Is64 reports whether the entry was decoded from the 64-bit layout.
func (s SectionHeader) Is64() bool {
	return s.Class == Class64
}

// FileBytes returns the number of bytes the section occupies in the file.
func (s SectionHeader) FileBytes() uint64 {
	if s.Type == SectionNoBits {
		return 0
	}
	return s.Size
}

// File is a decoded object file. It owns the raw buffer it was decoded
// from and is never modified after Decode returns.
type File struct {
	Ident    Ident
	Header   Header
	Progs    []ProgramHeader
	Sections []SectionHeader
	raw      []byte
}

// Raw returns the buffer the file was decoded from. Callers must not modify it.
func (f *File) Raw() []byte {
	return f.raw
}

// Size returns the length of the raw buffer.
func (f *File) Size() int {
	return len(f.raw)
}

func (f *File) String() string {
	return fmt.Sprintf("%s %s %s (%d segments, %d sections)",
		f.Ident.Class, f.Header.Type, f.Header.Machine, len(f.Progs), len(f.Sections))
}
