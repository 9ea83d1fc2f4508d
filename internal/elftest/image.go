// Package elftest builds synthetic ELF images for tests.
package elftest

import (
	"encoding/binary"

	"github.com/wippyai/elf-inspect/elf"
)

// Section is one section of a synthetic image. Payload bytes are laid out
// after the program header table.
type Section struct {
	Name    string
	NameOff uint32 // used when the image does not generate .shstrtab
	Type    elf.SectionType
	Flags   elf.SectionFlag
	Addr    uint64
	Payload []byte
	Size    uint64 // overrides len(Payload) when non-zero
	Link    uint32
	Info    uint32
	Align   uint64
	Entsize uint64
}

// Image describes a synthetic ELF file. Zero Class and Data default to
// ELF64 little-endian.
type Image struct {
	Class    elf.Class
	Data     elf.Data
	OSABI    elf.OSABI
	Type     elf.Type
	Machine  elf.Machine
	Entry    uint64
	Flags    uint32
	Progs    []elf.ProgramHeader
	Sections []Section
	Strtab   bool   // append a .shstrtab and name sections through it
	ShStrNdx uint16 // used when Strtab is false
}

type writer struct {
	order binary.AppendByteOrder
	class elf.Class
	buf   []byte
}

func (w *writer) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *writer) u16(v uint16) { w.buf = w.order.AppendUint16(w.buf, v) }
func (w *writer) u32(v uint32) { w.buf = w.order.AppendUint32(w.buf, v) }
func (w *writer) u64(v uint64) { w.buf = w.order.AppendUint64(w.buf, v) }

func (w *writer) word(v uint64) {
	if w.class == elf.Class64 {
		w.u64(v)
		return
	}
	w.u32(uint32(v))
}

// Sizes returns the header, program header and section header record sizes
// for the image's class.
func (img Image) Sizes() (eh, ph, sh int) {
	if img.Class == elf.Class32 {
		return 52, 32, 40
	}
	return 64, 56, 64
}

// Build lays out header, program headers, section payloads and the section
// header table, in that order.
func (img Image) Build() []byte {
	if img.Class == 0 {
		img.Class = elf.Class64
	}
	if img.Data == 0 {
		img.Data = elf.DataLSB
	}
	w := &writer{order: binary.LittleEndian, class: img.Class}
	if img.Data == elf.DataMSB {
		w.order = binary.BigEndian
	}

	sections := append([]Section(nil), img.Sections...)
	shstrndx := img.ShStrNdx
	if img.Strtab {
		strtab := []byte{0}
		for i := range sections {
			if sections[i].Name == "" {
				continue
			}
			sections[i].NameOff = uint32(len(strtab))
			strtab = append(strtab, sections[i].Name...)
			strtab = append(strtab, 0)
		}
		sections = append(sections, Section{NameOff: uint32(len(strtab)), Type: elf.SectionStrTab})
		strtab = append(strtab, ".shstrtab\x00"...)
		sections[len(sections)-1].Payload = strtab
		shstrndx = uint16(len(sections) - 1)
	}

	eh, ph, sh := img.Sizes()
	var phoff, shoff uint64
	if len(img.Progs) > 0 {
		phoff = uint64(eh)
	}
	cursor := uint64(eh + len(img.Progs)*ph)
	offsets := make([]uint64, len(sections))
	for i, s := range sections {
		if len(s.Payload) > 0 {
			offsets[i] = cursor
			cursor += uint64(len(s.Payload))
		}
	}
	if len(sections) > 0 {
		shoff = cursor
	}

	w.buf = append(w.buf, elf.Magic[:]...)
	w.u8(uint8(img.Class))
	w.u8(uint8(img.Data))
	w.u8(elf.IdentVersion)
	w.u8(uint8(img.OSABI))
	w.buf = append(w.buf, make([]byte, 8)...)

	w.u16(uint16(img.Type))
	w.u16(uint16(img.Machine))
	w.u32(1)
	w.word(img.Entry)
	w.word(phoff)
	w.word(shoff)
	w.u32(img.Flags)
	w.u16(uint16(eh))
	w.u16(uint16(ph))
	w.u16(uint16(len(img.Progs)))
	w.u16(uint16(sh))
	w.u16(uint16(len(sections)))
	w.u16(shstrndx)

	for _, p := range img.Progs {
		w.u32(uint32(p.Type))
		if img.Class == elf.Class64 {
			w.u32(uint32(p.Flags))
		}
		w.word(p.Offset)
		w.word(p.Vaddr)
		w.word(p.Paddr)
		w.word(p.Filesz)
		w.word(p.Memsz)
		if img.Class == elf.Class32 {
			w.u32(uint32(p.Flags))
		}
		w.word(p.Align)
	}

	for _, s := range sections {
		w.buf = append(w.buf, s.Payload...)
	}

	for i, s := range sections {
		size := s.Size
		if size == 0 {
			size = uint64(len(s.Payload))
		}
		w.u32(s.NameOff)
		w.u32(uint32(s.Type))
		w.word(uint64(s.Flags))
		w.word(s.Addr)
		w.word(offsets[i])
		w.word(size)
		w.u32(s.Link)
		w.u32(s.Info)
		w.word(s.Align)
		w.word(s.Entsize)
	}

	return w.buf
}

// Sample is a small executable with two segments and a handful of named
// sections: null, .text, .data, .bss (NOBITS) and a generated .shstrtab.
func Sample(class elf.Class, data elf.Data) Image {
	eh, _, _ := Image{Class: class}.Sizes()
	return Image{
		Class:   class,
		Data:    data,
		Type:    elf.TypeExec,
		Machine: elf.MachineX86_64,
		Entry:   0x401000,
		Progs: []elf.ProgramHeader{
			{Type: elf.SegmentPhdr, Flags: elf.SegmentFlagR, Offset: uint64(eh), Vaddr: 0x400040, Paddr: 0x400040, Align: 8},
			{Type: elf.SegmentLoad, Flags: elf.SegmentFlagR | elf.SegmentFlagX, Offset: 0, Vaddr: 0x400000, Paddr: 0x400000, Filesz: uint64(eh), Memsz: uint64(eh), Align: 0x1000},
		},
		Sections: []Section{
			{},
			{Name: ".text", Type: elf.SectionProgBits, Flags: elf.SectionFlagAlloc | elf.SectionFlagExecInstr, Addr: 0x401000, Payload: []byte{0xc3}, Align: 16},
			{Name: ".data", Type: elf.SectionProgBits, Flags: elf.SectionFlagWrite | elf.SectionFlagAlloc, Addr: 0x402000, Payload: []byte{1, 2, 3, 4}, Align: 4},
			{Name: ".bss", Type: elf.SectionNoBits, Flags: elf.SectionFlagWrite | elf.SectionFlagAlloc, Addr: 0x403000, Size: 0x10000, Align: 32},
		},
		Strtab: true,
	}
}
