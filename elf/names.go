package elf

import (
	"bytes"
	"unicode/utf8"

	"github.com/wippyai/elf-inspect/elf/internal/binary"
)

// SectionName resolves the name of section i through the section name
// string table. It reports false when either index is out of range, the
// string table lies outside the file, the name offset is past the end of
// the table, or the name is not valid UTF-8.
func (f *File) SectionName(i int) (string, bool) {
	if i < 0 || i >= len(f.Sections) {
		return "", false
	}
	strtab, ok := f.sectionBytes(int(f.Header.ShStrNdx))
	if !ok {
		return "", false
	}

	off := uint64(f.Sections[i].Name)
	if off >= uint64(len(strtab)) {
		return "", false
	}
	name := strtab[off:]
	if end := bytes.IndexByte(name, 0); end >= 0 {
		name = name[:end]
	}
	if !utf8.Valid(name) {
		return "", false
	}
	return string(name), true
}

// Names returns the resolved name of every section, in table order.
// Unresolvable names are empty.
func (f *File) Names() []string {
	names := make([]string, len(f.Sections))
	for i := range f.Sections {
		names[i], _ = f.SectionName(i)
	}
	return names
}

// SectionByName returns the index of the first section with the given name.
func (f *File) SectionByName(name string) (int, bool) {
	for i := range f.Sections {
		if n, ok := f.SectionName(i); ok && n == name {
			return i, true
		}
	}
	return -1, false
}

// SectionData returns the file bytes of section i. The slice aliases the
// raw buffer. NOBITS sections yield an empty slice.
func (f *File) SectionData(i int) ([]byte, bool) {
	if i < 0 || i >= len(f.Sections) {
		return nil, false
	}
	return f.sectionBytes(i)
}

// SegmentData returns the file bytes of segment i. The slice aliases the
// raw buffer.
func (f *File) SegmentData(i int) ([]byte, bool) {
	if i < 0 || i >= len(f.Progs) {
		return nil, false
	}
	p := f.Progs[i]
	if !binary.Fits(p.Offset, p.Filesz, len(f.raw)) {
		return nil, false
	}
	return f.raw[p.Offset : p.Offset+p.Filesz], true
}

func (f *File) sectionBytes(i int) ([]byte, bool) {
	if i < 0 || i >= len(f.Sections) {
		return nil, false
	}
	s := f.Sections[i]
	n := s.FileBytes()
	if !binary.Fits(s.Offset, n, len(f.raw)) {
		return nil, false
	}
	return f.raw[s.Offset : s.Offset+n], true
}
