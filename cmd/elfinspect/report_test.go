package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/elf-inspect/elf"
	"github.com/wippyai/elf-inspect/internal/elftest"
)

func sampleFile(t *testing.T, class elf.Class) *elf.File {
	t.Helper()
	f, err := elf.Decode(elftest.Sample(class, elf.DataLSB).Build())
	require.NoError(t, err)
	return f
}

func newTestReport(f *elf.File, wide bool) (*report, *bytes.Buffer) {
	var buf bytes.Buffer
	return &report{w: &buf, f: f, th: newTheme(&buf, false), wide: wide}, &buf
}

func TestReportBrief(t *testing.T) {
	r, buf := newTestReport(sampleFile(t, elf.Class64), false)
	r.brief()

	out := buf.String()
	assert.Contains(t, out, "ELF File Information")
	assert.Contains(t, out, "Magic: 7F 45 4C 46")
	assert.Contains(t, out, "Class: ELF64")
	assert.Contains(t, out, "Data Encoding: Little Endian")
	assert.Contains(t, out, "OS/ABI: System V")
	assert.Contains(t, out, "Type: Executable")
	assert.Contains(t, out, "Machine: x86-64")
	assert.Contains(t, out, "Entry Point: 0x401000")
	assert.Contains(t, out, "ELF Header Size: 64 bytes")
	assert.Contains(t, out, "Program Header Entries: 2")
	assert.Contains(t, out, "Section Header Entries: 5")
	assert.Contains(t, out, "Section Header String Table Index: 4")
}

func TestReportPrograms(t *testing.T) {
	r, buf := newTestReport(sampleFile(t, elf.Class32), false)
	r.programs()

	out := buf.String()
	assert.Contains(t, out, "Program Headers")
	assert.Contains(t, out, "PHDR")
	assert.Contains(t, out, "LOAD")
	assert.Contains(t, out, "X-R")
	assert.Contains(t, out, "0x0000000000400000")
	assert.Contains(t, out, "Alignment")
}

func TestReportNoPrograms(t *testing.T) {
	img := elftest.Sample(elf.Class64, elf.DataLSB)
	img.Progs = nil
	f, err := elf.Decode(img.Build())
	require.NoError(t, err)

	r, buf := newTestReport(f, false)
	r.programs()
	assert.Equal(t, "There are no program headers in this file.\n", buf.String())
}

func TestReportSections(t *testing.T) {
	r, buf := newTestReport(sampleFile(t, elf.Class64), false)
	r.sections()

	out := buf.String()
	assert.Contains(t, out, "Section Headers")
	for _, name := range []string{".text", ".data", ".bss", ".shstrtab"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "NOBITS")
	assert.Contains(t, out, "AX")
	assert.Contains(t, out, "Key to Flags:")
	assert.NotContains(t, out, "EntSize")
}

func TestReportSectionsWide(t *testing.T) {
	r, buf := newTestReport(sampleFile(t, elf.Class64), true)
	r.sections()

	out := buf.String()
	assert.Contains(t, out, "EntSize")
	assert.Contains(t, out, "64 KiB")
}

func TestReportNoSections(t *testing.T) {
	img := elftest.Sample(elf.Class64, elf.DataLSB)
	img.Sections = nil
	img.Strtab = false
	f, err := elf.Decode(img.Build())
	require.NoError(t, err)

	r, buf := newTestReport(f, false)
	r.sections()
	assert.Equal(t, "There are no sections in this file.\n", buf.String())
}
