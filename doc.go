// Package elfinspect decodes and describes ELF32 and ELF64 object files.
//
// The module reads the fixed-layout metadata at the front of an ELF image
// (identification bytes, file header, program header table and section
// header table) and turns the raw numeric codes into readable labels. It
// does not load, link or relocate anything.
//
// # Architecture Overview
//
//	elfinspect/
//	├── elf/              Identification, header and table decoding plus label lookups
//	│   └── internal/
//	│       └── binary/   Bounds-checked positional reader over a byte slice
//	├── errors/           Structured error types with phase and kind
//	├── internal/elftest/ Synthetic image builder for tests
//	└── cmd/elfinspect/   Command line report and interactive browser
//
// # Quick Start
//
// Decode a file and print its sections:
//
//	f, err := elf.Open("/bin/ls")
//	if err != nil {
//	    return err
//	}
//	for i, s := range f.Sections {
//	    name, _ := f.SectionName(i)
//	    fmt.Println(i, name, s.Type, s.Flags)
//	}
//
// Every decoding failure is an *errors.Error and can be matched with
// errors.Is against the sentinels in package elf:
//
//	if errors.Is(err, elf.ErrInvalidMagic) {
//	    // not an ELF file
//	}
//
// # Byte Order
//
// Multi-byte fields are read in the encoding declared by the identification
// data byte: little-endian for 1 and big-endian for 2.
//
// # Command Line
//
//	elfinspect [-p] [-s] [-a] [-w] [-i] <file>
//
// With no selection flags only the file header summary is printed.
package elfinspect
