// Package elf decodes ELF object file headers from an in-memory buffer.
//
// The decoder is read-only and inspection-only: it validates the
// identification block, decodes the primary header, and decodes the
// program header and section header tables. It does not interpret symbols,
// relocations or dynamic entries.
//
// # Decoding
//
//	data, _ := os.ReadFile("/bin/true")
//	f, err := elf.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or read and decode in one step:
//
//	f, err := elf.Open("/bin/true")
//
// Both 32-bit and 64-bit files are supported. Integers are read in the byte
// order declared by the identification block. Address-width fields of
// 32-bit files are widened to uint64, so callers never need to branch on
// the class; the Class tag on each record says which layout it came from.
//
// # Validation
//
// Decoding fails fast. The first violated invariant aborts the decode and
// no partial File is returned:
//
//   - the magic prefix, class, data encoding and version are checked first
//   - the buffer must hold the fixed header for the declared class
//   - every table record must lie within the buffer
//   - every segment and every section that occupies file bytes must lie
//     within the buffer
//
// Errors are *errors.Error values and match the Err* sentinels of this
// package under errors.Is:
//
//	if errors.Is(err, elf.ErrUnsupportedClass) { ... }
//
// # Names
//
// Section names are resolved on demand through the section name string
// table selected by Header.ShStrNdx:
//
//	for i := range f.Sections {
//	    name, _ := f.SectionName(i)
//	    fmt.Println(i, name, f.Sections[i].Type, f.Sections[i].Flags)
//	}
//
// Resolution never fails the decode; unresolvable names report false.
//
// # Labels
//
// Enumerated fields are typed (Type, Machine, OSABI, SegmentType,
// SectionType) and flag masks are typed (SegmentFlag, SectionFlag). Their
// String methods are total and return "Unknown" for unrecognized values.
//
// A decoded File is immutable and safe for concurrent readers.
package elf
