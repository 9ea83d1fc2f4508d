// Package errors provides structured error types for the ELF decoder.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending value, a location path (for example
// "program_headers.3") and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTable, errors.KindOutOfBounds).
//		Path("section_headers", "7").
//		Value(7).
//		Detail("section data exceeds file range").
//		Build()
//
// Or use convenience constructors for the identification checks:
//
//	err := errors.UnsupportedClass(3)
//	err := errors.TableOverrun("program header", 2, 0x40, 56, 64)
//
// Two errors match under errors.Is when Phase and Kind agree, so callers can
// compare against a template error without caring about the value:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseIdent, Kind: errors.KindUnsupportedClass}) { ... }
package errors
