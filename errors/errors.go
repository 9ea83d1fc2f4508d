package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad   Phase = "load"   // reading the file into memory
	PhaseIdent  Phase = "ident"  // identification block checks
	PhaseHeader Phase = "header" // primary header decoding
	PhaseTable  Phase = "table"  // program/section header tables
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidMagic       Kind = "invalid_magic"
	KindUnsupportedClass   Kind = "unsupported_class"
	KindUnsupportedData    Kind = "unsupported_data"
	KindUnsupportedVersion Kind = "unsupported_version"
	KindUnsupportedABI     Kind = "unsupported_abi"
	KindUnsupportedType    Kind = "unsupported_type"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindIO                 Kind = "io"
)

// Error is the structured error type used by the decoder
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path, e.g. "section_headers", "3"
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the identification checks

// InvalidMagic creates the error for a missing or short magic prefix
func InvalidMagic() *Error {
	return &Error{
		Phase:  PhaseIdent,
		Kind:   KindInvalidMagic,
		Detail: "invalid elf file",
	}
}

// UnsupportedClass creates an error for a class byte outside {1,2}
func UnsupportedClass(class byte) *Error {
	return &Error{
		Phase:  PhaseIdent,
		Kind:   KindUnsupportedClass,
		Detail: fmt.Sprintf("unsupported ELF class: %d", class),
		Value:  class,
	}
}

// UnsupportedData creates an error for a data encoding byte outside {1,2}
func UnsupportedData(data byte) *Error {
	return &Error{
		Phase:  PhaseIdent,
		Kind:   KindUnsupportedData,
		Detail: fmt.Sprintf("unsupported data format: %d", data),
		Value:  data,
	}
}

// UnsupportedVersion creates an error for an identification version other than 1
func UnsupportedVersion(version byte) *Error {
	return &Error{
		Phase:  PhaseIdent,
		Kind:   KindUnsupportedVersion,
		Detail: fmt.Sprintf("unsupported version: %d", version),
		Value:  version,
	}
}

// UnsupportedABI creates an error for a rejected OS/ABI byte.
// No decode path returns it today; OS/ABI values are open-ended.
func UnsupportedABI(abi byte) *Error {
	return &Error{
		Phase:  PhaseIdent,
		Kind:   KindUnsupportedABI,
		Detail: fmt.Sprintf("unsupported ELF ABI: %d", abi),
		Value:  abi,
	}
}

// UnsupportedType creates an error for a rejected object type.
// No decode path returns it today; object types are open-ended.
func UnsupportedType(typ uint16) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindUnsupportedType,
		Detail: fmt.Sprintf("unsupported ELF type: %d", typ),
		Value:  typ,
	}
}

// Truncated creates an error for a buffer too short to hold a fixed structure
func Truncated(phase Phase, what string, need, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   []string{what},
		Detail: fmt.Sprintf("need %d bytes, file has %d", need, length),
		Value:  need,
	}
}

// TableOverrun creates an error for a table entry, or the bytes it
// describes, lying outside the file
func TableOverrun(table string, index int, offset, size uint64, length int) *Error {
	return &Error{
		Phase:  PhaseTable,
		Kind:   KindOutOfBounds,
		Path:   []string{table, fmt.Sprint(index)},
		Detail: fmt.Sprintf("%s exceeds file range: offset 0x%x + size 0x%x > length 0x%x", table, offset, size, length),
		Value:  index,
	}
}

// IO wraps a failure from reading the input file
func IO(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}
