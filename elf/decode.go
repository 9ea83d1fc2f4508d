package elf

import (
	"bytes"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/elf-inspect/elf/internal/binary"
	"github.com/wippyai/elf-inspect/errors"
)

// Decoding errors returned by Decode. Compare with errors.Is; the returned
// errors carry the offending value.
var (
	ErrInvalidMagic       error = &errors.Error{Phase: errors.PhaseIdent, Kind: errors.KindInvalidMagic}
	ErrUnsupportedClass   error = &errors.Error{Phase: errors.PhaseIdent, Kind: errors.KindUnsupportedClass}
	ErrUnsupportedData    error = &errors.Error{Phase: errors.PhaseIdent, Kind: errors.KindUnsupportedData}
	ErrUnsupportedVersion error = &errors.Error{Phase: errors.PhaseIdent, Kind: errors.KindUnsupportedVersion}
	ErrTruncatedHeader    error = &errors.Error{Phase: errors.PhaseHeader, Kind: errors.KindOutOfBounds}
	ErrTableOverrun       error = &errors.Error{Phase: errors.PhaseTable, Kind: errors.KindOutOfBounds}
	ErrIO                 error = &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindIO}
)

// Open reads the whole file at path and decodes it.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO("read "+path, err)
	}
	return Decode(data)
}

// DecodeIdent validates and decodes the identification block at the start
// of data. OS/ABI is never rejected.
func DecodeIdent(data []byte) (Ident, error) {
	var id Ident
	if len(data) < IdentSize || !bytes.Equal(data[:len(Magic)], Magic[:]) {
		return id, errors.InvalidMagic()
	}

	copy(id.Magic[:], data[:len(Magic)])
	id.Class = Class(data[identClass])
	id.Data = Data(data[identData])
	id.Version = data[identVersion]
	id.OSABI = OSABI(data[identOSABI])
	id.ABIVersion = data[identABIVersion]
	copy(id.Pad[:], data[identPad:IdentSize])

	if id.Class != Class32 && id.Class != Class64 {
		return id, errors.UnsupportedClass(byte(id.Class))
	}
	if id.Data != DataLSB && id.Data != DataMSB {
		return id, errors.UnsupportedData(byte(id.Data))
	}
	if id.Version != IdentVersion {
		return id, errors.UnsupportedVersion(id.Version)
	}
	return id, nil
}

// Decode decodes an entire object file held in data. Integers are read in
// the byte order the identification block declares. The returned File
// keeps a reference to data; callers must not modify it afterwards.
//
// Decoding fails on the first violated invariant and never returns a
// partially decoded File.
func Decode(data []byte) (*File, error) {
	f, err := decode(data)
	if err != nil {
		Logger().Debug("decode failed", zap.Int("size", len(data)), zap.Error(err))
		return nil, err
	}
	Logger().Debug("decoded elf",
		zap.Stringer("class", f.Ident.Class),
		zap.Stringer("data", f.Ident.Data),
		zap.Stringer("type", f.Header.Type),
		zap.Stringer("machine", f.Header.Machine),
		zap.Int("segments", len(f.Progs)),
		zap.Int("sections", len(f.Sections)))
	return f, nil
}

func decode(data []byte) (*File, error) {
	id, err := DecodeIdent(data)
	if err != nil {
		return nil, err
	}

	hdr, err := decodeHeader(data, id)
	if err != nil {
		return nil, err
	}

	progs, err := decodeProgramHeaders(data, id, hdr)
	if err != nil {
		return nil, err
	}

	sections, err := decodeSectionHeaders(data, id, hdr)
	if err != nil {
		return nil, err
	}

	return &File{
		Ident:    id,
		Header:   hdr,
		Progs:    progs,
		Sections: sections,
		raw:      data,
	}, nil
}

func decodeHeader(data []byte, id Ident) (Header, error) {
	need := header32Size
	if id.Class == Class64 {
		need = header64Size
	}
	if len(data) < need {
		return Header{}, errors.Truncated(errors.PhaseHeader, "header", need, len(data))
	}

	r := binary.NewReader(data[IdentSize:need], id.Data.ByteOrder(), id.Class.WordSize())
	h := Header{
		Class:   id.Class,
		Type:    Type(r.U16()),
		Machine: Machine(r.U16()),
		Version: r.U32(),
		Entry:   r.Word(),
		PhOff:   r.Word(),
		ShOff:   r.Word(),
		Flags:   r.U32(),
	}
	h.EhSize = r.U16()
	h.PhEntSize = r.U16()
	h.PhNum = r.U16()
	h.ShEntSize = r.U16()
	h.ShNum = r.U16()
	h.ShStrNdx = r.U16()

	if err := r.Err(); err != nil {
		return Header{}, errors.New(errors.PhaseHeader, errors.KindOutOfBounds).
			Path("header").Cause(err).Build()
	}
	return h, nil
}

// table locates an on-disk array of fixed-size records.
type table struct {
	name    string
	offset  uint64
	entsize uint16
	count   uint16
	recsize int
}

// decodeTable decodes every record of t in on-disk order. Each record must
// fit entirely within data; the first one that does not aborts the decode.
func decodeTable[T any](data []byte, id Ident, t table, decodeEntry func(*binary.Reader) T) ([]T, error) {
	out := make([]T, 0, t.count)
	for i := 0; i < int(t.count); i++ {
		stride := uint64(i) * uint64(t.entsize)
		off := t.offset + stride
		if off < t.offset || !binary.Fits(off, uint64(t.recsize), len(data)) {
			return nil, errors.TableOverrun(t.name, i, off, uint64(t.recsize), len(data))
		}

		r := binary.NewReader(data[off:off+uint64(t.recsize)], id.Data.ByteOrder(), id.Class.WordSize())
		entry := decodeEntry(r)
		if err := r.Err(); err != nil {
			return nil, errors.New(errors.PhaseTable, errors.KindOutOfBounds).
				Path(t.name, strconv.Itoa(i)).Value(i).Cause(err).Build()
		}
		out = append(out, entry)
	}
	return out, nil
}

func decodeProgramHeaders(data []byte, id Ident, h Header) ([]ProgramHeader, error) {
	t := table{name: "program header", offset: h.PhOff, entsize: h.PhEntSize, count: h.PhNum, recsize: prog32Size}
	if id.Class == Class64 {
		t.recsize = prog64Size
	}

	progs, err := decodeTable(data, id, t, func(r *binary.Reader) ProgramHeader {
		p := ProgramHeader{Class: id.Class, Type: SegmentType(r.U32())}
		// flags precede the address fields only in the 64-bit layout
		if id.Class == Class64 {
			p.Flags = SegmentFlag(r.U32())
		}
		p.Offset = r.Word()
		p.Vaddr = r.Word()
		p.Paddr = r.Word()
		p.Filesz = r.Word()
		p.Memsz = r.Word()
		if id.Class == Class32 {
			p.Flags = SegmentFlag(r.U32())
		}
		p.Align = r.Word()
		return p
	})
	if err != nil {
		return nil, err
	}

	for i, p := range progs {
		if !binary.Fits(p.Offset, p.Filesz, len(data)) {
			return nil, errors.TableOverrun("segment", i, p.Offset, p.Filesz, len(data))
		}
	}
	return progs, nil
}

func decodeSectionHeaders(data []byte, id Ident, h Header) ([]SectionHeader, error) {
	t := table{name: "section header", offset: h.ShOff, entsize: h.ShEntSize, count: h.ShNum, recsize: section32Size}
	if id.Class == Class64 {
		t.recsize = section64Size
	}

	sections, err := decodeTable(data, id, t, func(r *binary.Reader) SectionHeader {
		return SectionHeader{
			Class:     id.Class,
			Name:      r.U32(),
			Type:      SectionType(r.U32()),
			Flags:     SectionFlag(r.Word()),
			Addr:      r.Word(),
			Offset:    r.Word(),
			Size:      r.Word(),
			Link:      r.U32(),
			Info:      r.U32(),
			Addralign: r.Word(),
			Entsize:   r.Word(),
		}
	})
	if err != nil {
		return nil, err
	}

	for i, s := range sections {
		if !binary.Fits(s.Offset, s.FileBytes(), len(data)) {
			return nil, errors.TableOverrun("section", i, s.Offset, s.Size, len(data))
		}
	}
	return sections, nil
}
