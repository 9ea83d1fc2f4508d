package elf

import "strings"

// Type is the object file type (e_type).
type Type uint16

const (
	TypeNone Type = 0
	TypeRel  Type = 1
	TypeExec Type = 2
	TypeDyn  Type = 3
	TypeCore Type = 4

	typeLoOS   Type = 0xFE00
	typeHiOS   Type = 0xFEFF
	typeLoProc Type = 0xFF00
)

func (t Type) String() string {
	switch {
	case t == TypeNone:
		return "None"
	case t == TypeRel:
		return "Relocatable"
	case t == TypeExec:
		return "Executable"
	case t == TypeDyn:
		return "Shared"
	case t == TypeCore:
		return "Core"
	case t >= typeLoOS && t <= typeHiOS:
		return "OS-specific"
	case t >= typeLoProc:
		return "Processor-specific"
	default:
		return "Unknown"
	}
}

// Machine is the target architecture (e_machine).
type Machine uint16

const (
	MachineNone    Machine = 0
	Machine386     Machine = 3
	MachineARM     Machine = 40
	MachineX86_64  Machine = 62
	MachineAArch64 Machine = 183
	MachineRISCV   Machine = 243
)

var machineNames = map[Machine]string{
	0:   "None",
	1:   "M32",
	2:   "SPARC",
	3:   "Intel 80386",
	4:   "Motorola 68K",
	5:   "Motorola 88K",
	6:   "Intel MCU",
	7:   "Intel 80860",
	8:   "MIPS",
	9:   "S370",
	10:  "MIPS RS3 LE",
	15:  "PA-RISC",
	17:  "VPP500",
	18:  "SPARC32 Plus",
	19:  "Intel 80960",
	20:  "PowerPC",
	21:  "PowerPC64",
	22:  "IBM S/390",
	23:  "IBM SPU",
	40:  "ARM",
	42:  "SuperH",
	43:  "SparcV9",
	44:  "Tricore",
	45:  "ARC",
	46:  "H8/300",
	47:  "H8/300H",
	48:  "H8S",
	49:  "H8/500",
	50:  "IA-64",
	51:  "MIPS-X",
	52:  "Coldfire",
	53:  "M68HC12",
	54:  "MMA",
	55:  "PCP",
	56:  "Sony nCPU",
	57:  "Denso NDR1",
	58:  "Start*Core",
	59:  "ME16",
	60:  "ST100",
	61:  "Tinyj",
	62:  "x86-64",
	63:  "PDSP",
	64:  "PDP-10",
	65:  "PDP-11",
	66:  "FX66",
	67:  "ST9+",
	68:  "ST7",
	69:  "MC68HC16",
	70:  "MC68HC11",
	71:  "MC68HC08",
	72:  "MC68HC05",
	73:  "SVx",
	74:  "ST19",
	75:  "VAX",
	76:  "CRIS",
	183: "AArch64",
	224: "AMD GPU",
	243: "RISC-V",
	247: "BPF",
	258: "LoongArch",
}

func (m Machine) String() string {
	if s, ok := machineNames[m]; ok {
		return s
	}
	return "Unknown"
}

// OSABI is the operating system / ABI identification byte (EI_OSABI).
type OSABI uint8

var osabiNames = map[OSABI]string{
	0:   "System V",
	1:   "HP-UX",
	2:   "NetBSD",
	3:   "GNU/Linux",
	6:   "Solaris",
	7:   "AIX",
	8:   "IRIX",
	9:   "FreeBSD",
	10:  "Tru64",
	11:  "Novell Modesto",
	12:  "OpenBSD",
	13:  "OpenVMS",
	14:  "NonStop Kernel",
	15:  "AROS",
	16:  "Fenix OS",
	17:  "CloudABI",
	18:  "Stratus Technologies OpenVOS",
	64:  "ARM EABI",
	97:  "ARM",
	255: "Standalone",
}

func (o OSABI) String() string {
	if s, ok := osabiNames[o]; ok {
		return s
	}
	return "Unknown"
}

// SegmentType is the program header type (p_type).
type SegmentType uint32

const (
	SegmentNull    SegmentType = 0
	SegmentLoad    SegmentType = 1
	SegmentDynamic SegmentType = 2
	SegmentInterp  SegmentType = 3
	SegmentNote    SegmentType = 4
	SegmentShlib   SegmentType = 5
	SegmentPhdr    SegmentType = 6
	SegmentTLS     SegmentType = 7

	SegmentGNUEHFrame  SegmentType = 0x6474e550
	SegmentGNUStack    SegmentType = 0x6474e551
	SegmentGNURelro    SegmentType = 0x6474e552
	SegmentGNUProperty SegmentType = 0x6474e553
)

var segmentTypeNames = map[SegmentType]string{
	SegmentNull:        "NULL",
	SegmentLoad:        "LOAD",
	SegmentDynamic:     "DYNAMIC",
	SegmentInterp:      "INTERP",
	SegmentNote:        "NOTE",
	SegmentShlib:       "SHLIB",
	SegmentPhdr:        "PHDR",
	SegmentTLS:         "TLS",
	8:                  "NUM",
	SegmentGNUEHFrame:  "GNU_EH_FRAME",
	SegmentGNUStack:    "GNU_STACK",
	SegmentGNURelro:    "GNU_RELRO",
	SegmentGNUProperty: "GNU_PROPERTY",
}

func (t SegmentType) String() string {
	if s, ok := segmentTypeNames[t]; ok {
		return s
	}
	return reservedLabel(uint32(t))
}

// SectionType is the section header type (sh_type).
type SectionType uint32

const (
	SectionNull     SectionType = 0
	SectionProgBits SectionType = 1
	SectionSymTab   SectionType = 2
	SectionStrTab   SectionType = 3
	SectionRela     SectionType = 4
	SectionHash     SectionType = 5
	SectionDynamic  SectionType = 6
	SectionNote     SectionType = 7
	SectionNoBits   SectionType = 8
	SectionRel      SectionType = 9
	SectionShlib    SectionType = 10
	SectionDynSym   SectionType = 11
)

var sectionTypeNames = map[SectionType]string{
	SectionNull:     "NULL",
	SectionProgBits: "PROGBITS",
	SectionSymTab:   "SYMTAB",
	SectionStrTab:   "STRTAB",
	SectionRela:     "RELA",
	SectionHash:     "HASH",
	SectionDynamic:  "DYNAMIC",
	SectionNote:     "NOTE",
	SectionNoBits:   "NOBITS",
	SectionRel:      "REL",
	SectionShlib:    "SHLIB",
	SectionDynSym:   "DYNSYM",
	14:              "INIT_ARRAY",
	15:              "FINI_ARRAY",
	16:              "PREINIT_ARRAY",
	17:              "GROUP",
	18:              "SYMTAB_SHNDX",
	19:              "RELR",
	20:              "NUM",
	0x6ffffff6:      "GNU_HASH",
	0x6ffffffd:      "VERDEF",
	0x6ffffffe:      "VERNEED",
	0x6fffffff:      "VERSYM",
}

func (t SectionType) String() string {
	if s, ok := sectionTypeNames[t]; ok {
		return s
	}
	return reservedLabel(uint32(t))
}

// reservedLabel labels values in the OS and processor reserved ranges.
func reservedLabel(v uint32) string {
	switch {
	case v == rangeLoOS:
		return "LOOS"
	case v > rangeLoOS && v <= rangeHiOS:
		return "OS specific"
	case v == rangeLoProc:
		return "LOPROC"
	case v > rangeLoProc && v <= rangeHiProc:
		return "Processor specific"
	default:
		return "Unknown"
	}
}

// SegmentFlag is the program header permission mask (p_flags).
type SegmentFlag uint32

const (
	SegmentFlagX SegmentFlag = 1 << 0
	SegmentFlagW SegmentFlag = 1 << 1
	SegmentFlagR SegmentFlag = 1 << 2
)

// String renders the mask as three characters in X, W, R order with '-'
// for each cleared bit.
func (f SegmentFlag) String() string {
	b := []byte("---")
	if f&SegmentFlagX != 0 {
		b[0] = 'X'
	}
	if f&SegmentFlagW != 0 {
		b[1] = 'W'
	}
	if f&SegmentFlagR != 0 {
		b[2] = 'R'
	}
	return string(b)
}

// SectionFlag is the section attribute mask (sh_flags).
type SectionFlag uint64

const (
	SectionFlagWrite           SectionFlag = 1 << 0
	SectionFlagAlloc           SectionFlag = 1 << 1
	SectionFlagExecInstr       SectionFlag = 1 << 2
	SectionFlagMerge           SectionFlag = 1 << 4
	SectionFlagStrings         SectionFlag = 1 << 5
	SectionFlagInfoLink        SectionFlag = 1 << 6
	SectionFlagLinkOrder       SectionFlag = 1 << 7
	SectionFlagOSNonconforming SectionFlag = 1 << 8
	SectionFlagGroup           SectionFlag = 1 << 9
	SectionFlagTLS             SectionFlag = 1 << 10
	SectionFlagCompressed      SectionFlag = 1 << 11

	// SectionFlagMaskProc covers bits 20-27, reserved for processor semantics.
	SectionFlagMaskProc SectionFlag = 0x0FF00000
)

var sectionFlagCodes = []struct {
	flag SectionFlag
	code byte
}{
	{SectionFlagWrite, 'W'},
	{SectionFlagAlloc, 'A'},
	{SectionFlagExecInstr, 'X'},
	{SectionFlagMerge, 'M'},
	{SectionFlagStrings, 'S'},
	{SectionFlagInfoLink, 'I'},
	{SectionFlagLinkOrder, 'L'},
	{SectionFlagOSNonconforming, 'O'},
	{SectionFlagGroup, 'G'},
	{SectionFlagTLS, 'T'},
	{SectionFlagCompressed, 'C'},
}

// sectionFlagKnown is every bit that has a single-letter code.
const sectionFlagKnown = SectionFlagWrite | SectionFlagAlloc | SectionFlagExecInstr |
	SectionFlagMerge | SectionFlagStrings | SectionFlagInfoLink | SectionFlagLinkOrder |
	SectionFlagOSNonconforming | SectionFlagGroup | SectionFlagTLS | SectionFlagCompressed

// String renders the mask in readelf key order (W A X M S I L O G T C),
// then 'p' if any processor bit is set and 'x' for any other unnamed bit.
// A zero mask renders as "-".
func (f SectionFlag) String() string {
	if f == 0 {
		return "-"
	}
	var b strings.Builder
	for _, c := range sectionFlagCodes {
		if f&c.flag != 0 {
			b.WriteByte(c.code)
		}
	}
	if f&SectionFlagMaskProc != 0 {
		b.WriteByte('p')
	}
	if f&^(sectionFlagKnown|SectionFlagMaskProc) != 0 {
		b.WriteByte('x')
	}
	return b.String()
}

// FlagKey is the legend for SectionFlag.String.
const FlagKey = `W (write), A (alloc), X (execute), M (merge), S (strings), I (info),
L (link order), O (extra OS processing required), G (group), T (TLS),
C (compressed), p (processor specific), x (unknown), - (empty)`
