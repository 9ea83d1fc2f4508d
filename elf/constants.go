package elf

// Identification block layout.
const (
	// IdentSize is the size of the identification block at the start of every file.
	IdentSize = 16

	identClass      = 4
	identData       = 5
	identVersion    = 6
	identOSABI      = 7
	identABIVersion = 8
	identPad        = 9

	// IdentVersion is the only supported identification version.
	IdentVersion = 1
)

// Magic is the four-byte prefix of every ELF file.
var Magic = [4]byte{0x7F, 'E', 'L', 'F'}

// Fixed record sizes for each address width.
const (
	header32Size = 52
	header64Size = 64

	prog32Size = 32
	prog64Size = 56

	section32Size = 40
	section64Size = 64
)

// Reserved numeric ranges shared by segment and section types.
const (
	rangeLoOS   = 0x60000000
	rangeHiOS   = 0x6FFFFFFF
	rangeLoProc = 0x70000000
	rangeHiProc = 0x7FFFFFFF
)
