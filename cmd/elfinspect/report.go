package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/wippyai/elf-inspect/elf"
)

// report renders a decoded file as text.
type report struct {
	w    io.Writer
	f    *elf.File
	th   theme
	wide bool
}

func hex(v uint64) string {
	return fmt.Sprintf("0x%X", v)
}

func addr(v uint64) string {
	return fmt.Sprintf("0x%016X", v)
}

func magic(m [4]byte) string {
	parts := make([]string, len(m))
	for i, b := range m {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

func (r *report) field(label string, value any) {
	fmt.Fprintf(r.w, "  %s %s\n", r.th.label.Render(label+":"), r.th.value.Render(fmt.Sprint(value)))
}

func (r *report) newTable(header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(r.w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return t
}

func (r *report) brief() {
	id, h := r.f.Ident, r.f.Header

	fmt.Fprintln(r.w, r.th.title.Render("ELF File Information"))
	r.field("Magic", magic(id.Magic))
	r.field("Class", id.Class)
	r.field("Data Encoding", id.Data)
	r.field("Version", id.Version)
	r.field("OS/ABI", id.OSABI)
	r.field("ABI Version", id.ABIVersion)
	r.field("Type", h.Type)
	r.field("Machine", h.Machine)
	r.field("Object Version", hex(uint64(h.Version)))
	r.field("Entry Point", hex(h.Entry))
	r.field("Program Header Offset", hex(h.PhOff))
	r.field("Section Header Offset", hex(h.ShOff))
	r.field("Flags", hex(uint64(h.Flags)))
	r.field("ELF Header Size", fmt.Sprintf("%d bytes", h.EhSize))
	r.field("Program Header Entry Size", fmt.Sprintf("%d bytes", h.PhEntSize))
	r.field("Program Header Entries", h.PhNum)
	r.field("Section Header Entry Size", fmt.Sprintf("%d bytes", h.ShEntSize))
	r.field("Section Header Entries", h.ShNum)
	r.field("Section Header String Table Index", h.ShStrNdx)
	r.field("File Size", humanize.IBytes(uint64(r.f.Size())))
	fmt.Fprintln(r.w)
}

func (r *report) programs() {
	if len(r.f.Progs) == 0 {
		fmt.Fprintln(r.w, r.th.help.Render("There are no program headers in this file."))
		return
	}

	fmt.Fprintln(r.w, r.th.heading.Render("Program Headers"))
	t := r.newTable("Index", "Flags", "Type", "Offset")
	for i, p := range r.f.Progs {
		t.Append([]string{strconv.Itoa(i), p.Flags.String(), p.Type.String(), addr(p.Offset)})
	}
	t.Render()

	fmt.Fprintln(r.w)
	t = r.newTable("Index", "Virtual Address", "Physical Address", "File Size", "Memory Size", "Alignment")
	for i, p := range r.f.Progs {
		t.Append([]string{strconv.Itoa(i), addr(p.Vaddr), addr(p.Paddr), hex(p.Filesz), hex(p.Memsz), hex(p.Align)})
	}
	t.Render()
	fmt.Fprintln(r.w)
}

func (r *report) sections() {
	if len(r.f.Sections) == 0 {
		fmt.Fprintln(r.w, r.th.help.Render("There are no sections in this file."))
		return
	}

	names := r.f.Names()
	fmt.Fprintln(r.w, r.th.heading.Render("Section Headers"))
	t := r.newTable("Index", "Name", "Type", "Flags", "Address")
	for i, s := range r.f.Sections {
		t.Append([]string{strconv.Itoa(i), names[i], s.Type.String(), s.Flags.String(), addr(s.Addr)})
	}
	t.Render()

	fmt.Fprintln(r.w)
	t = r.newTable("Index", "Name", "Offset", "Link", "Info", "AddrAlign")
	for i, s := range r.f.Sections {
		t.Append([]string{strconv.Itoa(i), names[i], addr(s.Offset), fmt.Sprint(s.Link), fmt.Sprint(s.Info), hex(s.Addralign)})
	}
	t.Render()

	if r.wide {
		fmt.Fprintln(r.w)
		t = r.newTable("Index", "Name", "EntSize", "Size", "")
		for i, s := range r.f.Sections {
			t.Append([]string{strconv.Itoa(i), names[i], hex(s.Entsize), hex(s.Size), humanize.IBytes(s.Size)})
		}
		t.Render()
	}

	fmt.Fprintln(r.w, r.th.label.Render("Key to Flags:"))
	for _, line := range strings.Split(elf.FlagKey, "\n") {
		fmt.Fprintln(r.w, r.th.help.Render("  "+line))
	}
	fmt.Fprintln(r.w)
}
