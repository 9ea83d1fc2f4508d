package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/wippyai/elf-inspect/elf"
)

type tabKind int

const (
	tabSegments tabKind = iota
	tabSections
)

func (k tabKind) String() string {
	if k == tabSections {
		return "Sections"
	}
	return "Segments"
}

// chrome is the number of lines around the table: title, tabs, detail pane, help.
const chrome = 16

type interactiveModel struct {
	file     *elf.File
	filename string
	names    []string
	th       theme
	tables   [2]table.Model
	active   tabKind
	height   int
}

func newInteractiveModel(f *elf.File, filename string, th theme) *interactiveModel {
	m := &interactiveModel{
		file:     f,
		filename: filename,
		names:    f.Names(),
		th:       th,
		height:   24,
	}

	segRows := make([]table.Row, len(f.Progs))
	for i, p := range f.Progs {
		segRows[i] = table.Row{strconv.Itoa(i), p.Type.String(), p.Flags.String(), addr(p.Offset), addr(p.Vaddr), hex(p.Filesz)}
	}
	m.tables[tabSegments] = newBrowserTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Type", Width: 18},
		{Title: "Flags", Width: 5},
		{Title: "Offset", Width: 18},
		{Title: "VirtAddr", Width: 18},
		{Title: "FileSize", Width: 10},
	}, segRows)

	secRows := make([]table.Row, len(f.Sections))
	for i, s := range f.Sections {
		secRows[i] = table.Row{strconv.Itoa(i), m.names[i], s.Type.String(), s.Flags.String(), addr(s.Addr), hex(s.Size)}
	}
	m.tables[tabSections] = newBrowserTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 20},
		{Title: "Type", Width: 18},
		{Title: "Flags", Width: 8},
		{Title: "Address", Width: 18},
		{Title: "Size", Width: 10},
	}, secRows)
	m.tables[tabSections].Blur()

	if len(f.Progs) == 0 && len(f.Sections) > 0 {
		m.switchTab()
	}
	m.resize()
	return m
}

func newBrowserTable(cols []table.Column, rows []table.Row) table.Model {
	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
	)
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) switchTab() {
	m.tables[m.active].Blur()
	m.active = (m.active + 1) % 2
	m.tables[m.active].Focus()
}

func (m *interactiveModel) resize() {
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	for i := range m.tables {
		m.tables[i].SetHeight(h)
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.switchTab()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(m.th.title.Render("ELF Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" ")
	b.WriteString(m.th.help.Render(m.file.String()))
	b.WriteString("\n\n")

	for _, k := range []tabKind{tabSegments, tabSections} {
		label := fmt.Sprintf("%s (%d)", k, len(m.tables[k].Rows()))
		if k == m.active {
			b.WriteString(m.th.selected.Render(" " + label + " "))
		} else {
			b.WriteString(m.th.tab.Render(label))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.tables[m.active].View())
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(m.th.help.Render("↑/↓ select • tab switch table • q quit"))

	return b.String()
}

// detail renders every field of the selected row.
func (m *interactiveModel) detail() string {
	i := m.tables[m.active].Cursor()
	var lines []string
	field := func(label string, value any) {
		lines = append(lines, fmt.Sprintf("%s %v", m.th.label.Render(fmt.Sprintf("%-12s", label+":")), value))
	}

	switch m.active {
	case tabSegments:
		if i < 0 || i >= len(m.file.Progs) {
			return m.th.help.Render("no segments")
		}
		p := m.file.Progs[i]
		field("Segment", i)
		field("Type", fmt.Sprintf("%s (0x%X)", p.Type, uint32(p.Type)))
		field("Flags", p.Flags)
		field("Offset", hex(p.Offset))
		field("VirtAddr", addr(p.Vaddr))
		field("PhysAddr", addr(p.Paddr))
		field("FileSize", fmt.Sprintf("%s (%s)", hex(p.Filesz), humanize.IBytes(p.Filesz)))
		field("MemSize", fmt.Sprintf("%s (%s)", hex(p.Memsz), humanize.IBytes(p.Memsz)))
		field("Align", hex(p.Align))
	case tabSections:
		if i < 0 || i >= len(m.file.Sections) {
			return m.th.help.Render("no sections")
		}
		s := m.file.Sections[i]
		field("Section", fmt.Sprintf("%d %s", i, m.names[i]))
		field("Type", fmt.Sprintf("%s (0x%X)", s.Type, uint32(s.Type)))
		field("Flags", fmt.Sprintf("%s (0x%X)", s.Flags, uint64(s.Flags)))
		field("Address", addr(s.Addr))
		field("Offset", hex(s.Offset))
		field("Size", fmt.Sprintf("%s (%s)", hex(s.Size), humanize.IBytes(s.Size)))
		field("Link", s.Link)
		field("Info", s.Info)
		field("AddrAlign", hex(s.Addralign))
		field("EntSize", hex(s.Entsize))
	}
	return strings.Join(lines, "\n")
}

func runInteractive(f *elf.File, filename string, th theme) error {
	p := tea.NewProgram(newInteractiveModel(f, filename, th), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
