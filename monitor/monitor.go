// Package monitor is an interactive bubbletea debugger for the
// emulator: step/run the CPU, set breakpoints, dump a page of memory
// around PC, and watch registers and flags update live.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/example/apple2go/mos6502"
)

// Machine is the slice of the emulated machine the monitor drives.
type Machine interface {
	Read(addr uint16) uint8
	Step() uint8
	Reset()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pcStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	m       Machine
	cpu     *mos6502.CPU
	breaks  map[uint16]struct{}
	running bool
	lastOp  uint8
	err     error
}

// New creates a monitor model ready to run via tea.NewProgram. cpu is
// used for register display and PC-relative memory paging; m is the
// Step/Reset surface the key bindings drive.
func New(m Machine, cpu *mos6502.CPU) tea.Model {
	return model{m: m, cpu: cpu, breaks: map[uint16]struct{}{}}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg struct{}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.lastOp = m.m.Step()
			return m, nil
		case "r":
			m.running = true
			return m, m.runCmd()
		case "e":
			m.m.Reset()
			m.running = false
			return m, nil
		case "b":
			m.breaks[m.cpu.PC] = struct{}{}
			return m, nil
		case "c":
			m.breaks = map[uint16]struct{}{}
			return m, nil
		}
	case tickMsg:
		if !m.running {
			return m, nil
		}
		if _, stop := m.breaks[m.cpu.PC]; stop {
			m.running = false
			return m, nil
		}
		m.lastOp = m.m.Step()
		return m, m.runCmd()
	}
	return m, nil
}

// runCmd advances the CPU one step per bubbletea message, checking
// for a hit breakpoint between each. This keeps a (r)un responsive to
// (q)uit and to breakpoints without blocking the UI loop.
func (m model) runCmd() tea.Cmd {
	return func() tea.Msg { return tickMsg{} }
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("apple2go monitor"))
	fmt.Fprintln(&b, m.cpu)
	fmt.Fprintf(&b, "last opcode: 0x%02x  running: %v\n\n", m.lastOp, m.running)
	fmt.Fprintln(&b, m.memoryPage())
	if len(m.breaks) > 0 {
		fmt.Fprintln(&b, dimStyle.Render(spew.Sdump(m.breaks)))
	}
	fmt.Fprintln(&b, dimStyle.Render("(s)tep (r)un (b)reak (c)lear r(e)set (q)uit"))
	return b.String()
}

// memoryPage dumps the 16-byte-aligned page containing PC, with the
// byte at PC highlighted.
func (m model) memoryPage() string {
	start := m.cpu.PC &^ 0x0F
	var b strings.Builder
	fmt.Fprintf(&b, "%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := m.m.Read(addr)
		if addr == m.cpu.PC {
			fmt.Fprint(&b, pcStyle.Render(fmt.Sprintf("[%02x] ", v)))
		} else {
			fmt.Fprintf(&b, " %02x  ", v)
		}
	}
	return b.String()
}

// Run starts the interactive monitor and blocks until the user quits.
func Run(m Machine, cpu *mos6502.CPU) error {
	_, err := tea.NewProgram(New(m, cpu)).Run()
	return err
}
