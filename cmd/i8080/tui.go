package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"i8080/cpu"
)

// model is the bubbletea model driving the interactive step debugger,
// adapted from the teacher's cpu/debugger.go: same page-table-plus-status
// layout, same single-step-on-space/j key binding, generalized from the
// 6502's 8-bit register file to the 8080's A/B/C/D/E/H/L plus PC/SP/flags.
type model struct {
	state   *cpu.State
	program []byte
	offset  uint16

	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd {
	m.state.Memory.Load(m.program, m.offset)
	m.state.PC = m.offset
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.state.PC
			if err := m.state.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "d":
			dumpState(m.state)
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.state.Memory.Read(start + i)
		if start+i == m.state.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.state.Flags.Sign,
		m.state.Flags.Zero,
		m.state.Flags.AuxCarry,
		m.state.Flags.Parity,
		m.state.Flags.Carry,
		m.state.IME,
		m.state.Halted,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
 A: %02x
 B: %02x  C: %02x
 D: %02x  E: %02x
 H: %02x  L: %02x
S Z AC P CY IME HLT
`,
		m.state.PC, m.prevPC,
		m.state.SP,
		m.state.Reg(cpu.A),
		m.state.Reg(cpu.B), m.state.Reg(cpu.C),
		m.state.Reg(cpu.D), m.state.Reg(cpu.E),
		m.state.Reg(cpu.H), m.state.Reg(cpu.L),
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	pages := []string{header}
	base := m.state.PC - m.state.PC%16
	for i := 0; i < 5; i++ {
		pages = append(pages, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(pages, "\n")
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(cpu.Decode(m.state.Memory.Read(m.state.PC))),
	)
}

// runDebugger loads program into state's memory at offset and starts the
// interactive TUI.
func runDebugger(state *cpu.State, program []byte, offset uint16) error {
	finalModel, err := tea.NewProgram(model{
		state:   state,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
