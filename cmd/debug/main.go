// Command debug is an interactive single-step inspector: it loads an iNES
// ROM, single-steps a machine.Machine one instruction at a time on a
// keypress, and renders register/flag/memory-page state alongside a
// go-spew dump of the decoded instruction-table entry under the cursor.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/nescore/nes6502/cartridge"
	"github.com/nescore/nes6502/cpu"
	"github.com/nescore/nes6502/machine"
)

type model struct {
	m      *machine.Machine
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd {
	m.m.ResetForNestest()
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.m.CPU.PC
			if err := m.m.SingleStep(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte memory row, highlighting the byte at PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.m.Bus.Read(start + i)
		if start+i == m.m.CPU.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	c := m.m.CPU
	var flags string
	for _, bit := range []byte{
		cpu.FlagNegative, cpu.FlagOverflow, cpu.FlagUnused, cpu.FlagBreak,
		cpu.FlagDecimal, cpu.FlagInterrupt, cpu.FlagZero, cpu.FlagCarry,
	} {
		if c.P&bit != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
CYC: %d
N V _ B D I Z C
`, c.PC, m.prevPC, c.A, c.X, c.Y, c.SP, c.TotalCycles) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	base := m.m.CPU.PC &^ 0xF
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	opcode := m.m.Bus.Read(m.m.CPU.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(cpu.InstructionSet[opcode]),
	)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: debug <rom-path>")
		os.Exit(1)
	}

	cart, err := cartridge.Load(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	final, err := tea.NewProgram(model{m: machine.New(cart)}).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if f, ok := final.(model); ok && f.err != nil {
		fmt.Println("Error:", f.err)
	}
}
