// Package machine binds the Bus, CPU, PPU, and Cartridge into one driver
// and exposes the clocking operations an outer host (a CLI runner, the
// interactive inspector, or a test harness) uses to advance the emulator.
package machine

import (
	"github.com/nescore/nes6502/cartridge"
	"github.com/nescore/nes6502/cpu"
	"github.com/nescore/nes6502/mem"
	"github.com/nescore/nes6502/ppu"
)

// Machine owns the Bus, CPU, PPU, and Cartridge for the emulator's
// lifetime. Nothing else holds a reference to these three; the Bus's
// back-references to the PPU and cartridge are wired once, here, at
// construction.
type Machine struct {
	Bus  *mem.Bus
	CPU  *cpu.Cpu
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
}

// New builds a Machine around the given cartridge, wires the Bus to the PPU
// and cartridge, and resets the CPU from the reset vector.
func New(cart *cartridge.Cartridge) *Machine {
	p := ppu.New()
	bus := mem.NewBus(p, nil)
	// cart is passed through a mem.PRGDevice interface; wiring it only
	// when non-nil avoids a non-nil interface wrapping a nil *Cartridge,
	// which Bus's nil checks would otherwise miss.
	if cart != nil {
		bus.AttachCartridge(cart)
	}
	c := cpu.New(bus)

	return &Machine{Bus: bus, CPU: c, PPU: p, Cart: cart}
}

// Clock advances the Machine by one CPU tick, which issues exactly three
// PPU dots. It returns any error the CPU reported reaching an instruction
// boundary (an unimplemented opcode); the caller decides whether to keep
// running past it.
func (m *Machine) Clock() error {
	_, err := m.CPU.Cycle()
	m.PPU.Dot()
	m.PPU.Dot()
	m.PPU.Dot()
	return err
}

// SingleStep runs until the CPU sits on an instruction boundary, performs
// one more Clock to execute the instruction there, then keeps clocking so
// the caller lands exactly on the next boundary -- the granularity a
// per-instruction trace or the inspector wants.
func (m *Machine) SingleStep() error {
	for !m.CPU.Sync() {
		if err := m.Clock(); err != nil {
			return err
		}
	}
	if err := m.Clock(); err != nil {
		return err
	}
	for !m.CPU.Sync() {
		if err := m.Clock(); err != nil {
			return err
		}
	}
	return nil
}

// SingleFrame runs Clock until the PPU reports it has completed a frame.
func (m *Machine) SingleFrame() error {
	for {
		if err := m.Clock(); err != nil {
			return err
		}
		if m.PPU.Sync() {
			return nil
		}
	}
}

// Reset restores the CPU's power-up state, reading PC from the reset
// vector.
func (m *Machine) Reset() { m.CPU.Reset() }

// ResetForNestest matches Reset but forces PC to $C000, the entry point
// nestest.nes expects when run in automated (no PPU/controller) mode.
func (m *Machine) ResetForNestest() { m.CPU.ResetForNestest() }
