// Package cpu implements a cycle-stepped interpreter for the NES's variant
// of the MOS 6502: no decimal mode, and the familiar family of "illegal"
// opcodes that fall out of the official decoder's don't-care bits.
package cpu

import (
	"fmt"

	"github.com/nescore/nes6502/mask"
	"github.com/nescore/nes6502/mem"
)

// Status flag bit positions within P, matching the NV-BDIZC layout.
const (
	FlagCarry     byte = 1 << 0
	FlagZero      byte = 1 << 1
	FlagInterrupt byte = 1 << 2
	FlagDecimal   byte = 1 << 3
	FlagBreak     byte = 1 << 4
	FlagUnused    byte = 1 << 5
	FlagOverflow  byte = 1 << 6
	FlagNegative  byte = 1 << 7
)

// FetchType selects where an addressing mode's operand lives.
type FetchType int

const (
	// FetchMemory reads/writes through AbsAddress.
	FetchMemory FetchType = iota
	// FetchAccumulator reads/writes register A directly (the acc mode).
	FetchAccumulator
)

// ErrUnimplementedOpcode reports an opcode with no InstructionSet entry.
// It is fatal by design. The table covers every documented opcode except
// BRK ($00), plus the illegal opcodes nestest exercises; BRK and the
// remaining illegal opcodes produce this error.
type ErrUnimplementedOpcode struct {
	Opcode byte
	PC     uint16
}

func (e *ErrUnimplementedOpcode) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.PC)
}

// Cpu holds the full working state of one 6502 core: the register file, the
// pipeline state threaded between the addressing-mode and operation
// routines of the instruction currently executing, and the bus it reads and
// writes through.
type Cpu struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	P       byte

	AbsAddress uint16
	RelAddress int8
	FetchType  FetchType
	M          byte // operand value, latched by fetch() when read from memory

	Cycles           byte
	AdditionalCycles byte
	TotalCycles      uint64

	Bus *mem.Bus

	// Trace, when non-nil, receives one formatted line per instruction
	// boundary. Left nil, the interpreter is silent.
	Trace func(line string)

	// LastOpcode/LastPC record the opcode and address of the instruction
	// most recently decoded.
	LastOpcode byte
	LastPC     uint16
}

// New constructs a Cpu wired to bus, in its post-reset state.
func New(bus *mem.Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset()
	return c
}

func (c *Cpu) Read(addr uint16) byte       { return c.Bus.Read(addr) }
func (c *Cpu) Write(addr uint16, v byte)   { c.Bus.Write(addr, v) }
func (c *Cpu) readWord(addr uint16) uint16 { return mask.Word(c.Read(addr+1), c.Read(addr)) }

// Reset restores the power-up register file and reads PC from the reset
// vector at $FFFC/$FFFD.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = 0x24
	c.PC = c.readWord(0xFFFC)
	c.AbsAddress, c.RelAddress, c.M = 0, 0, 0
	c.FetchType = FetchMemory
	c.Cycles = 0
	c.AdditionalCycles = 0
	// The real reset sequence stalls for 6 cycles before the first
	// instruction fetch; the nestest reference trace reports TotalCycles=7
	// at that first fetch. Seeding it directly here is observationally
	// equivalent to ticking through the stall and simpler to reason about.
	c.TotalCycles = 7
}

// ResetForNestest matches Reset but forces PC to $C000, the automated-mode
// entry point nestest.nes expects when run without a real PPU/controller.
func (c *Cpu) ResetForNestest() {
	c.Reset()
	c.PC = 0xC000
}

// ResetTo is the general form of ResetForNestest, for any fixed entry point.
func (c *Cpu) ResetTo(addr uint16) {
	c.Reset()
	c.PC = addr
}

// getFlag and setFlag go through mask's 1-indexed bit operations rather than
// hand-rolled shifts; the Flag* bitmasks map onto mask.I1-I8 MSB first,
// which happens to match P's NV-BDIZC layout exactly.
func (c *Cpu) getFlag(f byte) bool {
	switch f {
	case FlagNegative:
		return mask.IsSet(c.P, mask.I1)
	case FlagOverflow:
		return mask.IsSet(c.P, mask.I2)
	case FlagUnused:
		return mask.IsSet(c.P, mask.I3)
	case FlagBreak:
		return mask.IsSet(c.P, mask.I4)
	case FlagDecimal:
		return mask.IsSet(c.P, mask.I5)
	case FlagInterrupt:
		return mask.IsSet(c.P, mask.I6)
	case FlagZero:
		return mask.IsSet(c.P, mask.I7)
	default: // FlagCarry
		return mask.IsSet(c.P, mask.I8)
	}
}

func (c *Cpu) setFlag(f byte, v bool) {
	var pos = mask.I8
	switch f {
	case FlagNegative:
		pos = mask.I1
	case FlagOverflow:
		pos = mask.I2
	case FlagUnused:
		pos = mask.I3
	case FlagBreak:
		pos = mask.I4
	case FlagDecimal:
		pos = mask.I5
	case FlagInterrupt:
		pos = mask.I6
	case FlagZero:
		pos = mask.I7
	}
	if v {
		c.P = mask.Set(c.P, pos, 1)
	} else {
		c.P = mask.Unset(c.P, pos, pos)
	}
}

func (c *Cpu) setZN(v byte) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

// Sync reports whether the next Cycle() call will decode a new instruction,
// i.e. whether the CPU currently sits on an instruction boundary.
func (c *Cpu) Sync() bool { return c.Cycles == 0 }

// Cycle advances the CPU by one clock tick. It returns true on the tick
// that completed the fetch/decode/execute of a whole instruction, false on
// ticks spent paying down the remaining cycle count of an in-flight one.
func (c *Cpu) Cycle() (bool, error) {
	if c.Cycles > 0 {
		c.Cycles--
		c.TotalCycles++
		return false, nil
	}
	// TotalCycles still holds the count at instruction entry while step()
	// emits the trace line; this tick is counted once step() has run.
	err := c.step()
	c.TotalCycles++
	if err != nil {
		return true, err
	}
	// step() leaves Cycles set to the instruction's total cost; this tick
	// itself is the first of them, already spent.
	if c.Cycles > 0 {
		c.Cycles--
	}
	return true, nil
}

// step performs one whole fetch/decode/execute cycle at the current PC.
func (c *Cpu) step() error {
	opcode := c.Read(c.PC)
	entry := InstructionSet[opcode]
	if entry.Operation == nil || entry.Addressing == nil {
		return &ErrUnimplementedOpcode{Opcode: opcode, PC: c.PC}
	}

	c.LastOpcode = opcode
	c.LastPC = c.PC

	if c.Trace != nil {
		c.Trace(c.formatTrace(opcode, entry))
	}

	c.PC++
	c.AdditionalCycles = 0
	c.FetchType = FetchMemory

	// The addressing mode's page-cross penalty is folded into
	// AdditionalCycles rather than kept as a local, so that a store-family
	// operation's clearStoreCycles() call -- which runs after the
	// addressing mode, as part of Operation -- can actually cancel it.
	c.AdditionalCycles += entry.Addressing(c)
	opCycles := entry.Operation(c)

	c.Cycles = entry.BaseCycles + c.AdditionalCycles + opCycles
	return nil
}

// fetch returns the operand value according to the addressing mode that
// just ran: register A for acc mode, or the byte at AbsAddress otherwise.
func (c *Cpu) fetch() byte {
	if c.FetchType == FetchAccumulator {
		return c.A
	}
	c.M = c.Read(c.AbsAddress)
	return c.M
}

// store writes v back to wherever fetch() last read from.
func (c *Cpu) store(v byte) {
	if c.FetchType == FetchAccumulator {
		c.A = v
		return
	}
	c.Write(c.AbsAddress, v)
}

func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}
