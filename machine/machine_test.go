package machine

import (
	"bytes"
	"testing"

	"github.com/nescore/nes6502/cartridge"
	"github.com/stretchr/testify/assert"
)

func buildROM(t *testing.T, program []byte) *cartridge.Cartridge {
	t.Helper()
	header := make([]byte, 16)
	copy(header, []byte("NES\x1a"))
	header[4] = 1 // one 16 KiB PRG bank
	header[5] = 0

	prg := make([]byte, 0x4000)
	copy(prg, program)
	// reset vector points at the start of PRG, mirrored at $8000
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80

	data := append(header, prg...)
	cart, err := cartridge.LoadBytes(data)
	assert.NoError(t, err)
	return cart
}

func TestMachineClockAdvancesThreePPUDotsPerCPUTick(t *testing.T) {
	m := New(buildROM(t, []byte{0xEA})) // NOP
	m.Reset()
	err := m.Clock()
	assert.NoError(t, err)
	assert.Equal(t, 3, m.PPU.ScreenX)
}

func TestSingleStepLandsOnInstructionBoundary(t *testing.T) {
	m := New(buildROM(t, []byte{0xEA, 0xEA})) // NOP, NOP
	m.Reset()
	err := m.SingleStep()
	assert.NoError(t, err)
	assert.True(t, m.CPU.Sync())
	assert.Equal(t, uint16(0x8001), m.CPU.PC)
}

func TestSingleFrameStopsAtFrameBoundary(t *testing.T) {
	// NOPs fill PRG up to the reset vector; one frame runs ~14,900 of them.
	m := New(buildROM(t, bytes.Repeat([]byte{0xEA}, 0x3FFC)))
	m.Reset()
	err := m.SingleFrame()
	assert.NoError(t, err)
	// A frame is 341*262 = 89342 dots, not a multiple of 3: the wrap lands on
	// the second dot of a Clock, whose third dot leaves the raster at (1, 0).
	assert.True(t, m.PPU.ScreenY == 0 && m.PPU.ScreenX == 1)
}

func TestResetForNestestForcesEntryPoint(t *testing.T) {
	m := New(buildROM(t, []byte{0xEA}))
	m.ResetForNestest()
	assert.Equal(t, uint16(0xC000), m.CPU.PC)
}

func TestUnimplementedOpcodeSurfacesFromClock(t *testing.T) {
	m := New(buildROM(t, []byte{0x00})) // BRK
	m.Reset()
	err := m.SingleStep()
	assert.Error(t, err)
}
