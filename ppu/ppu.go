// Package ppu implements the raster-timing skeleton of the NES picture
// processing unit: a 341x262 dot counter advanced in lockstep with the CPU,
// and the eight CPU-visible register ports. The rendering pipeline itself
// (background fetches, sprite evaluation, pixel mixing) is a downstream
// concern; what lives here is only enough to drive accurate cycle counts
// and trace output.
package ppu

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
)

// Register indices into the 8-byte CPU-visible port file, matching the
// $2000-$2007 layout (mirrored every 8 bytes by the bus).
const (
	RegPPUCTRL byte = iota
	RegPPUMASK
	RegPPUSTATUS
	RegOAMADDR
	RegOAMDATA
	RegPPUSCROLL
	RegPPUADDR
	RegPPUDATA
)

// vblankBit is the bit PPUSTATUS sets on the first scanline of vblank and
// clears when the CPU reads the register -- the one piece of real register
// behaviour stubbed in here so a bring-up ROM's status-polling loop doesn't
// spin forever against an inert latch.
const vblankBit = 0x80

// PPU is the raster-timing skeleton. ScreenX/ScreenY track the current dot;
// NewFrame latches true for one Sync() call per frame wraparound.
type PPU struct {
	ScreenX, ScreenY int
	NewFrame         bool

	registers [8]byte
}

// New returns a PPU at the start of its raster, registers zeroed.
func New() *PPU {
	return &PPU{}
}

// Dot advances the raster counter by one PPU clock (three per CPU clock).
// Wrapping through (0, 0) sets the NewFrame latch. The PPUSTATUS vblank bit
// is set at dot 1 of scanline 241 and cleared at dot 1 of scanline 261
// (pre-render).
func (p *PPU) Dot() {
	p.ScreenX++
	if p.ScreenX >= dotsPerScanline {
		p.ScreenX = 0
		p.ScreenY++
		if p.ScreenY >= scanlinesPerFrame {
			p.ScreenY = 0
			p.NewFrame = true
		}
	}
	if p.ScreenY == 241 && p.ScreenX == 1 {
		p.registers[RegPPUSTATUS] |= vblankBit
	}
	if p.ScreenY == 261 && p.ScreenX == 1 {
		p.registers[RegPPUSTATUS] &^= vblankBit
	}
}

// Sync consumes and returns the NewFrame latch.
func (p *PPU) Sync() bool {
	v := p.NewFrame
	p.NewFrame = false
	return v
}

// GetRegister reads one of the eight CPU-visible ports. Reading PPUSTATUS
// additionally clears the vblank bit, matching real hardware's read-clears
// semantics for that one port.
func (p *PPU) GetRegister(i byte) byte {
	v := p.registers[i&0x7]
	if i&0x7 == RegPPUSTATUS {
		p.registers[RegPPUSTATUS] &^= vblankBit
	}
	return v
}

// SetRegister latches a byte written to one of the eight CPU-visible ports.
func (p *PPU) SetRegister(i byte, v byte) {
	p.registers[i&0x7] = v
}
