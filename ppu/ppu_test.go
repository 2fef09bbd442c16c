package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotAdvancesScreenPosition(t *testing.T) {
	p := New()
	for i := 0; i < 5; i++ {
		p.Dot()
	}
	assert.Equal(t, 5, p.ScreenX)
	assert.Equal(t, 0, p.ScreenY)
}

func TestDotWrapsScanline(t *testing.T) {
	p := New()
	for i := 0; i < dotsPerScanline; i++ {
		p.Dot()
	}
	assert.Equal(t, 0, p.ScreenX)
	assert.Equal(t, 1, p.ScreenY)
}

func TestDotSetsNewFrameOnWrap(t *testing.T) {
	p := New()
	total := dotsPerScanline * scanlinesPerFrame
	for i := 0; i < total-1; i++ {
		p.Dot()
		assert.False(t, p.NewFrame)
	}
	p.Dot()
	assert.True(t, p.NewFrame)
	assert.Equal(t, 0, p.ScreenX)
	assert.Equal(t, 0, p.ScreenY)
}

func TestSyncConsumesLatch(t *testing.T) {
	p := New()
	p.NewFrame = true
	assert.True(t, p.Sync())
	assert.False(t, p.Sync())
}

func TestRegisterLatchRoundTrip(t *testing.T) {
	p := New()
	p.SetRegister(RegOAMADDR, 0x42)
	assert.Equal(t, byte(0x42), p.GetRegister(RegOAMADDR))
}

func TestPPUStatusReadClearsVblank(t *testing.T) {
	p := New()
	p.registers[RegPPUSTATUS] = vblankBit
	v := p.GetRegister(RegPPUSTATUS)
	assert.Equal(t, byte(vblankBit), v)
	assert.Equal(t, byte(0), p.GetRegister(RegPPUSTATUS))
}

func TestRegisterIndexMirrorsEvery8(t *testing.T) {
	p := New()
	p.SetRegister(RegPPUCTRL, 0x11)
	assert.Equal(t, byte(0x11), p.GetRegister(8))
}
