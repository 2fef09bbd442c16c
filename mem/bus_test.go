package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePPU struct {
	regs [8]byte
}

func (f *fakePPU) GetRegister(i byte) byte   { return f.regs[i&0x7] }
func (f *fakePPU) SetRegister(i byte, v byte) { f.regs[i&0x7] = v }

type fakeCart struct {
	prg [0x8000]byte
}

func (f *fakeCart) ReadPRG(addr uint16) byte      { return f.prg[addr&0x7FFF] }
func (f *fakeCart) WritePRG(addr uint16, v byte) { f.prg[addr&0x7FFF] = v }

func TestRAMMirroring(t *testing.T) {
	b := NewBus(nil, nil)
	b.Write(0x0001, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0801))
	assert.Equal(t, byte(0x42), b.Read(0x1001))
	assert.Equal(t, byte(0x42), b.Read(0x1801))
}

func TestPPURegisterMirroring(t *testing.T) {
	p := &fakePPU{}
	b := NewBus(p, nil)
	b.Write(0x2000, 0x11)
	assert.Equal(t, byte(0x11), b.Read(0x2008))
	assert.Equal(t, byte(0x11), b.Read(0x3FF8))
}

func TestCartridgePRGWindow(t *testing.T) {
	cart := &fakeCart{}
	cart.prg[0x0000] = 0x99
	cart.prg[0x7FFF] = 0x77
	b := NewBus(nil, cart)
	assert.Equal(t, byte(0x99), b.Read(0x8000))
	assert.Equal(t, byte(0x77), b.Read(0xFFFF))
}

func TestUnmappedReadFaultsAndReturnsZero(t *testing.T) {
	b := NewBus(nil, nil)
	assert.Equal(t, uint64(0), b.Faults())
	v := b.Read(0x4000)
	assert.Equal(t, byte(0), v)
	assert.Equal(t, uint64(1), b.Faults())
}

func TestUnwiredPPUFaultsOnAccess(t *testing.T) {
	b := NewBus(nil, nil)
	b.Read(0x2000)
	assert.Equal(t, uint64(1), b.Faults())
}

func TestUnmappedWriteIsDroppedAndFaults(t *testing.T) {
	b := NewBus(nil, nil)
	b.Write(0x5000, 0xFF)
	assert.Equal(t, uint64(1), b.Faults())
}
