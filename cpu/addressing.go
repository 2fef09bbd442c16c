package cpu

// Addressing-mode routines. Each one computes AbsAddress (or RelAddress, or
// switches FetchType to Accumulator), advances PC past whatever operand
// bytes it consumes, and returns any page-cross penalty cycles it incurs.
// None of them read the operand itself -- that happens lazily through
// fetch(), once the operation routine decides it needs a value.

func addrImp(c *Cpu) byte {
	return 0
}

func addrAcc(c *Cpu) byte {
	c.FetchType = FetchAccumulator
	return 0
}

func addrImm(c *Cpu) byte {
	c.AbsAddress = c.PC
	c.PC++
	return 0
}

func addrZpg(c *Cpu) byte {
	c.AbsAddress = uint16(c.Read(c.PC))
	c.PC++
	return 0
}

func addrZpx(c *Cpu) byte {
	c.AbsAddress = uint16(c.Read(c.PC) + c.X)
	c.PC++
	return 0
}

func addrZpy(c *Cpu) byte {
	c.AbsAddress = uint16(c.Read(c.PC) + c.Y)
	c.PC++
	return 0
}

func (c *Cpu) readAbs() uint16 {
	addr := c.readWord(c.PC)
	c.PC += 2
	return addr
}

func addrAbs(c *Cpu) byte {
	c.AbsAddress = c.readAbs()
	return 0
}

func addrAbx(c *Cpu) byte {
	base := c.readAbs()
	c.AbsAddress = base + uint16(c.X)
	if (base^c.AbsAddress)&0xFF00 != 0 {
		return 1
	}
	return 0
}

func addrAby(c *Cpu) byte {
	base := c.readAbs()
	c.AbsAddress = base + uint16(c.Y)
	if (base^c.AbsAddress)&0xFF00 != 0 {
		return 1
	}
	return 0
}

// addrInd reproduces the classic 6502 JMP-indirect bug: when the pointer's
// low byte is $FF, the high byte of the target is fetched from the start of
// the same page rather than the next one.
func addrInd(c *Cpu) byte {
	ptr := c.readAbs()
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	lo := c.Read(ptr)
	hi := c.Read(hiAddr)
	c.AbsAddress = (uint16(hi) << 8) | uint16(lo)
	return 0
}

func addrIdx(c *Cpu) byte {
	zp := c.Read(c.PC) + c.X
	c.PC++
	lo := c.Read(uint16(zp))
	hi := c.Read(uint16(zp + 1))
	c.AbsAddress = (uint16(hi) << 8) | uint16(lo)
	return 0
}

func addrIdy(c *Cpu) byte {
	zp := c.Read(c.PC)
	c.PC++
	lo := c.Read(uint16(zp))
	hi := c.Read(uint16(zp + 1))
	base := (uint16(hi) << 8) | uint16(lo)
	c.AbsAddress = base + uint16(c.Y)
	if (base^c.AbsAddress)&0xFF00 != 0 {
		return 1
	}
	return 0
}

func addrRel(c *Cpu) byte {
	c.RelAddress = int8(c.Read(c.PC))
	c.PC++
	return 0
}

// branchTarget computes where a taken branch lands, from the current PC
// (already past the displacement byte).
func (c *Cpu) branchTarget() uint16 {
	return uint16(int32(c.PC) + int32(c.RelAddress))
}
