package cpu

import (
	"fmt"
	"reflect"
	"strings"
)

// addressingNames maps each addressing-mode routine to its short name for
// disassembly, keyed by function pointer since Entry stores the routine
// itself rather than a parallel string field.
var addressingNames = func() map[uintptr]string {
	ptr := func(fn func(*Cpu) byte) uintptr { return reflect.ValueOf(fn).Pointer() }
	return map[uintptr]string{
		ptr(addrImp): "imp",
		ptr(addrAcc): "acc",
		ptr(addrImm): "imm",
		ptr(addrZpg): "zpg",
		ptr(addrZpx): "zpx",
		ptr(addrZpy): "zpy",
		ptr(addrAbs): "abs",
		ptr(addrAbx): "abx",
		ptr(addrAby): "aby",
		ptr(addrInd): "ind",
		ptr(addrIdx): "idx",
		ptr(addrIdy): "idy",
		ptr(addrRel): "rel",
	}
}()

// formatTrace renders the nestest-compatible line for the instruction about
// to execute. Called before PC advances past the opcode byte, so it reads
// operand bytes directly off the bus at PC+1, PC+2 without disturbing the
// pipeline state the addressing-mode routine is about to set up.
func (c *Cpu) formatTrace(opcode byte, entry Entry) string {
	pc := c.PC
	operands := make([]byte, entry.Length-1)
	for i := range operands {
		operands[i] = c.Read(pc + 1 + uint16(i))
	}

	var bytesCol strings.Builder
	all := append([]byte{opcode}, operands...)
	for i := 0; i < 3; i++ {
		if i < len(all) {
			fmt.Fprintf(&bytesCol, "%02X ", all[i])
		} else {
			bytesCol.WriteString("   ")
		}
	}

	star := " "
	if entry.Illegal {
		star = "*"
	}

	operandField := c.disassemble(entry, pc, operands)

	return fmt.Sprintf(
		"%04X  %s%s%s %-28s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		pc, bytesCol.String(), star, entry.Mnemonic, operandField,
		c.A, c.X, c.Y, c.P, c.SP, c.TotalCycles,
	)
}

// disassemble renders the addressing-mode-specific operand field. It peeks
// at memory the way a debugger would, without mutating CPU state.
func (c *Cpu) disassemble(entry Entry, pc uint16, operands []byte) string {
	switch len(operands) {
	case 0:
		if entry.Mnemonic == "ASL" || entry.Mnemonic == "LSR" || entry.Mnemonic == "ROL" || entry.Mnemonic == "ROR" {
			return "A"
		}
		return ""
	case 1:
		b := operands[0]
		switch entry.modeName() {
		case "imm":
			return fmt.Sprintf("#$%02X", b)
		case "zpg":
			return fmt.Sprintf("$%02X = %02X", b, c.Read(uint16(b)))
		case "zpx":
			addr := b + c.X
			return fmt.Sprintf("$%02X,X @ %02X = %02X", b, addr, c.Read(uint16(addr)))
		case "zpy":
			addr := b + c.Y
			return fmt.Sprintf("$%02X,Y @ %02X = %02X", b, addr, c.Read(uint16(addr)))
		case "idx":
			zp := b + c.X
			lo := c.Read(uint16(zp))
			hi := c.Read(uint16(zp + 1))
			addr := (uint16(hi) << 8) | uint16(lo)
			return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", b, zp, addr, c.Read(addr))
		case "idy":
			lo := c.Read(uint16(b))
			hi := c.Read(uint16(b + 1))
			base := (uint16(hi) << 8) | uint16(lo)
			addr := base + uint16(c.Y)
			return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", b, base, addr, c.Read(addr))
		case "rel":
			target := uint16(int32(pc+2) + int32(int8(b)))
			return fmt.Sprintf("$%04X", target)
		}
	case 2:
		lo, hi := operands[0], operands[1]
		addr := (uint16(hi) << 8) | uint16(lo)
		switch entry.modeName() {
		case "abs":
			if entry.Mnemonic == "JMP" || entry.Mnemonic == "JSR" {
				return fmt.Sprintf("$%04X", addr)
			}
			return fmt.Sprintf("$%04X = %02X", addr, c.Read(addr))
		case "abx":
			eff := addr + uint16(c.X)
			return fmt.Sprintf("$%04X,X @ %04X = %02X", addr, eff, c.Read(eff))
		case "aby":
			eff := addr + uint16(c.Y)
			return fmt.Sprintf("$%04X,Y @ %04X = %02X", addr, eff, c.Read(eff))
		case "ind":
			var effLo, effHi uint16
			if lo == 0xFF {
				effLo, effHi = addr, addr&0xFF00
			} else {
				effLo, effHi = addr, addr+1
			}
			target := (uint16(c.Read(effHi)) << 8) | uint16(c.Read(effLo))
			return fmt.Sprintf("($%04X) = %04X", addr, target)
		}
	}
	return ""
}

// modeName reports the addressing mode's short name for disassembly
// purposes, recovered from the function pointer identity rather than
// storing a parallel string field on every table entry.
func (entry Entry) modeName() string {
	return addressingNames[reflect.ValueOf(entry.Addressing).Pointer()]
}
