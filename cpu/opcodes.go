package cpu

// Entry is one slot of the dense 256-entry instruction table: an operation
// handle, an addressing-mode handle, the base cycle cost, the instruction's
// total length in bytes, its mnemonic for trace output, and whether it is
// one of the unintended "illegal" opcodes (trace formatting prefixes those
// with a leading '*').
type Entry struct {
	Operation  func(*Cpu) byte
	Addressing func(*Cpu) byte
	BaseCycles byte
	Length     byte
	Mnemonic   string
	Illegal    bool
}

func e(op func(*Cpu) byte, am func(*Cpu) byte, cycles, length byte, mnemonic string, illegal bool) Entry {
	return Entry{Operation: op, Addressing: am, BaseCycles: cycles, Length: length, Mnemonic: mnemonic, Illegal: illegal}
}

// InstructionSet is indexed directly by opcode byte. Nil Operation/Addressing
// (the zero Entry) means the opcode is unimplemented: 0x00 (BRK) and a
// handful of rare illegal opcodes not exercised by nestest.
var InstructionSet = [256]Entry{
	0x00: {}, // BRK -- deliberately unimplemented, see ErrUnimplementedOpcode
	0x01: e(opORA, addrIdx, 6, 2, "ORA", false),
	0x03: e(opSLO, addrIdx, 8, 2, "SLO", true),
	0x04: e(opNOPRead, addrZpg, 3, 2, "NOP", true),
	0x05: e(opORA, addrZpg, 3, 2, "ORA", false),
	0x06: e(opASL, addrZpg, 5, 2, "ASL", false),
	0x07: e(opSLO, addrZpg, 5, 2, "SLO", true),
	0x08: e(opPHP, addrImp, 3, 1, "PHP", false),
	0x09: e(opORA, addrImm, 2, 2, "ORA", false),
	0x0A: e(opASL, addrAcc, 2, 1, "ASL", false),
	0x0C: e(opNOPRead, addrAbs, 4, 3, "NOP", true),
	0x0D: e(opORA, addrAbs, 4, 3, "ORA", false),
	0x0E: e(opASL, addrAbs, 6, 3, "ASL", false),
	0x0F: e(opSLO, addrAbs, 6, 3, "SLO", true),

	0x10: e(opBPL, addrRel, 2, 2, "BPL", false),
	0x11: e(opORA, addrIdy, 5, 2, "ORA", false),
	0x13: e(opSLO, addrIdy, 8, 2, "SLO", true),
	0x14: e(opNOPRead, addrZpx, 4, 2, "NOP", true),
	0x15: e(opORA, addrZpx, 4, 2, "ORA", false),
	0x16: e(opASL, addrZpx, 6, 2, "ASL", false),
	0x17: e(opSLO, addrZpx, 6, 2, "SLO", true),
	0x18: e(opCLC, addrImp, 2, 1, "CLC", false),
	0x19: e(opORA, addrAby, 4, 3, "ORA", false),
	0x1A: e(opNOP, addrImp, 2, 1, "NOP", true),
	0x1B: e(opSLO, addrAby, 7, 3, "SLO", true),
	0x1C: e(opNOPRead, addrAbx, 4, 3, "NOP", true),
	0x1D: e(opORA, addrAbx, 4, 3, "ORA", false),
	0x1E: e(opASL, addrAbx, 7, 3, "ASL", false),
	0x1F: e(opSLO, addrAbx, 7, 3, "SLO", true),

	0x20: e(opJSR, addrAbs, 6, 3, "JSR", false),
	0x21: e(opAND, addrIdx, 6, 2, "AND", false),
	0x23: e(opRLA, addrIdx, 8, 2, "RLA", true),
	0x24: e(opBIT, addrZpg, 3, 2, "BIT", false),
	0x25: e(opAND, addrZpg, 3, 2, "AND", false),
	0x26: e(opROL, addrZpg, 5, 2, "ROL", false),
	0x27: e(opRLA, addrZpg, 5, 2, "RLA", true),
	0x28: e(opPLP, addrImp, 4, 1, "PLP", false),
	0x29: e(opAND, addrImm, 2, 2, "AND", false),
	0x2A: e(opROL, addrAcc, 2, 1, "ROL", false),
	0x2C: e(opBIT, addrAbs, 4, 3, "BIT", false),
	0x2D: e(opAND, addrAbs, 4, 3, "AND", false),
	0x2E: e(opROL, addrAbs, 6, 3, "ROL", false),
	0x2F: e(opRLA, addrAbs, 6, 3, "RLA", true),

	0x30: e(opBMI, addrRel, 2, 2, "BMI", false),
	0x31: e(opAND, addrIdy, 5, 2, "AND", false),
	0x33: e(opRLA, addrIdy, 8, 2, "RLA", true),
	0x34: e(opNOPRead, addrZpx, 4, 2, "NOP", true),
	0x35: e(opAND, addrZpx, 4, 2, "AND", false),
	0x36: e(opROL, addrZpx, 6, 2, "ROL", false),
	0x37: e(opRLA, addrZpx, 6, 2, "RLA", true),
	0x38: e(opSEC, addrImp, 2, 1, "SEC", false),
	0x39: e(opAND, addrAby, 4, 3, "AND", false),
	0x3A: e(opNOP, addrImp, 2, 1, "NOP", true),
	0x3B: e(opRLA, addrAby, 7, 3, "RLA", true),
	0x3C: e(opNOPRead, addrAbx, 4, 3, "NOP", true),
	0x3D: e(opAND, addrAbx, 4, 3, "AND", false),
	0x3E: e(opROL, addrAbx, 7, 3, "ROL", false),
	0x3F: e(opRLA, addrAbx, 7, 3, "RLA", true),

	0x40: e(opRTI, addrImp, 6, 1, "RTI", false),
	0x41: e(opEOR, addrIdx, 6, 2, "EOR", false),
	0x43: e(opSRE, addrIdx, 8, 2, "SRE", true),
	0x44: e(opNOPRead, addrZpg, 3, 2, "NOP", true),
	0x45: e(opEOR, addrZpg, 3, 2, "EOR", false),
	0x46: e(opLSR, addrZpg, 5, 2, "LSR", false),
	0x47: e(opSRE, addrZpg, 5, 2, "SRE", true),
	0x48: e(opPHA, addrImp, 3, 1, "PHA", false),
	0x49: e(opEOR, addrImm, 2, 2, "EOR", false),
	0x4A: e(opLSR, addrAcc, 2, 1, "LSR", false),
	0x4C: e(opJMP, addrAbs, 3, 3, "JMP", false),
	0x4D: e(opEOR, addrAbs, 4, 3, "EOR", false),
	0x4E: e(opLSR, addrAbs, 6, 3, "LSR", false),
	0x4F: e(opSRE, addrAbs, 6, 3, "SRE", true),

	0x50: e(opBVC, addrRel, 2, 2, "BVC", false),
	0x51: e(opEOR, addrIdy, 5, 2, "EOR", false),
	0x53: e(opSRE, addrIdy, 8, 2, "SRE", true),
	0x54: e(opNOPRead, addrZpx, 4, 2, "NOP", true),
	0x55: e(opEOR, addrZpx, 4, 2, "EOR", false),
	0x56: e(opLSR, addrZpx, 6, 2, "LSR", false),
	0x57: e(opSRE, addrZpx, 6, 2, "SRE", true),
	0x58: e(opCLI, addrImp, 2, 1, "CLI", false),
	0x59: e(opEOR, addrAby, 4, 3, "EOR", false),
	0x5A: e(opNOP, addrImp, 2, 1, "NOP", true),
	0x5B: e(opSRE, addrAby, 7, 3, "SRE", true),
	0x5C: e(opNOPRead, addrAbx, 4, 3, "NOP", true),
	0x5D: e(opEOR, addrAbx, 4, 3, "EOR", false),
	0x5E: e(opLSR, addrAbx, 7, 3, "LSR", false),
	0x5F: e(opSRE, addrAbx, 7, 3, "SRE", true),

	0x60: e(opRTS, addrImp, 6, 1, "RTS", false),
	0x61: e(opADC, addrIdx, 6, 2, "ADC", false),
	0x63: e(opRRA, addrIdx, 8, 2, "RRA", true),
	0x64: e(opNOPRead, addrZpg, 3, 2, "NOP", true),
	0x65: e(opADC, addrZpg, 3, 2, "ADC", false),
	0x66: e(opROR, addrZpg, 5, 2, "ROR", false),
	0x67: e(opRRA, addrZpg, 5, 2, "RRA", true),
	0x68: e(opPLA, addrImp, 4, 1, "PLA", false),
	0x69: e(opADC, addrImm, 2, 2, "ADC", false),
	0x6A: e(opROR, addrAcc, 2, 1, "ROR", false),
	0x6C: e(opJMP, addrInd, 5, 3, "JMP", false),
	0x6D: e(opADC, addrAbs, 4, 3, "ADC", false),
	0x6E: e(opROR, addrAbs, 6, 3, "ROR", false),
	0x6F: e(opRRA, addrAbs, 6, 3, "RRA", true),

	0x70: e(opBVS, addrRel, 2, 2, "BVS", false),
	0x71: e(opADC, addrIdy, 5, 2, "ADC", false),
	0x73: e(opRRA, addrIdy, 8, 2, "RRA", true),
	0x74: e(opNOPRead, addrZpx, 4, 2, "NOP", true),
	0x75: e(opADC, addrZpx, 4, 2, "ADC", false),
	0x76: e(opROR, addrZpx, 6, 2, "ROR", false),
	0x77: e(opRRA, addrZpx, 6, 2, "RRA", true),
	0x78: e(opSEI, addrImp, 2, 1, "SEI", false),
	0x79: e(opADC, addrAby, 4, 3, "ADC", false),
	0x7A: e(opNOP, addrImp, 2, 1, "NOP", true),
	0x7B: e(opRRA, addrAby, 7, 3, "RRA", true),
	0x7C: e(opNOPRead, addrAbx, 4, 3, "NOP", true),
	0x7D: e(opADC, addrAbx, 4, 3, "ADC", false),
	0x7E: e(opROR, addrAbx, 7, 3, "ROR", false),
	0x7F: e(opRRA, addrAbx, 7, 3, "RRA", true),

	0x80: e(opNOPRead, addrImm, 2, 2, "NOP", true),
	0x81: e(opSTA, addrIdx, 6, 2, "STA", false),
	0x82: e(opNOPRead, addrImm, 2, 2, "NOP", true),
	0x83: e(opSAX, addrIdx, 6, 2, "SAX", true),
	0x84: e(opSTY, addrZpg, 3, 2, "STY", false),
	0x85: e(opSTA, addrZpg, 3, 2, "STA", false),
	0x86: e(opSTX, addrZpg, 3, 2, "STX", false),
	0x87: e(opSAX, addrZpg, 3, 2, "SAX", true),
	0x88: e(opDEY, addrImp, 2, 1, "DEY", false),
	0x89: e(opNOPRead, addrImm, 2, 2, "NOP", true),
	0x8A: e(opTXA, addrImp, 2, 1, "TXA", false),
	0x8C: e(opSTY, addrAbs, 4, 3, "STY", false),
	0x8D: e(opSTA, addrAbs, 4, 3, "STA", false),
	0x8E: e(opSTX, addrAbs, 4, 3, "STX", false),
	0x8F: e(opSAX, addrAbs, 4, 3, "SAX", true),

	0x90: e(opBCC, addrRel, 2, 2, "BCC", false),
	0x91: e(opSTA, addrIdy, 6, 2, "STA", false),
	0x94: e(opSTY, addrZpx, 4, 2, "STY", false),
	0x95: e(opSTA, addrZpx, 4, 2, "STA", false),
	0x96: e(opSTX, addrZpy, 4, 2, "STX", false),
	0x97: e(opSAX, addrZpy, 4, 2, "SAX", true),
	0x98: e(opTYA, addrImp, 2, 1, "TYA", false),
	0x99: e(opSTA, addrAby, 5, 3, "STA", false),
	0x9A: e(opTXS, addrImp, 2, 1, "TXS", false),
	0x9D: e(opSTA, addrAbx, 5, 3, "STA", false),

	0xA0: e(opLDY, addrImm, 2, 2, "LDY", false),
	0xA1: e(opLDA, addrIdx, 6, 2, "LDA", false),
	0xA2: e(opLDX, addrImm, 2, 2, "LDX", false),
	0xA3: e(opLAX, addrIdx, 6, 2, "LAX", true),
	0xA4: e(opLDY, addrZpg, 3, 2, "LDY", false),
	0xA5: e(opLDA, addrZpg, 3, 2, "LDA", false),
	0xA6: e(opLDX, addrZpg, 3, 2, "LDX", false),
	0xA7: e(opLAX, addrZpg, 3, 2, "LAX", true),
	0xA8: e(opTAY, addrImp, 2, 1, "TAY", false),
	0xA9: e(opLDA, addrImm, 2, 2, "LDA", false),
	0xAA: e(opTAX, addrImp, 2, 1, "TAX", false),
	0xAC: e(opLDY, addrAbs, 4, 3, "LDY", false),
	0xAD: e(opLDA, addrAbs, 4, 3, "LDA", false),
	0xAE: e(opLDX, addrAbs, 4, 3, "LDX", false),
	0xAF: e(opLAX, addrAbs, 4, 3, "LAX", true),

	0xB0: e(opBCS, addrRel, 2, 2, "BCS", false),
	0xB1: e(opLDA, addrIdy, 5, 2, "LDA", false),
	0xB3: e(opLAX, addrIdy, 5, 2, "LAX", true),
	0xB4: e(opLDY, addrZpx, 4, 2, "LDY", false),
	0xB5: e(opLDA, addrZpx, 4, 2, "LDA", false),
	0xB6: e(opLDX, addrZpy, 4, 2, "LDX", false),
	0xB7: e(opLAX, addrZpy, 4, 2, "LAX", true),
	0xB8: e(opCLV, addrImp, 2, 1, "CLV", false),
	0xB9: e(opLDA, addrAby, 4, 3, "LDA", false),
	0xBA: e(opTSX, addrImp, 2, 1, "TSX", false),
	0xBC: e(opLDY, addrAbx, 4, 3, "LDY", false),
	0xBD: e(opLDA, addrAbx, 4, 3, "LDA", false),
	0xBE: e(opLDX, addrAby, 4, 3, "LDX", false),
	0xBF: e(opLAX, addrAby, 4, 3, "LAX", true),

	0xC0: e(opCPY, addrImm, 2, 2, "CPY", false),
	0xC1: e(opCMP, addrIdx, 6, 2, "CMP", false),
	0xC2: e(opNOPRead, addrImm, 2, 2, "NOP", true),
	0xC3: e(opDCP, addrIdx, 8, 2, "DCP", true),
	0xC4: e(opCPY, addrZpg, 3, 2, "CPY", false),
	0xC5: e(opCMP, addrZpg, 3, 2, "CMP", false),
	0xC6: e(opDEC, addrZpg, 5, 2, "DEC", false),
	0xC7: e(opDCP, addrZpg, 5, 2, "DCP", true),
	0xC8: e(opINY, addrImp, 2, 1, "INY", false),
	0xC9: e(opCMP, addrImm, 2, 2, "CMP", false),
	0xCA: e(opDEX, addrImp, 2, 1, "DEX", false),
	0xCC: e(opCPY, addrAbs, 4, 3, "CPY", false),
	0xCD: e(opCMP, addrAbs, 4, 3, "CMP", false),
	0xCE: e(opDEC, addrAbs, 6, 3, "DEC", false),
	0xCF: e(opDCP, addrAbs, 6, 3, "DCP", true),

	0xD0: e(opBNE, addrRel, 2, 2, "BNE", false),
	0xD1: e(opCMP, addrIdy, 5, 2, "CMP", false),
	0xD3: e(opDCP, addrIdy, 8, 2, "DCP", true),
	0xD4: e(opNOPRead, addrZpx, 4, 2, "NOP", true),
	0xD5: e(opCMP, addrZpx, 4, 2, "CMP", false),
	0xD6: e(opDEC, addrZpx, 6, 2, "DEC", false),
	0xD7: e(opDCP, addrZpx, 6, 2, "DCP", true),
	0xD8: e(opCLD, addrImp, 2, 1, "CLD", false),
	0xD9: e(opCMP, addrAby, 4, 3, "CMP", false),
	0xDA: e(opNOP, addrImp, 2, 1, "NOP", true),
	0xDB: e(opDCP, addrAby, 7, 3, "DCP", true),
	0xDC: e(opNOPRead, addrAbx, 4, 3, "NOP", true),
	0xDD: e(opCMP, addrAbx, 4, 3, "CMP", false),
	0xDE: e(opDEC, addrAbx, 7, 3, "DEC", false),
	0xDF: e(opDCP, addrAbx, 7, 3, "DCP", true),

	0xE0: e(opCPX, addrImm, 2, 2, "CPX", false),
	0xE1: e(opSBC, addrIdx, 6, 2, "SBC", false),
	0xE2: e(opNOPRead, addrImm, 2, 2, "NOP", true),
	0xE3: e(opISC, addrIdx, 8, 2, "ISC", true),
	0xE4: e(opCPX, addrZpg, 3, 2, "CPX", false),
	0xE5: e(opSBC, addrZpg, 3, 2, "SBC", false),
	0xE6: e(opINC, addrZpg, 5, 2, "INC", false),
	0xE7: e(opISC, addrZpg, 5, 2, "ISC", true),
	0xE8: e(opINX, addrImp, 2, 1, "INX", false),
	0xE9: e(opSBC, addrImm, 2, 2, "SBC", false),
	0xEA: e(opNOP, addrImp, 2, 1, "NOP", false),
	0xEB: e(opSBC, addrImm, 2, 2, "SBC", true), // unofficial SBC, identical to 0xE9
	0xEC: e(opCPX, addrAbs, 4, 3, "CPX", false),
	0xED: e(opSBC, addrAbs, 4, 3, "SBC", false),
	0xEE: e(opINC, addrAbs, 6, 3, "INC", false),
	0xEF: e(opISC, addrAbs, 6, 3, "ISC", true),

	0xF0: e(opBEQ, addrRel, 2, 2, "BEQ", false),
	0xF1: e(opSBC, addrIdy, 5, 2, "SBC", false),
	0xF3: e(opISC, addrIdy, 8, 2, "ISC", true),
	0xF4: e(opNOPRead, addrZpx, 4, 2, "NOP", true),
	0xF5: e(opSBC, addrZpx, 4, 2, "SBC", false),
	0xF6: e(opINC, addrZpx, 6, 2, "INC", false),
	0xF7: e(opISC, addrZpx, 6, 2, "ISC", true),
	0xF8: e(opSED, addrImp, 2, 1, "SED", false),
	0xF9: e(opSBC, addrAby, 4, 3, "SBC", false),
	0xFA: e(opNOP, addrImp, 2, 1, "NOP", true),
	0xFB: e(opISC, addrAby, 7, 3, "ISC", true),
	0xFC: e(opNOPRead, addrAbx, 4, 3, "NOP", true),
	0xFD: e(opSBC, addrAbx, 4, 3, "SBC", false),
	0xFE: e(opINC, addrAbx, 7, 3, "INC", false),
	0xFF: e(opISC, addrAbx, 7, 3, "ISC", true),
}
