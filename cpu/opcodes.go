package cpu

// This file implements the 256-entry instruction dispatcher (component
// C5): a base-cycle table indexed by opcode plus a switch that decodes
// each opcode into its addressing mode and ALU/control-flow handler,
// returning any extra cycles (page-cross, 16-bit-operand, branch-taken)
// earned during execution. dispatch() adds base+extra to the running
// cycle counter exactly as specified.

// baseCycles holds the 8-bit-width reference cycle count for every
// opcode. Width extras (when M=0 or the index width is 0) and
// page-cross extras are added by execute() for the specific opcodes
// the spec flags as variable-cycle.
var baseCycles = [256]int{
	0x00: 7, 0x01: 6, 0x02: 7, 0x03: 4, 0x04: 5, 0x05: 3, 0x06: 5, 0x07: 6,
	0x08: 3, 0x09: 2, 0x0A: 2, 0x0B: 4, 0x0C: 6, 0x0D: 4, 0x0E: 6, 0x0F: 5,
	0x10: 2, 0x11: 5, 0x12: 5, 0x13: 7, 0x14: 5, 0x15: 4, 0x16: 6, 0x17: 6,
	0x18: 2, 0x19: 4, 0x1A: 2, 0x1B: 2, 0x1C: 6, 0x1D: 4, 0x1E: 7, 0x1F: 5,
	0x20: 6, 0x21: 6, 0x22: 8, 0x23: 4, 0x24: 3, 0x25: 3, 0x26: 5, 0x27: 6,
	0x28: 4, 0x29: 2, 0x2A: 2, 0x2B: 5, 0x2C: 4, 0x2D: 4, 0x2E: 6, 0x2F: 5,
	0x30: 2, 0x31: 5, 0x32: 5, 0x33: 7, 0x34: 4, 0x35: 4, 0x36: 6, 0x37: 6,
	0x38: 2, 0x39: 4, 0x3A: 2, 0x3B: 2, 0x3C: 4, 0x3D: 4, 0x3E: 7, 0x3F: 5,
	0x40: 6, 0x41: 6, 0x42: 2, 0x43: 4, 0x44: 7, 0x45: 3, 0x46: 5, 0x47: 6,
	0x48: 3, 0x49: 2, 0x4A: 2, 0x4B: 3, 0x4C: 3, 0x4D: 4, 0x4E: 6, 0x4F: 5,
	0x50: 2, 0x51: 5, 0x52: 5, 0x53: 7, 0x54: 7, 0x55: 4, 0x56: 6, 0x57: 6,
	0x58: 2, 0x59: 4, 0x5A: 3, 0x5B: 2, 0x5C: 4, 0x5D: 4, 0x5E: 7, 0x5F: 5,
	0x60: 6, 0x61: 6, 0x62: 6, 0x63: 4, 0x64: 3, 0x65: 3, 0x66: 5, 0x67: 6,
	0x68: 4, 0x69: 2, 0x6A: 2, 0x6B: 6, 0x6C: 5, 0x6D: 4, 0x6E: 6, 0x6F: 5,
	0x70: 2, 0x71: 5, 0x72: 5, 0x73: 7, 0x74: 4, 0x75: 4, 0x76: 6, 0x77: 6,
	0x78: 2, 0x79: 4, 0x7A: 4, 0x7B: 2, 0x7C: 6, 0x7D: 4, 0x7E: 7, 0x7F: 5,
	0x80: 3, 0x81: 6, 0x82: 4, 0x83: 4, 0x84: 3, 0x85: 3, 0x86: 3, 0x87: 6,
	0x88: 2, 0x89: 2, 0x8A: 2, 0x8B: 3, 0x8C: 4, 0x8D: 4, 0x8E: 4, 0x8F: 5,
	0x90: 2, 0x91: 6, 0x92: 5, 0x93: 7, 0x94: 4, 0x95: 4, 0x96: 4, 0x97: 6,
	0x98: 2, 0x99: 5, 0x9A: 2, 0x9B: 2, 0x9C: 4, 0x9D: 5, 0x9E: 5, 0x9F: 5,
	0xA0: 2, 0xA1: 6, 0xA2: 2, 0xA3: 4, 0xA4: 3, 0xA5: 3, 0xA6: 3, 0xA7: 6,
	0xA8: 2, 0xA9: 2, 0xAA: 2, 0xAB: 4, 0xAC: 4, 0xAD: 4, 0xAE: 4, 0xAF: 5,
	0xB0: 2, 0xB1: 5, 0xB2: 5, 0xB3: 7, 0xB4: 4, 0xB5: 4, 0xB6: 4, 0xB7: 6,
	0xB8: 2, 0xB9: 4, 0xBA: 2, 0xBB: 2, 0xBC: 4, 0xBD: 4, 0xBE: 4, 0xBF: 5,
	0xC0: 2, 0xC1: 6, 0xC2: 3, 0xC3: 4, 0xC4: 3, 0xC5: 3, 0xC6: 5, 0xC7: 6,
	0xC8: 2, 0xC9: 2, 0xCA: 2, 0xCB: 3, 0xCC: 4, 0xCD: 4, 0xCE: 6, 0xCF: 5,
	0xD0: 2, 0xD1: 5, 0xD2: 5, 0xD3: 7, 0xD4: 6, 0xD5: 4, 0xD6: 6, 0xD7: 6,
	0xD8: 2, 0xD9: 4, 0xDA: 3, 0xDB: 3, 0xDC: 6, 0xDD: 4, 0xDE: 7, 0xDF: 5,
	0xE0: 2, 0xE1: 6, 0xE2: 3, 0xE3: 4, 0xE4: 3, 0xE5: 3, 0xE6: 5, 0xE7: 6,
	0xE8: 2, 0xE9: 2, 0xEA: 2, 0xEB: 3, 0xEC: 4, 0xED: 4, 0xEE: 6, 0xEF: 5,
	0xF0: 2, 0xF1: 5, 0xF2: 5, 0xF3: 7, 0xF4: 5, 0xF5: 4, 0xF6: 6, 0xF7: 6,
	0xF8: 2, 0xF9: 4, 0xFA: 4, 0xFB: 2, 0xFC: 8, 0xFD: 4, 0xFE: 7, 0xFF: 5,
}

// widthExtra is the documented extra cycle charged when the relevant
// register (accumulator or index) is operating at 16-bit width.
func widthExtra(wide bool) int {
	if wide {
		return 1
	}
	return 0
}

func crossExtra(crossed bool) int {
	if crossed {
		return 1
	}
	return 0
}

// dispatch fetches and executes one instruction, adding its base and
// extra cycles to the running total.
func (c *Cpu) dispatch() {
	op := c.fetch()
	extra := c.execute(op)
	c.cycles += uint64(baseCycles[op] + extra)
}

// memStoreA/X/Y/Z write a register (or zero) to a memory operand at
// the register's current width.
func (c *Cpu) memStoreA(addr uint32) {
	wide := !c.flagM()
	c.writeOperand(addr, c.A, wide)
}

func (c *Cpu) memStoreX(addr uint32) {
	wide := !c.flagXWide()
	c.writeOperand(addr, c.X, wide)
}

func (c *Cpu) memStoreY(addr uint32) {
	wide := !c.flagXWide()
	c.writeOperand(addr, c.Y, wide)
}

func (c *Cpu) memStoreZ(addr uint32) {
	wide := !c.flagM()
	c.writeOperand(addr, 0, wide)
}

func (c *Cpu) loadA(addr uint32) int {
	wide := !c.flagM()
	v := c.readOperand(addr, wide)
	c.setNZA(v)
	c.storeA(v, wide)
	return widthExtra(wide)
}

func (c *Cpu) loadX(addr uint32) int {
	wide := !c.flagXWide()
	v := c.maskIndex(c.readOperand(addr, wide))
	c.setNZIndex(v)
	c.X = v
	return widthExtra(wide)
}

func (c *Cpu) loadY(addr uint32) int {
	wide := !c.flagXWide()
	v := c.maskIndex(c.readOperand(addr, wide))
	c.setNZIndex(v)
	c.Y = v
	return widthExtra(wide)
}

// branch takes a short PC-relative conditional branch if cond is true,
// always consuming the offset byte. baseCycles for conditional
// branches covers the not-taken case; returns the extra cycles earned
// when taken (1, plus 1 more if the target crosses a page).
func (c *Cpu) branch(cond bool) int {
	target, crossed := c.addrPCRelative()
	if !cond {
		return 0
	}
	c.PC = target
	return 1 + crossExtra(crossed)
}

// braAlways takes BRA, which is unconditional and whose baseCycles
// already accounts for the taken case; only a page-cross is extra.
func (c *Cpu) braAlways() int {
	target, crossed := c.addrPCRelative()
	c.PC = target
	return crossExtra(crossed)
}

// execute decodes and runs opcode op, returning extra cycles beyond
// baseCycles[op].
func (c *Cpu) execute(op uint8) int {
	switch op {

	// --- control flow / stack-frame management ---
	case 0x00: // BRK
		c.iBRK()
	case 0x02: // COP
		c.iCOP()
	case 0x20: // JSR a
		target := c.fetchWord()
		c.pushWord(c.PC - 1)
		c.PC = target
	case 0x22: // JSL al
		addr := c.fetchLong()
		c.pushByte(c.PBR)
		c.pushWord(c.PC - 1)
		c.PC = uint16(addr)
		c.PBR = uint8(addr >> 16)
	case 0x40: // RTI
		c.iRTI()
	case 0x4C: // JMP a
		c.PC = c.fetchWord()
	case 0x5C: // JML al
		addr := c.fetchLong()
		c.PC = uint16(addr)
		c.PBR = uint8(addr >> 16)
	case 0x60: // RTS
		c.iRTS()
	case 0x62: // PER
		v := c.addrPCRelativeLong()
		c.pushWord(v)
	case 0x6B: // RTL
		c.iRTL()
	case 0x6C: // JMP (a)
		c.PC = c.addrAbsoluteIndirect()
	case 0x7C: // JMP (a,x)
		c.PC = c.addrAbsoluteIndirectX()
	case 0x80: // BRA r
		return c.braAlways()
	case 0x82: // BRL rl
		c.PC = c.addrPCRelativeLong()
	case 0xDC: // JML (a) -- absolute indirect long
		addr := c.addrAbsoluteIndirectLong()
		c.PC = uint16(addr)
		c.PBR = uint8(addr >> 16)
	case 0xD4: // PEI s
		off := c.fetch()
		dp := c.D + uint16(off)
		c.pushWord(c.dpPointer16(dp))
	case 0xF4: // PEA s
		c.pushWord(c.fetchWord())
	case 0xFC: // JSR (a,x)
		target := c.addrAbsoluteIndirectX()
		c.pushWord(c.PC - 1)
		c.PC = target

	// --- branches ---
	case 0x10: // BPL
		return c.branch(!c.testP(P_NEGATIVE))
	case 0x30: // BMI
		return c.branch(c.testP(P_NEGATIVE))
	case 0x50: // BVC
		return c.branch(!c.testP(P_OVERFLOW))
	case 0x70: // BVS
		return c.branch(c.testP(P_OVERFLOW))
	case 0x90: // BCC
		return c.branch(!c.testP(P_CARRY))
	case 0xB0: // BCS
		return c.branch(c.testP(P_CARRY))
	case 0xD0: // BNE
		return c.branch(!c.testP(P_ZERO))
	case 0xF0: // BEQ
		return c.branch(c.testP(P_ZERO))

	// --- flag instructions ---
	case 0x18: // CLC
		c.clearP(P_CARRY)
	case 0x38: // SEC
		c.setP(P_CARRY)
	case 0x58: // CLI
		c.clearP(P_INTERRUPT)
	case 0x78: // SEI
		c.setP(P_INTERRUPT)
	case 0xB8: // CLV
		c.clearP(P_OVERFLOW)
	case 0xD8: // CLD
		c.clearP(P_DECIMAL)
	case 0xF8: // SED
		c.setP(P_DECIMAL)
	case 0xC2: // REP #
		c.iREP(c.fetch())
	case 0xE2: // SEP #
		c.iSEP(c.fetch())
	case 0xFB: // XCE
		c.iXCE()
	case 0xEB: // XBA
		c.iXBA()
	case 0xCB: // WAI
		c.iWAI()
	case 0xDB: // STP
		c.iSTP()
	case 0xEA: // NOP
	case 0x42: // WDM -- documented two-byte NOP
		c.PC++

	// --- stack push/pull ---
	case 0x08: // PHP
		c.pushByte(c.P)
	case 0x28: // PLP
		p := c.pullByte()
		if c.E {
			p |= P_M | P_X
		}
		c.P = p
	case 0x48: // PHA
		if c.flagM() {
			c.pushByte(uint8(c.A))
		} else {
			c.pushWord(c.A)
		}
	case 0x68: // PLA
		var v uint16
		wide := !c.flagM()
		if wide {
			v = c.pullWord()
		} else {
			v = uint16(c.pullByte())
		}
		c.setNZA(v)
		c.storeA(v, wide)
	case 0x5A: // PHY
		if c.flagXWide() {
			c.pushByte(uint8(c.Y))
		} else {
			c.pushWord(c.Y)
		}
	case 0x7A: // PLY
		var v uint16
		wide := !c.flagXWide()
		if wide {
			v = c.pullWord()
		} else {
			v = uint16(c.pullByte())
		}
		c.setNZIndex(v)
		c.Y = v
	case 0xDA: // PHX
		if c.flagXWide() {
			c.pushByte(uint8(c.X))
		} else {
			c.pushWord(c.X)
		}
	case 0xFA: // PLX
		var v uint16
		wide := !c.flagXWide()
		if wide {
			v = c.pullWord()
		} else {
			v = uint16(c.pullByte())
		}
		c.setNZIndex(v)
		c.X = v
	case 0x8B: // PHB
		c.pushByte(c.DBR)
	case 0xAB: // PLB
		c.DBR = c.pullByte()
		c.setNZ8(c.DBR)
	case 0x0B: // PHD
		c.pushWord(c.D)
	case 0x2B: // PLD
		c.D = c.pullWord()
		c.setNZ16(c.D)
	case 0x4B: // PHK
		c.pushByte(c.PBR)

	// --- register transfers ---
	case 0xA8: // TAY
		v := c.maskIndex(c.A)
		c.setNZIndex(v)
		c.Y = v
	case 0xAA: // TAX
		v := c.maskIndex(c.A)
		c.setNZIndex(v)
		c.X = v
	case 0x8A: // TXA
		wide := !c.flagM()
		v := c.X & maskFor(wide)
		c.setNZA(v)
		c.storeA(v, wide)
	case 0x98: // TYA
		wide := !c.flagM()
		v := c.Y & maskFor(wide)
		c.setNZA(v)
		c.storeA(v, wide)
	case 0x9B: // TXY
		v := c.maskIndex(c.X)
		c.setNZIndex(v)
		c.Y = v
	case 0xBB: // TYX
		v := c.maskIndex(c.Y)
		c.setNZIndex(v)
		c.X = v
	case 0xBA: // TSX
		v := c.maskIndex(c.S)
		c.setNZIndex(v)
		c.X = v
	case 0x9A: // TXS
		if c.E {
			c.S = 0x0100 | (c.X & 0xFF)
		} else {
			c.S = c.X
		}
	case 0x5B: // TCD
		c.iTCD()
	case 0x7B: // TDC
		c.iTDC()
	case 0x1B: // TCS
		c.iTCS()
	case 0x3B: // TSC
		c.iTSC()

	// --- increment/decrement registers ---
	case 0x88: // DEY
		v := c.maskIndex(c.Y - 1)
		c.setNZIndex(v)
		c.Y = v
	case 0xC8: // INY
		v := c.maskIndex(c.Y + 1)
		c.setNZIndex(v)
		c.Y = v
	case 0xCA: // DEX
		v := c.maskIndex(c.X - 1)
		c.setNZIndex(v)
		c.X = v
	case 0xE8: // INX
		v := c.maskIndex(c.X + 1)
		c.setNZIndex(v)
		c.X = v
	case 0x1A: // INC A
		c.incDecAcc(1)
	case 0x3A: // DEC A
		c.incDecAcc(-1)

	// --- accumulator shifts ---
	case 0x0A: // ASL A
		c.shiftAcc(aslShift)
	case 0x2A: // ROL A
		c.shiftAcc(c.rolShift)
	case 0x4A: // LSR A
		c.shiftAcc(lsrShift)
	case 0x6A: // ROR A
		c.shiftAcc(c.rorShift)

	// --- block move ---
	case 0x44: // MVP
		c.execBlockMove(c.PC-1, true)
	case 0x54: // MVN
		c.execBlockMove(c.PC-1, false)

	// --- ADC ---
	case 0x69:
		return c.adcFrom(c.addrImmediate(!c.flagM()))
	case 0x6D:
		return c.adcFrom(c.addrAbsolute())
	case 0x6F:
		return c.adcFrom(c.addrAbsoluteLong())
	case 0x65:
		addr, ex := c.addrDirectPage()
		return ex + c.adcFrom(addr)
	case 0x72:
		addr, ex := c.addrDPIndirect()
		return ex + c.adcFrom(addr)
	case 0x67:
		addr, ex := c.addrDPIndirectLong()
		return ex + c.adcFrom(addr)
	case 0x7D:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.adcFrom(addr)
	case 0x79:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.adcFrom(addr)
	case 0x7F:
		return c.adcFrom(c.addrAbsoluteLongX())
	case 0x75:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.adcFrom(addr)
	case 0x61:
		addr, ex := c.addrDPIndexedIndirectX()
		return ex + c.adcFrom(addr)
	case 0x71:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		return ex + crossExtra(crossed) + c.adcFrom(addr)
	case 0x77:
		addr, ex := c.addrDPIndirectLongY()
		return ex + c.adcFrom(addr)
	case 0x63:
		return c.adcFrom(c.addrStackRelative())
	case 0x73:
		return c.adcFrom(c.addrStackRelativeIndirectIndexedY())

	// --- SBC ---
	case 0xE9:
		return c.sbcFrom(c.addrImmediate(!c.flagM()))
	case 0xED:
		return c.sbcFrom(c.addrAbsolute())
	case 0xEF:
		return c.sbcFrom(c.addrAbsoluteLong())
	case 0xE5:
		addr, ex := c.addrDirectPage()
		return ex + c.sbcFrom(addr)
	case 0xF2:
		addr, ex := c.addrDPIndirect()
		return ex + c.sbcFrom(addr)
	case 0xE7:
		addr, ex := c.addrDPIndirectLong()
		return ex + c.sbcFrom(addr)
	case 0xFD:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.sbcFrom(addr)
	case 0xF9:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.sbcFrom(addr)
	case 0xFF:
		return c.sbcFrom(c.addrAbsoluteLongX())
	case 0xF5:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.sbcFrom(addr)
	case 0xE1:
		addr, ex := c.addrDPIndexedIndirectX()
		return ex + c.sbcFrom(addr)
	case 0xF1:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		return ex + crossExtra(crossed) + c.sbcFrom(addr)
	case 0xF7:
		addr, ex := c.addrDPIndirectLongY()
		return ex + c.sbcFrom(addr)
	case 0xE3:
		return c.sbcFrom(c.addrStackRelative())
	case 0xF3:
		return c.sbcFrom(c.addrStackRelativeIndirectIndexedY())

	// --- AND ---
	case 0x29:
		return c.andFrom(c.addrImmediate(!c.flagM()))
	case 0x2D:
		return c.andFrom(c.addrAbsolute())
	case 0x2F:
		return c.andFrom(c.addrAbsoluteLong())
	case 0x25:
		addr, ex := c.addrDirectPage()
		return ex + c.andFrom(addr)
	case 0x32:
		addr, ex := c.addrDPIndirect()
		return ex + c.andFrom(addr)
	case 0x27:
		addr, ex := c.addrDPIndirectLong()
		return ex + c.andFrom(addr)
	case 0x3D:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.andFrom(addr)
	case 0x39:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.andFrom(addr)
	case 0x3F:
		return c.andFrom(c.addrAbsoluteLongX())
	case 0x35:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.andFrom(addr)
	case 0x21:
		addr, ex := c.addrDPIndexedIndirectX()
		return ex + c.andFrom(addr)
	case 0x31:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		return ex + crossExtra(crossed) + c.andFrom(addr)
	case 0x37:
		addr, ex := c.addrDPIndirectLongY()
		return ex + c.andFrom(addr)
	case 0x23:
		return c.andFrom(c.addrStackRelative())
	case 0x33:
		return c.andFrom(c.addrStackRelativeIndirectIndexedY())

	// --- ORA ---
	case 0x09:
		return c.oraFrom(c.addrImmediate(!c.flagM()))
	case 0x0D:
		return c.oraFrom(c.addrAbsolute())
	case 0x0F:
		return c.oraFrom(c.addrAbsoluteLong())
	case 0x05:
		addr, ex := c.addrDirectPage()
		return ex + c.oraFrom(addr)
	case 0x12:
		addr, ex := c.addrDPIndirect()
		return ex + c.oraFrom(addr)
	case 0x07:
		addr, ex := c.addrDPIndirectLong()
		return ex + c.oraFrom(addr)
	case 0x1D:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.oraFrom(addr)
	case 0x19:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.oraFrom(addr)
	case 0x1F:
		return c.oraFrom(c.addrAbsoluteLongX())
	case 0x15:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.oraFrom(addr)
	case 0x01:
		addr, ex := c.addrDPIndexedIndirectX()
		return ex + c.oraFrom(addr)
	case 0x11:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		return ex + crossExtra(crossed) + c.oraFrom(addr)
	case 0x17:
		addr, ex := c.addrDPIndirectLongY()
		return ex + c.oraFrom(addr)
	case 0x03:
		return c.oraFrom(c.addrStackRelative())
	case 0x13:
		return c.oraFrom(c.addrStackRelativeIndirectIndexedY())

	// --- EOR ---
	case 0x49:
		return c.eorFrom(c.addrImmediate(!c.flagM()))
	case 0x4D:
		return c.eorFrom(c.addrAbsolute())
	case 0x4F:
		return c.eorFrom(c.addrAbsoluteLong())
	case 0x45:
		addr, ex := c.addrDirectPage()
		return ex + c.eorFrom(addr)
	case 0x52:
		addr, ex := c.addrDPIndirect()
		return ex + c.eorFrom(addr)
	case 0x47:
		addr, ex := c.addrDPIndirectLong()
		return ex + c.eorFrom(addr)
	case 0x5D:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.eorFrom(addr)
	case 0x59:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.eorFrom(addr)
	case 0x5F:
		return c.eorFrom(c.addrAbsoluteLongX())
	case 0x55:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.eorFrom(addr)
	case 0x41:
		addr, ex := c.addrDPIndexedIndirectX()
		return ex + c.eorFrom(addr)
	case 0x51:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		return ex + crossExtra(crossed) + c.eorFrom(addr)
	case 0x57:
		addr, ex := c.addrDPIndirectLongY()
		return ex + c.eorFrom(addr)
	case 0x43:
		return c.eorFrom(c.addrStackRelative())
	case 0x53:
		return c.eorFrom(c.addrStackRelativeIndirectIndexedY())

	// --- CMP ---
	case 0xC9:
		addr := c.addrImmediate(!c.flagM())
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return widthExtra(!c.flagM())
	case 0xCD:
		c.compare(c.A, c.readOperand(c.addrAbsolute(), !c.flagM()), !c.flagM())
	case 0xCF:
		c.compare(c.A, c.readOperand(c.addrAbsoluteLong(), !c.flagM()), !c.flagM())
	case 0xC5:
		addr, ex := c.addrDirectPage()
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex
	case 0xD2:
		addr, ex := c.addrDPIndirect()
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex
	case 0xC7:
		addr, ex := c.addrDPIndirectLong()
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex
	case 0xDD:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return crossExtra(crossed)
	case 0xD9:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return crossExtra(crossed)
	case 0xDF:
		c.compare(c.A, c.readOperand(c.addrAbsoluteLongX(), !c.flagM()), !c.flagM())
	case 0xD5:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex
	case 0xC1:
		addr, ex := c.addrDPIndexedIndirectX()
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex
	case 0xD1:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex + crossExtra(crossed)
	case 0xD7:
		addr, ex := c.addrDPIndirectLongY()
		c.compare(c.A, c.readOperand(addr, !c.flagM()), !c.flagM())
		return ex
	case 0xC3:
		c.compare(c.A, c.readOperand(c.addrStackRelative(), !c.flagM()), !c.flagM())
	case 0xD3:
		c.compare(c.A, c.readOperand(c.addrStackRelativeIndirectIndexedY(), !c.flagM()), !c.flagM())

	// --- CPX/CPY ---
	case 0xE0:
		wide := !c.flagXWide()
		c.compare(c.X, c.readOperand(c.addrImmediate(wide), wide), wide)
		return widthExtra(wide)
	case 0xEC:
		wide := !c.flagXWide()
		c.compare(c.X, c.readOperand(c.addrAbsolute(), wide), wide)
	case 0xE4:
		wide := !c.flagXWide()
		addr, ex := c.addrDirectPage()
		c.compare(c.X, c.readOperand(addr, wide), wide)
		return ex
	case 0xC0:
		wide := !c.flagXWide()
		c.compare(c.Y, c.readOperand(c.addrImmediate(wide), wide), wide)
		return widthExtra(wide)
	case 0xCC:
		wide := !c.flagXWide()
		c.compare(c.Y, c.readOperand(c.addrAbsolute(), wide), wide)
	case 0xC4:
		wide := !c.flagXWide()
		addr, ex := c.addrDirectPage()
		c.compare(c.Y, c.readOperand(addr, wide), wide)
		return ex

	// --- BIT ---
	case 0x89:
		c.opBIT(c.readOperand(c.addrImmediate(!c.flagM()), !c.flagM()), true)
		return widthExtra(!c.flagM())
	case 0x2C:
		c.opBIT(c.readOperand(c.addrAbsolute(), !c.flagM()), false)
	case 0x24:
		addr, ex := c.addrDirectPage()
		c.opBIT(c.readOperand(addr, !c.flagM()), false)
		return ex
	case 0x3C:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		c.opBIT(c.readOperand(addr, !c.flagM()), false)
		return crossExtra(crossed)
	case 0x34:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.opBIT(c.readOperand(addr, !c.flagM()), false)
		return ex

	// --- LDA ---
	case 0xA9:
		return c.loadA(c.addrImmediate(!c.flagM()))
	case 0xAD:
		return c.loadA(c.addrAbsolute())
	case 0xAF:
		return c.loadA(c.addrAbsoluteLong())
	case 0xA5:
		addr, ex := c.addrDirectPage()
		return ex + c.loadA(addr)
	case 0xB2:
		addr, ex := c.addrDPIndirect()
		return ex + c.loadA(addr)
	case 0xA7:
		addr, ex := c.addrDPIndirectLong()
		return ex + c.loadA(addr)
	case 0xBD:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.loadA(addr)
	case 0xB9:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.loadA(addr)
	case 0xBF:
		return c.loadA(c.addrAbsoluteLongX())
	case 0xB5:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.loadA(addr)
	case 0xA1:
		addr, ex := c.addrDPIndexedIndirectX()
		return ex + c.loadA(addr)
	case 0xB1:
		addr, crossed, ex := c.addrDPIndirectIndexedY()
		return ex + crossExtra(crossed) + c.loadA(addr)
	case 0xB7:
		addr, ex := c.addrDPIndirectLongY()
		return ex + c.loadA(addr)
	case 0xA3:
		return c.loadA(c.addrStackRelative())
	case 0xB3:
		return c.loadA(c.addrStackRelativeIndirectIndexedY())

	// --- LDX/LDY ---
	case 0xA2:
		return c.loadX(c.addrImmediate(!c.flagXWide()))
	case 0xAE:
		return c.loadX(c.addrAbsolute())
	case 0xA6:
		addr, ex := c.addrDirectPage()
		return ex + c.loadX(addr)
	case 0xBE:
		addr, crossed := c.addrAbsoluteIndexed(c.Y)
		return crossExtra(crossed) + c.loadX(addr)
	case 0xB6:
		addr, ex := c.addrDirectPageIndexed(c.Y)
		return ex + c.loadX(addr)
	case 0xA0:
		return c.loadY(c.addrImmediate(!c.flagXWide()))
	case 0xAC:
		return c.loadY(c.addrAbsolute())
	case 0xA4:
		addr, ex := c.addrDirectPage()
		return ex + c.loadY(addr)
	case 0xBC:
		addr, crossed := c.addrAbsoluteIndexed(c.X)
		return crossExtra(crossed) + c.loadY(addr)
	case 0xB4:
		addr, ex := c.addrDirectPageIndexed(c.X)
		return ex + c.loadY(addr)

	// --- STA ---
	case 0x8D:
		c.memStoreA(c.addrAbsolute())
	case 0x8F:
		c.memStoreA(c.addrAbsoluteLong())
	case 0x85:
		addr, ex := c.addrDirectPage()
		c.memStoreA(addr)
		return ex
	case 0x92:
		addr, ex := c.addrDPIndirect()
		c.memStoreA(addr)
		return ex
	case 0x87:
		addr, ex := c.addrDPIndirectLong()
		c.memStoreA(addr)
		return ex
	case 0x9D:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.memStoreA(addr)
	case 0x99:
		addr, _ := c.addrAbsoluteIndexed(c.Y)
		c.memStoreA(addr)
	case 0x9F:
		c.memStoreA(c.addrAbsoluteLongX())
	case 0x95:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.memStoreA(addr)
		return ex
	case 0x81:
		addr, ex := c.addrDPIndexedIndirectX()
		c.memStoreA(addr)
		return ex
	case 0x91:
		addr, _, ex := c.addrDPIndirectIndexedY()
		c.memStoreA(addr)
		return ex
	case 0x97:
		addr, ex := c.addrDPIndirectLongY()
		c.memStoreA(addr)
		return ex
	case 0x83:
		c.memStoreA(c.addrStackRelative())
	case 0x93:
		c.memStoreA(c.addrStackRelativeIndirectIndexedY())

	// --- STX/STY/STZ ---
	case 0x8E:
		c.memStoreX(c.addrAbsolute())
	case 0x86:
		addr, ex := c.addrDirectPage()
		c.memStoreX(addr)
		return ex
	case 0x96:
		addr, ex := c.addrDirectPageIndexed(c.Y)
		c.memStoreX(addr)
		return ex
	case 0x8C:
		c.memStoreY(c.addrAbsolute())
	case 0x84:
		addr, ex := c.addrDirectPage()
		c.memStoreY(addr)
		return ex
	case 0x94:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.memStoreY(addr)
		return ex
	case 0x9C:
		c.memStoreZ(c.addrAbsolute())
	case 0x64:
		addr, ex := c.addrDirectPage()
		c.memStoreZ(addr)
		return ex
	case 0x9E:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.memStoreZ(addr)
	case 0x74:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.memStoreZ(addr)
		return ex

	// --- shifts/rotates on memory ---
	case 0x0E:
		c.shiftMem(c.addrAbsolute(), aslShift)
	case 0x06:
		addr, ex := c.addrDirectPage()
		c.shiftMem(addr, aslShift)
		return ex
	case 0x1E:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.shiftMem(addr, aslShift)
	case 0x16:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.shiftMem(addr, aslShift)
		return ex
	case 0x2E:
		c.shiftMem(c.addrAbsolute(), c.rolShift)
	case 0x26:
		addr, ex := c.addrDirectPage()
		c.shiftMem(addr, c.rolShift)
		return ex
	case 0x3E:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.shiftMem(addr, c.rolShift)
	case 0x36:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.shiftMem(addr, c.rolShift)
		return ex
	case 0x4E:
		c.shiftMem(c.addrAbsolute(), lsrShift)
	case 0x46:
		addr, ex := c.addrDirectPage()
		c.shiftMem(addr, lsrShift)
		return ex
	case 0x5E:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.shiftMem(addr, lsrShift)
	case 0x56:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.shiftMem(addr, lsrShift)
		return ex
	case 0x6E:
		c.shiftMem(c.addrAbsolute(), c.rorShift)
	case 0x66:
		addr, ex := c.addrDirectPage()
		c.shiftMem(addr, c.rorShift)
		return ex
	case 0x7E:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.shiftMem(addr, c.rorShift)
	case 0x76:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.shiftMem(addr, c.rorShift)
		return ex

	// --- INC/DEC memory ---
	case 0xEE:
		c.incDecMem(c.addrAbsolute(), 1)
	case 0xE6:
		addr, ex := c.addrDirectPage()
		c.incDecMem(addr, 1)
		return ex
	case 0xFE:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.incDecMem(addr, 1)
	case 0xF6:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.incDecMem(addr, 1)
		return ex
	case 0xCE:
		c.incDecMem(c.addrAbsolute(), -1)
	case 0xC6:
		addr, ex := c.addrDirectPage()
		c.incDecMem(addr, -1)
		return ex
	case 0xDE:
		addr, _ := c.addrAbsoluteIndexed(c.X)
		c.incDecMem(addr, -1)
	case 0xD6:
		addr, ex := c.addrDirectPageIndexed(c.X)
		c.incDecMem(addr, -1)
		return ex

	// --- TSB/TRB ---
	case 0x0C:
		c.opTSB(c.addrAbsolute())
	case 0x04:
		addr, ex := c.addrDirectPage()
		c.opTSB(addr)
		return ex
	case 0x1C:
		c.opTRB(c.addrAbsolute())
	case 0x14:
		addr, ex := c.addrDirectPage()
		c.opTRB(addr)
		return ex
	}
	return 0
}

func (c *Cpu) adcFrom(addr uint32) int {
	wide := !c.flagM()
	c.opADC(c.readOperand(addr, wide))
	return widthExtra(wide)
}

func (c *Cpu) sbcFrom(addr uint32) int {
	wide := !c.flagM()
	c.opSBC(c.readOperand(addr, wide))
	return widthExtra(wide)
}

func (c *Cpu) andFrom(addr uint32) int {
	wide := !c.flagM()
	c.opAND(c.readOperand(addr, wide))
	return widthExtra(wide)
}

func (c *Cpu) oraFrom(addr uint32) int {
	wide := !c.flagM()
	c.opORA(c.readOperand(addr, wide))
	return widthExtra(wide)
}

func (c *Cpu) eorFrom(addr uint32) int {
	wide := !c.flagM()
	c.opEOR(c.readOperand(addr, wide))
	return widthExtra(wide)
}
