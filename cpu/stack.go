package cpu

// This file implements the stack geometry and interrupt/BRK/COP/RTI/
// RTS/RTL engine (component C6).

// pushByte writes v at the current stack pointer and decrements S,
// wrapping within page 1 in emulation mode or across the full 16-bit
// range in native mode.
func (c *Cpu) pushByte(v uint8) {
	c.mem.Write(uint32(c.S), v)
	if c.E {
		c.S = 0x0100 | uint16(uint8(c.S)-1)
	} else {
		c.S--
	}
}

// pullByte increments S and reads the byte now pointed to.
func (c *Cpu) pullByte() uint8 {
	if c.E {
		c.S = 0x0100 | uint16(uint8(c.S)+1)
	} else {
		c.S++
	}
	return c.mem.Read(uint32(c.S))
}

// pushWord pushes the high byte first so the low byte ends up at the
// lower address after both pushes.
func (c *Cpu) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

// pullWord is the mirror of pushWord: low byte first, then high.
func (c *Cpu) pullWord() uint16 {
	lo := uint16(c.pullByte())
	hi := uint16(c.pullByte())
	return hi<<8 | lo
}

func brkVector(e bool) uint32 {
	if e {
		return VecBRKEmu
	}
	return VecBRKNative
}

func copVector(e bool) uint32 {
	if e {
		return VecCOPEmu
	}
	return VecCOPNative
}

// enterInterrupt runs the common IRQ/NMI/BRK/COP push sequence: push
// PBR (native only), push PC, push P (with the emulation-mode Break
// bit set only for isBRK), disable further IRQs, clear decimal mode,
// zero PBR, and load PC from vector.
func (c *Cpu) enterInterrupt(vector uint32, isBRK bool) {
	if !c.E {
		c.pushByte(c.PBR)
	}
	c.pushWord(c.PC)

	p := c.P
	if c.E {
		if isBRK {
			p |= P_X
		} else {
			p &^= P_X
		}
	}
	c.pushByte(p)

	c.setP(P_INTERRUPT)
	c.clearP(P_DECIMAL)
	c.PBR = 0
	lo := uint16(c.mem.Read(vector))
	hi := uint16(c.mem.Read(vector + 1))
	c.PC = hi<<8 | lo
	c.cycles += 7
}

// iBRK implements BRK: pre-advance PC by one to skip the conventional
// signature byte, then run the common interrupt entry with the Break
// bit asserted.
func (c *Cpu) iBRK() {
	c.PC++
	c.enterInterrupt(brkVector(c.E), true)
}

// iCOP implements COP: same signature-byte skip as BRK, but enters
// like a hardware interrupt (Break bit cleared in emulation mode).
func (c *Cpu) iCOP() {
	c.PC++
	c.enterInterrupt(copVector(c.E), false)
}

// iRTI pops P, then PC, then (in native mode) PBR. In emulation mode
// the Break and Unused bits are reasserted regardless of what was
// pushed, since those bits always read 1 when E=1.
func (c *Cpu) iRTI() {
	p := c.pullByte()
	if c.E {
		p |= P_M | P_X
	}
	c.P = p
	c.PC = c.pullWord()
	if !c.E {
		c.PBR = c.pullByte()
	}
}

// iRTS pops PC and advances it by one past the call-site JSR/JSL operand.
func (c *Cpu) iRTS() {
	c.PC = c.pullWord() + 1
}

// iRTL pops PC and PBR (long return) and advances PC by one.
func (c *Cpu) iRTL() {
	c.PC = c.pullWord()
	c.PBR = c.pullByte()
	c.PC++
}
