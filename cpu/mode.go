package cpu

// This file implements mode and width control (component C7): XCE,
// SEP/REP, XBA, WAI, STP, and the C-register transfers (TCD/TDC/TCS/
// TSC) that, like XBA, operate on the full 16-bit accumulator
// regardless of the current M width and so must go through
// logicalA/setLogicalA to keep the hidden-B invariant intact.

// iXCE exchanges the carry flag with the emulation-mode flag. A
// transition in either direction forces M and X to 8-bit widths;
// a transition into emulation additionally reconciles the hidden B
// register and masks X/Y, and either direction re-pins S to page 1.
func (c *Cpu) iXCE() {
	carryWas := c.testP(P_CARRY)
	eWas := c.E
	c.E = carryWas
	c.setCarry(eWas)
	if eWas == c.E {
		return
	}
	c.setP(P_M | P_X)
	if c.E {
		c.B = uint8(c.A >> 8)
		c.A &= 0xFF
		c.X &= 0xFF
		c.Y &= 0xFF
	}
	c.S = 0x0100 | (c.S & 0xFF)
}

// iSEP sets the P bits named in mask. In emulation mode the Break and
// Unused bits cannot be altered. A 0->1 transition of M saves A's high
// byte to B and masks A to 8 bits; a 0->1 transition of X masks X/Y.
func (c *Cpu) iSEP(mask uint8) {
	if c.E {
		mask &^= P_M | P_X
	}
	mTransition := mask&P_M != 0 && !c.testP(P_M)
	xTransition := mask&P_X != 0 && !c.testP(P_X)
	c.setP(mask)
	if mTransition {
		c.B = uint8(c.A >> 8)
		c.A &= 0xFF
	}
	if xTransition {
		c.X &= 0xFF
		c.Y &= 0xFF
	}
}

// iREP clears the P bits named in mask. In emulation mode Break and
// Unused cannot be cleared. A 1->0 transition of M reconstitutes A
// from B.
func (c *Cpu) iREP(mask uint8) {
	if c.E {
		mask &^= P_M | P_X
	}
	mTransition := mask&P_M != 0 && c.testP(P_M)
	c.clearP(mask)
	if mTransition {
		c.A = uint16(c.B)<<8 | (c.A & 0xFF)
		c.B = 0
	}
}

// iXBA swaps A's high and low bytes, reconciling the hidden-B
// convention through logicalA/setLogicalA. NZ reflect the new low byte.
func (c *Cpu) iXBA() {
	v := c.logicalA()
	swapped := (v << 8) | (v >> 8)
	c.setLogicalA(swapped)
	c.setNZ8(uint8(swapped))
}

// iWAI suspends instruction fetch until an interrupt is taken.
func (c *Cpu) iWAI() {
	c.waiting = true
}

// iSTP approximates STOP by re-entering the RESET flow, per the
// spec's accepted simplification for a core with no separate
// "stopped" state cleared only by an external reset line.
func (c *Cpu) iSTP() {
	c.Reset()
}

// iTCD transfers the full 16-bit accumulator ("C") into D.
func (c *Cpu) iTCD() {
	v := c.logicalA()
	c.D = v
	c.setNZ16(v)
}

// iTDC transfers D into the full 16-bit accumulator.
func (c *Cpu) iTDC() {
	c.setLogicalA(c.D)
	c.setNZ16(c.D)
}

// iTCS transfers the full 16-bit accumulator into S. Does not affect flags.
func (c *Cpu) iTCS() {
	v := c.logicalA()
	if c.E {
		c.S = 0x0100 | (v & 0xFF)
	} else {
		c.S = v
	}
}

// iTSC transfers S into the full 16-bit accumulator.
func (c *Cpu) iTSC() {
	c.setLogicalA(c.S)
	c.setNZ16(c.S)
}
