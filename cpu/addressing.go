package cpu

// This file implements the 65C816 addressing-mode resolver (component
// C3). Each resolver consumes however many operand bytes its mode
// requires directly from PBR:PC (advancing PC itself), and returns the
// 24-bit effective address together with any page-cross cycle penalty
// earned by the computation. Direct-page-family resolvers additionally
// earn the one-cycle direct-page penalty whenever D's low byte is
// non-zero, matching real hardware and documented as optional in the
// addressing-mode cost model.

// dpPenalty returns 1 when the direct-page register's low byte is
// non-zero, the documented extra cycle for every direct-page-based
// addressing computation.
func (c *Cpu) dpPenalty() int {
	if c.D&0xFF != 0 {
		return 1
	}
	return 0
}

// pageCross reports whether adding index to base crosses a 256-byte
// page boundary, the trigger for the variable-cycle penalty.
func pageCross(base, result uint16) bool {
	return base&0xFF00 != result&0xFF00
}

// addrImmediate returns the operand address (PBR:PC) and advances PC
// by one or two bytes depending on wide.
func (c *Cpu) addrImmediate(wide bool) uint32 {
	addr := c.pbrPC()
	if wide {
		c.PC += 2
	} else {
		c.PC++
	}
	return addr
}

// addrAbsolute: DBR:word_operand.
func (c *Cpu) addrAbsolute() uint32 {
	w := c.fetchWord()
	return uint32(c.DBR)<<16 | uint32(w)
}

// addrAbsoluteIndexed: DBR:word_operand + index, 24-bit add (a carry
// out of the low word spills into the next bank). crossed reports
// whether the low-word computation crosses a page; each caller decides
// whether that earns the extra cycle.
func (c *Cpu) addrAbsoluteIndexed(index uint16) (addr uint32, crossed bool) {
	w := c.fetchWord()
	base := uint32(c.DBR)<<16 | uint32(w)
	addr = (base + uint32(index)) & 0x00FFFFFF
	crossed = pageCross(w, uint16(base+uint32(index)))
	return addr, crossed
}

// addrAbsoluteLong: 24-bit operand, bank explicit.
func (c *Cpu) addrAbsoluteLong() uint32 {
	return c.fetchLong()
}

// addrAbsoluteLongX: 24-bit operand plus X, 24-bit add.
func (c *Cpu) addrAbsoluteLongX() uint32 {
	base := c.fetchLong()
	return (base + uint32(c.X)) & 0x00FFFFFF
}

// addrDirectPage: (D + byte_operand) & 0xFFFF, bank 0.
func (c *Cpu) addrDirectPage() (addr uint32, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off)
	return uint32(dp), c.dpPenalty()
}

// addrDirectPageIndexed: (D + byte_operand + index) & 0xFFFF, bank 0.
func (c *Cpu) addrDirectPageIndexed(index uint16) (addr uint32, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off) + index
	return uint32(dp), c.dpPenalty()
}

// dpPointer16 reads a 16-bit pointer at a direct-page address with a
// plain dp/dp+1 read; the high-byte fetch carries normally into the
// next page. Used by the DP-indirect-Y and PEI forms, which read their
// pointer this way in original_source.
func (c *Cpu) dpPointer16(dp uint16) uint16 {
	lo := uint16(c.mem.Read(uint32(dp)))
	hi := uint16(c.mem.Read(uint32(dp + 1)))
	return hi<<8 | lo
}

// dpPointerWrap reads a 16-bit pointer at a direct-page address using
// the classic same-page wraparound: the pointer's high byte (page)
// stays fixed and only the low byte rolls 0xFF->0x00, so a pointer at
// dp==0xFF reads its high byte back from dp&0xFF00 rather than
// spilling into the next page. This is original_source's WrapAt,
// ((addr&0xFF00) + ((addr+1)&0xFF)), used by the two DP-indirect forms
// that index through a pointer without a Y offset.
func (c *Cpu) dpPointerWrap(dp uint16) uint16 {
	lo := uint16(c.mem.Read(uint32(dp)))
	hiAddr := (dp & 0xFF00) | ((dp + 1) & 0xFF)
	hi := uint16(c.mem.Read(uint32(hiAddr)))
	return hi<<8 | lo
}

// dpPointer24 reads a 24-bit pointer at a direct-page address with a
// plain 3-byte read in bank 0 (no wrap, per original_source).
func (c *Cpu) dpPointer24(dp uint16) uint32 {
	lo := uint32(c.mem.Read(uint32(dp)))
	mid := uint32(c.mem.Read(uint32(dp + 1)))
	hi := uint32(c.mem.Read(uint32(dp + 2)))
	return hi<<16 | mid<<8 | lo
}

// addrDPIndirect: pointer at (D+byte)&0xFFFF, effective = DBR:ptr. The
// pointer read wraps within its own page (dpPointerWrap), matching
// original_source's DirectPageIndirectAddr.
func (c *Cpu) addrDPIndirect() (addr uint32, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off)
	ptr := c.dpPointerWrap(dp)
	return uint32(c.DBR)<<16 | uint32(ptr), c.dpPenalty()
}

// addrDPIndexedIndirectX: pointer at (D+byte+X)&0xFFFF, then DBR:ptr.
// Same same-page pointer wrap as addrDPIndirect, matching
// original_source's DirectPageIndirectXAddr.
func (c *Cpu) addrDPIndexedIndirectX() (addr uint32, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off) + c.X
	ptr := c.dpPointerWrap(dp)
	return uint32(c.DBR)<<16 | uint32(ptr), c.dpPenalty()
}

// addrDPIndirectIndexedY: pointer at (D+byte)&0xFFFF, then DBR:ptr + Y
// (24-bit add), with a page-cross penalty on the low-word add.
func (c *Cpu) addrDPIndirectIndexedY() (addr uint32, crossed bool, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off)
	ptr := c.dpPointer16(dp)
	base := uint32(c.DBR)<<16 | uint32(ptr)
	addr = (base + uint32(c.Y)) & 0x00FFFFFF
	crossed = pageCross(ptr, uint16(base+uint32(c.Y)))
	return addr, crossed, c.dpPenalty()
}

// addrDPIndirectLong: 24-bit pointer at D+byte, bank explicit.
func (c *Cpu) addrDPIndirectLong() (addr uint32, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off)
	return c.dpPointer24(dp), c.dpPenalty()
}

// addrDPIndirectLongY: as above plus Y, 24-bit add.
func (c *Cpu) addrDPIndirectLongY() (addr uint32, extra int) {
	off := c.fetch()
	dp := c.D + uint16(off)
	ptr := c.dpPointer24(dp)
	return (ptr + uint32(c.Y)) & 0x00FFFFFF, c.dpPenalty()
}

// addrStackRelative: (S + byte_operand) & 0xFFFF, bank 0.
func (c *Cpu) addrStackRelative() uint32 {
	off := c.fetch()
	return uint32(c.S + uint16(off))
}

// addrStackRelativeIndirectIndexedY: pointer at stack-relative addr,
// then DBR:ptr + Y (24-bit add).
func (c *Cpu) addrStackRelativeIndirectIndexedY() uint32 {
	off := c.fetch()
	sp := c.S + uint16(off)
	ptr := c.dpPointer16(sp)
	base := uint32(c.DBR)<<16 | uint32(ptr)
	return (base + uint32(c.Y)) & 0x00FFFFFF
}

// addrAbsoluteIndirect (JMP only): pointer read at PBR:word_operand;
// the pointer itself never changes PBR, so callers use the returned
// 16-bit value directly as the new PC within the same program bank.
func (c *Cpu) addrAbsoluteIndirect() uint16 {
	w := c.fetchWord()
	base := uint32(c.PBR) << 16
	lo := uint16(c.mem.Read(base | uint32(w)))
	hi := uint16(c.mem.Read(base | uint32(w+1)))
	return hi<<8 | lo
}

// addrAbsoluteIndirectX (JMP/JSR): pointer read at PBR:(word_operand+X).
func (c *Cpu) addrAbsoluteIndirectX() uint16 {
	w := c.fetchWord()
	base := uint32(c.PBR) << 16
	ptr := w + c.X
	lo := uint16(c.mem.Read(base | uint32(ptr)))
	hi := uint16(c.mem.Read(base | uint32(ptr+1)))
	return hi<<8 | lo
}

// addrAbsoluteIndirectLong (JML): 24-bit pointer read in bank 0 at the
// word operand's address.
func (c *Cpu) addrAbsoluteIndirectLong() uint32 {
	w := c.fetchWord()
	return c.readLong(uint32(w))
}

// addrPCRelative: signed 8-bit offset from PC taken after the operand
// byte; reports whether the branch target crosses a page.
func (c *Cpu) addrPCRelative() (target uint16, crossed bool) {
	off := int8(c.fetch())
	base := c.PC
	target = uint16(int32(base) + int32(off))
	return target, pageCross(base, target)
}

// addrPCRelativeLong: signed 16-bit offset from PC taken after the
// two-byte operand.
func (c *Cpu) addrPCRelativeLong() uint16 {
	off := int16(c.fetchWord())
	return uint16(int32(c.PC) + int32(off))
}
