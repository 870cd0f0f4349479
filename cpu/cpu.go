// Package cpu implements the WDC 65C816 register file, addressing
// modes, ALU, instruction dispatch, and stack/interrupt engine. It
// executes one instruction (or one cooperative slice of WAI or a
// block move) per Step call against a caller-supplied memory.Bank.
package cpu

import (
	"fmt"

	"github.com/jchacon/w65c816/irq"
	"github.com/jchacon/w65c816/memory"
)

// P register bit masks. In native mode bit 0x20 selects accumulator
// width and bit 0x10 selects index-register width; in emulation mode
// (E=1) those same two bits read back as the always-1 "unused" bit and
// the software Break flag, respectively.
const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_M         = uint8(0x20) // accumulator width select (native) / unused, forced 1 (emulation)
	P_X         = uint8(0x10) // index width select (native) / break (emulation)
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// Interrupt/reset vectors, bank 0. The 65C816 uses distinct native-mode
// vectors for BRK/COP/ABORT/NMI/IRQ, falling back to the legacy
// emulation-mode (65C02) vectors when E=1.
const (
	VecCOPNative   = uint32(0xFFE4)
	VecBRKNative   = uint32(0xFFE6)
	VecABORTNative = uint32(0xFFE8)
	VecNMINative   = uint32(0xFFEA)
	VecIRQNative   = uint32(0xFFEE)

	VecCOPEmu   = uint32(0xFFF4)
	VecABORTEmu = uint32(0xFFF8)
	VecNMIEmu   = uint32(0xFFFA)
	VecReset    = uint32(0xFFFC)
	VecBRKEmu   = uint32(0xFFFE) // IRQ and BRK share this vector in emulation mode
	VecIRQEmu   = uint32(0xFFFE)
)

// ConfigError represents invalid construction parameters.
type ConfigError struct {
	Reason string
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid cpu config: %s", e.Reason)
}

// Config defines the parameters for a new Cpu.
type Config struct {
	// Memory is the 24-bit address space the CPU reads and writes
	// through. Required.
	Memory memory.Bank
	// IRQ is an optional level-triggered IRQ source, checked at the
	// start of every Step in addition to one-shot IRQ() injection.
	IRQ irq.Sender
	// NMI is an optional source for the (nominally edge-triggered) NMI
	// line, checked at the start of every Step in addition to one-shot
	// NMI() injection.
	NMI irq.Sender
	// EntryPC is accepted for API parity with the reference
	// implementation but is always superseded by the RESET-vector
	// fetch that New performs; place the desired entry point at
	// VecReset in Memory instead.
	EntryPC uint16
}

// Cpu holds the full 65C816 register file and drives instruction
// execution against a memory.Bank.
type Cpu struct {
	A uint16 // accumulator; low byte only significant when M=1 (native)
	B uint8  // hidden high byte of A, live only when M=1 (native)
	X uint16 // index register; high byte forced 0 when X-flag=1 or E=1
	Y uint16 // index register; high byte forced 0 when X-flag=1 or E=1
	S uint16 // stack pointer; high byte forced 0x01 when E=1
	D uint16 // direct page register
	P uint8  // processor status

	PBR uint8 // program bank register
	DBR uint8 // data bank register
	PC  uint16

	E bool // emulation-mode flag; not part of P, toggled only by XCE

	waiting bool // true after WAI, cleared when an interrupt is taken or on Reset
	cycles  uint64

	mem memory.Bank
	irq irq.Sender
	nmi irq.Sender

	irqLatched bool // one-shot IRQ() injection pending
	nmiLatched bool // one-shot NMI() injection pending
}

// New constructs a Cpu wired to cfg.Memory and immediately resets it,
// loading PC from the RESET vector.
func New(cfg Config) (*Cpu, error) {
	if cfg.Memory == nil {
		return nil, ConfigError{"Memory must be non-nil"}
	}
	c := &Cpu{
		mem: cfg.Memory,
		irq: cfg.IRQ,
		nmi: cfg.NMI,
	}
	c.Reset()
	return c, nil
}

// Reset re-enters the RESET flow: forces emulation mode, clears A/X/Y,
// sets P to Break|Unused with interrupts disabled, zeroes the bank and
// direct-page registers, and loads PC from VecReset. STP is modeled as
// re-entering this same flow (see iSTP in mode.go).
func (c *Cpu) Reset() {
	c.E = true
	c.A = 0
	c.B = 0
	c.X = 0
	c.Y = 0
	c.D = 0
	c.PBR = 0
	c.DBR = 0
	c.S = 0x01FF
	c.P = P_M | P_X | P_INTERRUPT
	c.waiting = false
	c.irqLatched = false
	c.nmiLatched = false

	lo := uint16(c.mem.Read(VecReset))
	hi := uint16(c.mem.Read(VecReset + 1))
	c.PC = (hi << 8) | lo
}

// IRQ injects a one-shot IRQ request, checked (and cleared, if taken)
// at the start of the next Step.
func (c *Cpu) IRQ() {
	c.irqLatched = true
}

// NMI injects a one-shot NMI request, checked (and cleared) at the
// start of the next Step. NMI is never masked by the I flag.
func (c *Cpu) NMI() {
	c.nmiLatched = true
}

// Cycles returns the monotonic count of elapsed processor cycles.
func (c *Cpu) Cycles() uint64 {
	return c.cycles
}

// Waiting reports whether the processor is idling after WAI.
func (c *Cpu) Waiting() bool {
	return c.waiting
}

// flagM reports whether the accumulator is currently 8-bit wide.
func (c *Cpu) flagM() bool {
	return c.E || c.P&P_M != 0
}

// flagXWide reports whether X/Y are currently 8-bit wide.
func (c *Cpu) flagXWide() bool {
	return c.E || c.P&P_X != 0
}

func (c *Cpu) setP(mask uint8) {
	c.P |= mask
}

func (c *Cpu) clearP(mask uint8) {
	c.P &^= mask
}

func (c *Cpu) testP(mask uint8) bool {
	return c.P&mask != 0
}

// setNZ8 updates N and Z from an 8-bit result.
func (c *Cpu) setNZ8(v uint8) {
	c.clearP(P_ZERO | P_NEGATIVE)
	if v == 0 {
		c.setP(P_ZERO)
	}
	if v&0x80 != 0 {
		c.setP(P_NEGATIVE)
	}
}

// setNZ16 updates N and Z from a 16-bit result.
func (c *Cpu) setNZ16(v uint16) {
	c.clearP(P_ZERO | P_NEGATIVE)
	if v == 0 {
		c.setP(P_ZERO)
	}
	if v&0x8000 != 0 {
		c.setP(P_NEGATIVE)
	}
}

// setNZA updates N/Z at the accumulator's current width.
func (c *Cpu) setNZA(v uint16) {
	if c.flagM() {
		c.setNZ8(uint8(v))
	} else {
		c.setNZ16(v)
	}
}

// setNZIndex updates N/Z at the index registers' current width.
func (c *Cpu) setNZIndex(v uint16) {
	if c.flagXWide() {
		c.setNZ8(uint8(v))
	} else {
		c.setNZ16(v)
	}
}

// maskIndex clamps a value to the current X/Y width, zeroing the high
// byte when 8-bit (invariant 2 in the data model).
func (c *Cpu) maskIndex(v uint16) uint16 {
	if c.flagXWide() {
		return v & 0xFF
	}
	return v
}

// Step executes exactly one instruction, one byte of an in-flight
// block move, or one idle cycle of WAI, honoring any pending interrupt
// first.
func (c *Cpu) Step() {
	nmiPending := c.nmiLatched || (c.nmi != nil && c.nmi.Raised())
	irqLine := c.irqLatched || (c.irq != nil && c.irq.Raised())
	irqPending := irqLine && !c.testP(P_INTERRUPT)

	if nmiPending {
		c.nmiLatched = false
		c.waiting = false
		c.enterInterrupt(nmiVector(c.E), false)
		return
	}
	if irqPending {
		c.irqLatched = false
		c.waiting = false
		c.enterInterrupt(irqVector(c.E), false)
		return
	}
	if c.waiting {
		c.cycles++
		return
	}
	c.dispatch()
}

func nmiVector(e bool) uint32 {
	if e {
		return VecNMIEmu
	}
	return VecNMINative
}

func irqVector(e bool) uint32 {
	if e {
		return VecIRQEmu
	}
	return VecIRQNative
}

// pbrPC returns the current 24-bit fetch address (PBR:PC).
func (c *Cpu) pbrPC() uint32 {
	return uint32(c.PBR)<<16 | uint32(c.PC)
}

// fetch reads the byte at PBR:PC and advances PC by one.
func (c *Cpu) fetch() uint8 {
	v := c.mem.Read(c.pbrPC())
	c.PC++
	return v
}

// fetchWord reads a little-endian word at PBR:PC and advances PC by two.
func (c *Cpu) fetchWord() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return hi<<8 | lo
}

// fetchLong reads a little-endian 24-bit value at PBR:PC and advances
// PC by three.
func (c *Cpu) fetchLong() uint32 {
	lo := uint32(c.fetch())
	mid := uint32(c.fetch())
	hi := uint32(c.fetch())
	return hi<<16 | mid<<8 | lo
}

// readWord reads a little-endian word at two consecutive addresses in
// the same bank.
func (c *Cpu) readWord(addr uint32) uint16 {
	bank := addr &^ 0xFFFF
	off := uint16(addr)
	lo := uint16(c.mem.Read(addr))
	hi := uint16(c.mem.Read(bank | uint32(off+1)))
	return hi<<8 | lo
}

// readLong reads a 24-bit little-endian value starting at addr,
// spilling into the next bank if addr's offset is near 0xFFFF (used
// only by modes that explicitly read a 3-byte pointer, never the
// direct-page-wrapped family).
func (c *Cpu) readLong(addr uint32) uint32 {
	lo := uint32(c.mem.Read(addr))
	mid := uint32(c.mem.Read(addr + 1))
	hi := uint32(c.mem.Read(addr + 2))
	return hi<<16 | mid<<8 | lo
}

// readOperand reads an 8- or 16-bit value at addr depending on wide.
func (c *Cpu) readOperand(addr uint32, wide bool) uint16 {
	if wide {
		return c.readWord(addr)
	}
	return uint16(c.mem.Read(addr))
}

// writeOperand writes an 8- or 16-bit value at addr depending on wide.
func (c *Cpu) writeOperand(addr uint32, v uint16, wide bool) {
	bank := addr &^ 0xFFFF
	off := uint16(addr)
	c.mem.Write(addr, uint8(v))
	if wide {
		c.mem.Write(bank|uint32(off+1), uint8(v>>8))
	}
}
