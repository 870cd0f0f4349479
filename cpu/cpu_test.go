package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jchacon/w65c816/irq"
)

// flatMemory is a 24-bit-addressed RAM fixture, grounded on the
// teacher's flatMemory test fixture in cpu_test.go.
type flatMemory struct {
	addr [1 << 24]uint8
}

func (f *flatMemory) Read(addr uint32) uint8 {
	return f.addr[addr&0x00FFFFFF]
}

func (f *flatMemory) Write(addr uint32, val uint8) {
	f.addr[addr&0x00FFFFFF] = val
}

func (f *flatMemory) PowerOn() {}

func (f *flatMemory) setVector(vector uint32, target uint16) {
	f.addr[vector] = uint8(target)
	f.addr[vector+1] = uint8(target >> 8)
}

func newCpu(t *testing.T, resetVector uint16) (*Cpu, *flatMemory) {
	t.Helper()
	mem := &flatMemory{}
	mem.setVector(VecReset, resetVector)
	c, err := New(Config{Memory: mem})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, mem
}

type fakeSender struct{ raised bool }

func (f *fakeSender) Raised() bool { return f.raised }

var _ irq.Sender = (*fakeSender)(nil)

func TestNewRequiresMemory(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New with nil Memory: got no error, want ConfigError")
	}
}

func TestResetState(t *testing.T) {
	c, _ := newCpu(t, 0x8000)
	want := &Cpu{
		E:  true,
		S:  0x01FF,
		P:  P_M | P_X | P_INTERRUPT,
		PC: 0x8000,
	}
	if diff := deep.Equal(c, want); diff != nil {
		t.Errorf("Reset state mismatch: %v\nfull state: %s", diff, spew.Sdump(c))
	}
}

// Scenario 1 (spec.md 8): BCD addition.
func TestBCDAddition(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.E = false
	c.setP(P_M)
	c.setP(P_DECIMAL)
	c.clearP(P_CARRY)
	c.A = 0x25
	mem.Write(0x8000, 0x69) // ADC #
	mem.Write(0x8001, 0x48)
	c.Step()

	if c.A != 0x73 {
		t.Errorf("A = %#x, want 0x73", c.A)
	}
	if c.testP(P_CARRY) {
		t.Error("C set, want clear")
	}
	if c.testP(P_NEGATIVE) {
		t.Error("N set, want clear")
	}
	if c.testP(P_ZERO) {
		t.Error("Z set, want clear")
	}
	if c.testP(P_OVERFLOW) {
		t.Error("V set, want clear")
	}
}

// Scenario 2: 16-bit add with overflow.
func TestAdd16Overflow(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.E = false
	c.clearP(P_M)
	c.clearP(P_DECIMAL)
	c.clearP(P_CARRY)
	c.A = 0x7FFF
	mem.Write(0x8000, 0x69) // ADC #
	mem.Write(0x8001, 0x01)
	mem.Write(0x8002, 0x00)
	c.Step()

	if c.A != 0x8000 {
		t.Errorf("A = %#x, want 0x8000", c.A)
	}
	if !c.testP(P_NEGATIVE) {
		t.Error("N clear, want set")
	}
	if !c.testP(P_OVERFLOW) {
		t.Error("V clear, want set")
	}
	if c.testP(P_CARRY) {
		t.Error("C set, want clear")
	}
	if c.testP(P_ZERO) {
		t.Error("Z set, want clear")
	}
}

// Scenario 3: XCE switch and push width.
func TestXCESwitchPushWidth(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.S = 0x01FF
	c.A = 0x00AA
	mem.Write(0x8000, 0x18) // CLC
	mem.Write(0x8001, 0xFB) // XCE
	mem.Write(0x8002, 0xC2) // REP #$20
	mem.Write(0x8003, 0x20)
	mem.Write(0x8004, 0x48) // PHA

	c.Step() // CLC
	c.Step() // XCE
	if c.E {
		t.Fatal("E still set after XCE, want clear")
	}
	c.Step() // REP #$20
	if c.flagM() {
		t.Fatal("M still set after REP #$20")
	}
	c.Step() // PHA

	if c.S != 0x01FD {
		t.Errorf("S = %#x, want 0x01FD", c.S)
	}
	if got := mem.Read(0x01FF); got != 0x00 {
		t.Errorf("high byte at 0x01FF = %#x, want 0x00", got)
	}
	if got := mem.Read(0x01FE); got != 0xAA {
		t.Errorf("low byte at 0x01FE = %#x, want 0xAA", got)
	}
}

// Scenario 4: BRK + RTI round trip in emulation mode.
func TestBRKRTIRoundTrip(t *testing.T) {
	c, mem := newCpu(t, 0xC000)
	mem.setVector(VecBRKEmu, 0xABCD)
	mem.Write(0xC000, 0x00) // BRK
	mem.Write(0xC001, 0x00) // signature byte

	c.Step()
	if c.PC != 0xABCD {
		t.Fatalf("PC after BRK = %#x, want 0xABCD", c.PC)
	}

	mem.Write(0xABCD, 0x40) // RTI
	c.Step()

	if c.PC != 0xC002 {
		t.Errorf("PC after RTI = %#x, want 0xC002", c.PC)
	}
	if c.P&(P_M|P_X) != P_M|P_X {
		t.Errorf("P = %#x, Break|Unused not reasserted", c.P)
	}
}

// Scenario 5: block move.
func TestBlockMove(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.E = false
	c.clearP(P_M)
	c.clearP(P_X)
	c.A = 0x0003
	c.X = 0x1000
	c.Y = 0x2000
	c.DBR = 0x00
	mem.Write(0x8000, 0x54) // MVN
	mem.Write(0x8001, 0x01) // dest bank
	mem.Write(0x8002, 0x02) // src bank
	for i := 0; i < 4; i++ {
		mem.Write(uint32(0x021000+i), uint8(0x10+i))
	}

	for i := 0; i < 4; i++ {
		c.Step()
	}

	for i := 0; i < 4; i++ {
		got := mem.Read(uint32(0x012000 + i))
		want := uint8(0x10 + i)
		if got != want {
			t.Errorf("dest byte %d = %#x, want %#x", i, got, want)
		}
	}
	if c.A != 0xFFFF {
		t.Errorf("A (counter) = %#x, want 0xFFFF", c.A)
	}
	if c.DBR != 0x01 {
		t.Errorf("DBR = %#x, want 0x01", c.DBR)
	}
	if c.PC != 0x8003 {
		t.Errorf("PC = %#x, want 0x8003", c.PC)
	}
	if c.X != 0x1004 || c.Y != 0x2004 {
		t.Errorf("X,Y = %#x,%#x, want 0x1004,0x2004", c.X, c.Y)
	}
}

// Scenario 6: page-cross penalty.
func TestPageCrossPenalty(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.setP(P_M)
	c.X = 1
	mem.Write(0x8000, 0xBD) // LDA abs,X
	mem.Write(0x8001, 0xFF)
	mem.Write(0x8002, 0xC0)
	mem.Write(0xC100, 0x42)

	before := c.Cycles()
	c.Step()
	if got := c.Cycles() - before; got != 5 {
		t.Errorf("cycles = %d, want 5", got)
	}
	if c.A != 0x0042 {
		t.Errorf("A = %#x, want 0x42", c.A)
	}
}

func TestPageCrossPenaltyAbsent(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.setP(P_M)
	c.X = 1
	mem.Write(0x8000, 0xBD) // LDA abs,X
	mem.Write(0x8001, 0x00)
	mem.Write(0x8002, 0xC0)
	mem.Write(0xC001, 0x42)

	before := c.Cycles()
	c.Step()
	if got := c.Cycles() - before; got != 4 {
		t.Errorf("cycles = %d, want 4", got)
	}
}

// Boundary behavior: JMP (abs) at 0x10FF fetches low byte from 0x10FF
// and high byte from 0x1100 -- no page-wrap bug.
func TestJMPIndirectNoPageWrap(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	mem.Write(0x8000, 0x6C) // JMP (abs)
	mem.Write(0x8001, 0xFF)
	mem.Write(0x8002, 0x10)
	mem.Write(0x0010FF, 0x34)
	mem.Write(0x001100, 0x12)

	c.Step()
	if c.PC != 0x1234 {
		t.Errorf("PC = %#x, want 0x1234", c.PC)
	}
}

// DP-indirect pointer reads wrap within the direct page's own 256-byte
// span (the classic 6502-family "WrapAt" bug): a pointer byte at
// dp==0xFF fetches its high byte back from dp==0x00, not from the next
// page at 0x0100. LDA ($FF) with D=0, [0x00FF]=0x34, [0x0100]=0x12,
// [0x0000]=0x56 must resolve the pointer to 0x5634, not 0x1234.
func TestDPIndirectWrapsWithinPage(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.setP(P_M)
	mem.Write(0x8000, 0xB2) // LDA (dp)
	mem.Write(0x8001, 0xFF)
	mem.Write(0x00FF, 0x34)
	mem.Write(0x0100, 0x12) // must NOT be used for the pointer's high byte
	mem.Write(0x0000, 0x56) // wrapped-to high byte
	mem.Write(0x5634, 0xAB) // correct target
	mem.Write(0x1234, 0xCD) // what the unwrapped (buggy) pointer would read

	c.Step()
	if c.A != 0x00AB {
		t.Errorf("A = %#x, want 0xAB (pointer should wrap to 0x5634, not 0x1234)", c.A)
	}
}

// addrDPIndexedIndirectX shares the same pointer-wrap helper; confirm
// the (dp,X) form wraps identically once X is folded into the
// direct-page offset before the pointer fetch.
func TestDPIndexedIndirectXWrapsWithinPage(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.setP(P_M)
	c.X = 1
	mem.Write(0x8000, 0xA1) // LDA (dp,X)
	mem.Write(0x8001, 0xFE)
	mem.Write(0x00FF, 0x34) // dp+X == 0xFF
	mem.Write(0x0100, 0x12)
	mem.Write(0x0000, 0x56)
	mem.Write(0x5634, 0xAB)
	mem.Write(0x1234, 0xCD)

	c.Step()
	if c.A != 0x00AB {
		t.Errorf("A = %#x, want 0xAB (pointer should wrap to 0x5634, not 0x1234)", c.A)
	}
}

// Round-trip law: XCE;XCE returns to the original (E,C) state.
func TestXCERoundTrip(t *testing.T) {
	c, _ := newCpu(t, 0x8000)
	c.setP(P_CARRY)
	eBefore, cBefore := c.E, c.testP(P_CARRY)
	c.iXCE()
	c.iXCE()
	if c.E != eBefore || c.testP(P_CARRY) != cBefore {
		t.Errorf("XCE;XCE = (E=%v,C=%v), want (E=%v,C=%v)", c.E, c.testP(P_CARRY), eBefore, cBefore)
	}
}

// Round-trip law: PHP;PLP is the identity on P.
func TestPHPPLPRoundTrip(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	c.E = false
	c.P = P_NEGATIVE | P_CARRY | P_ZERO
	before := c.P
	mem.Write(0x8000, 0x08) // PHP
	mem.Write(0x8001, 0x28) // PLP
	c.Step()
	c.Step()
	if c.P != before {
		t.Errorf("P after PHP;PLP = %#x, want %#x", c.P, before)
	}
}

// Round-trip law: REP(mask);SEP(mask) restores prior P bits outside
// emulation mode when every bit in mask was set beforehand.
func TestREPSEPRoundTrip(t *testing.T) {
	c, _ := newCpu(t, 0x8000)
	c.E = false
	c.setP(P_DECIMAL)
	before := c.P
	c.iREP(P_M | P_X | P_DECIMAL)
	c.iSEP(P_M | P_X | P_DECIMAL)
	if c.P != before {
		t.Errorf("P after REP;SEP = %#x, want %#x", c.P, before)
	}
}

// Universal invariant: S confined to page 1 whenever E=1.
func TestStackConfinedInEmulation(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	for i := 0; i < 3; i++ {
		mem.Write(uint32(0x8000+i), 0x48) // PHA
	}
	for i := 0; i < 3; i++ {
		c.Step()
		if c.S&0xFF00 != 0x0100 {
			t.Fatalf("S = %#x after push %d, high byte not 0x01", c.S, i)
		}
	}
}

// Universal invariant: X/Y high bytes forced to zero when the index
// width flag is 1.
func TestIndexMaskedOnXFlagSet(t *testing.T) {
	c, _ := newCpu(t, 0x8000)
	c.E = false
	c.setP(P_X)
	c.X = 0x1234
	v := c.maskIndex(c.X + 1)
	if v&0xFF00 != 0 {
		t.Errorf("maskIndex result = %#x, high byte not masked", v)
	}
}

func TestIRQMaskedByInterruptFlag(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	mem.setVector(VecIRQEmu, 0x9000)
	c.setP(P_INTERRUPT)
	sender := &fakeSender{raised: true}
	c.irq = sender
	mem.Write(0x8000, 0xEA) // NOP
	c.Step()
	if c.PC != 0x8001 {
		t.Errorf("PC = %#x, want 0x8001 (IRQ should have been masked)", c.PC)
	}

	c.clearP(P_INTERRUPT)
	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("PC = %#x, want 0x9000 (IRQ should have been taken)", c.PC)
	}
}

func TestNMINotMaskedByInterruptFlag(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	mem.setVector(VecNMIEmu, 0x9500)
	c.setP(P_INTERRUPT)
	c.NMI()
	mem.Write(0x8000, 0xEA) // NOP
	c.Step()
	if c.PC != 0x9500 {
		t.Errorf("PC = %#x, want 0x9500", c.PC)
	}
}

func TestWAIResumesOnInterrupt(t *testing.T) {
	c, mem := newCpu(t, 0x8000)
	mem.setVector(VecIRQEmu, 0x9100)
	mem.Write(0x8000, 0xCB) // WAI
	c.Step()
	if !c.Waiting() {
		t.Fatal("not waiting after WAI")
	}
	c.Step()
	if !c.Waiting() {
		t.Error("should still be waiting with no interrupt pending")
	}
	c.clearP(P_INTERRUPT) // Reset leaves I set, which would mask the IRQ
	c.IRQ()
	c.Step()
	if c.Waiting() {
		t.Error("still waiting after interrupt delivered")
	}
	if c.PC != 0x9100 {
		t.Errorf("PC = %#x, want 0x9100", c.PC)
	}
}

func TestNOPTable(t *testing.T) {
	tests := []struct {
		name string
		op   uint8
	}{
		{"NOP", 0xEA},
		{"WDM", 0x42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mem := newCpu(t, 0x8000)
			mem.Write(0x8000, tc.op)
			mem.Write(0x8001, 0x00)
			before := *c
			c.Step()
			if c.A != before.A || c.X != before.X || c.Y != before.Y || c.P != before.P {
				t.Errorf("registers changed: %s", spew.Sdump(c))
			}
		})
	}
}
