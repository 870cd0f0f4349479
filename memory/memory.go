// Package memory defines the basic interface for working with a
// 65C816 24-bit address space. Since every host embedding this core
// maps its own devices and mirroring this is defined purely as an
// interface; the core never assumes anything about what backs it.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// AddrMask covers the full 24-bit address space the 65C816 can form
// from a bank byte and a 16-bit offset.
const AddrMask = 0x00FFFFFF

// Bank is the contract the cpu package reads and writes through. addr
// is always a 24-bit value (bank<<16 | offset); implementations are
// free to mask, mirror, or bank-switch it however their memory map
// requires.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint32) uint8
	// Write updates addr with the new value. For ROM addresses this is
	// simply a no-op without any error.
	Write(addr uint32, val uint8)
	// PowerOn performs power-on reset of the memory. This is
	// implementation specific as to whether it's randomized or preset
	// to all zeros.
	PowerOn()
}

// flat implements Bank as a single contiguous array covering some
// power-of-2 slice of the 24-bit space. Addresses are masked to the
// array length, so a bank smaller than 16MB aliases (mirrors) on
// Read/Write exactly like real hardware decoding a partial address bus.
type flat struct {
	mem []uint8
}

// NewFlatBank creates a R/W bank of the given size covering the low
// end of the 24-bit address space. size must be a power of 2 no
// larger than 16MB (1<<24).
func NewFlatBank(size int) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<24 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 16MB", size)
	}
	return &flat{mem: make([]uint8, size)}, nil
}

// Read implements Bank. addr is masked to fit the backing array.
func (f *flat) Read(addr uint32) uint8 {
	return f.mem[addr&uint32(len(f.mem)-1)]
}

// Write implements Bank. addr is masked to fit the backing array.
func (f *flat) Write(addr uint32, val uint8) {
	f.mem[addr&uint32(len(f.mem)-1)] = val
}

// PowerOn implements Bank and randomizes the backing array, matching
// real RAM contents being undefined at power-on.
func (f *flat) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range f.mem {
		f.mem[i] = uint8(rand.Intn(256))
	}
}
