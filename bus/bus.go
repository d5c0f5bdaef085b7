// Package bus implements the Apple II memory map: 48K of RAM, 12K of
// ROM, and a 4K I/O hole ($C000-$CFFF) carrying the keyboard latch and
// strobe. It is the single Read/Write surface the CPU drives; nothing
// else in this module reaches around it.
// https://en.wikipedia.org/wiki/Apple_II#Memory_map
package bus

import "github.com/example/apple2go/mos6502"

const (
	ramSize = 0xC000 // 48K, $0000-$BFFF
	romSize = 0x3000 // 12K, $D000-$FFFF

	ioStart = 0xC000
	romBase = 0xD000

	keyboardLatch  = 0xC000
	keyboardStrobe = 0xC010

	// textPage1Bit is the bit the dirty check uses; it over-triggers
	// for addresses outside $0400-$07FF (e.g. $0C00) by design - see
	// the keyboard/video host contract.
	textPage1Bit = 0x0400
)

// Bus demultiplexes the CPU's 16-bit address space across RAM, ROM
// and the keyboard I/O window, and tracks whether text page 1 needs a
// redraw.
type Bus struct {
	ram [ramSize]uint8
	rom [romSize]uint8

	kbLatch uint8
	dirty   bool

	cpu *mos6502.CPU
}

// New creates a Bus with an attached CPU. The CPU is reset at
// construction, while ROM is still all zero; LoadROM resets it again,
// so the caller should load ROM bytes with LoadROM before relying on
// the reset vector.
func New() *Bus {
	b := &Bus{}
	b.cpu = mos6502.New(b)
	return b
}

// CPU returns the bus's attached processor.
func (b *Bus) CPU() *mos6502.CPU {
	return b.cpu
}

// LoadROM copies img into the ROM region starting at $D000. img
// shorter than 12K leaves the remaining bytes zero; img longer than
// 12K is truncated. The CPU is reset afterward so the reset vector
// takes effect.
func (b *Bus) LoadROM(img []byte) {
	n := copy(b.rom[:], img)
	for i := n; i < romSize; i++ {
		b.rom[i] = 0
	}
	b.cpu.Reset()
}

// Read implements mos6502.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < ioStart:
		return b.ram[addr]
	case addr >= romBase:
		return b.rom[addr-romBase]
	case addr == keyboardLatch:
		return b.kbLatch
	case addr == keyboardStrobe:
		b.kbLatch &^= 0x80
		return b.kbLatch
	default:
		return 0
	}
}

// Write implements mos6502.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	if addr&textPage1Bit != 0 {
		b.dirty = true
	}

	switch {
	case addr < ioStart:
		b.ram[addr] = val
	case addr == keyboardStrobe:
		b.kbLatch &^= 0x80
	}
}

// SetKey latches a key code, with bit 7 already set to mark it ready.
// The keyboard driver is responsible for the character translations;
// this only stores the result.
func (b *Bus) SetKey(code uint8) {
	b.kbLatch = code
}

// VideoDirty reports whether text page 1 has been written since the
// last call to ClearDirty.
func (b *Bus) VideoDirty() bool {
	return b.dirty
}

// ClearDirty resets the video-dirty flag. The host's Draw calls this
// immediately after drawing a dirty frame.
func (b *Bus) ClearDirty() {
	b.dirty = false
}
