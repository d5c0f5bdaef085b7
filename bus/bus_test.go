package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAMReadWrite(t *testing.T) {
	b := New()
	b.Write(0x1234, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x1234))
}

func TestROMIsReadOnly(t *testing.T) {
	b := New()
	b.LoadROM([]byte{0xAA, 0xBB, 0xCC})
	assert.Equal(t, uint8(0xAA), b.Read(0xD000))

	b.Write(0xD000, 0xFF)
	assert.Equal(t, uint8(0xAA), b.Read(0xD000), "writes to ROM must be dropped")
}

func TestLoadROMShortImageZeroesRemainder(t *testing.T) {
	b := New()
	b.LoadROM([]byte{0x01, 0x02})
	assert.Equal(t, uint8(0x01), b.Read(0xD000))
	assert.Equal(t, uint8(0x02), b.Read(0xD001))
	assert.Equal(t, uint8(0), b.Read(0xD002))
	assert.Equal(t, uint8(0), b.Read(0xFFFF))
}

func TestKeyboardLatchAndStrobe(t *testing.T) {
	b := New()
	b.SetKey(0xC1)

	assert.Equal(t, uint8(0xC1), b.Read(keyboardLatch))
	assert.Equal(t, uint8(0x41), b.Read(keyboardStrobe), "strobe clears bit 7")
	assert.Equal(t, uint8(0x41), b.Read(keyboardLatch), "latch stays cleared after strobe")
}

func TestKeyboardStrobeViaWrite(t *testing.T) {
	b := New()
	b.SetKey(0xD2)
	b.Write(keyboardStrobe, 0x00)
	assert.Equal(t, uint8(0x52), b.Read(keyboardLatch))
}

func TestIOHoleOtherAddressesReadZero(t *testing.T) {
	b := New()
	assert.Equal(t, uint8(0), b.Read(0xC080))
}

func TestVideoDirtyFlag(t *testing.T) {
	b := New()
	assert.False(t, b.VideoDirty())

	b.Write(0x0400, 0x01)
	assert.True(t, b.VideoDirty())

	b.ClearDirty()
	assert.False(t, b.VideoDirty())

	b.Write(0x0300, 0x01)
	assert.False(t, b.VideoDirty(), "writes outside bit 10 must not dirty the flag")

	b.Write(0x0C00, 0x01)
	assert.True(t, b.VideoDirty(), "the dirty test over-triggers on bit 10 by design")
}

func TestResetLoadsVectorFromROM(t *testing.T) {
	b := New()
	img := make([]byte, 0x3000)
	img[0x2FFC] = 0x00 // $FFFC low
	img[0x2FFD] = 0xD0 // $FFFD high -> 0xD000
	b.LoadROM(img)

	assert.Equal(t, uint16(0xD000), b.CPU().PC)
}
