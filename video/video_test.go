package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	mem [0x800]uint8
}

func (f *fakeSource) Read(addr uint16) uint8 { return f.mem[addr] }

func TestDecodeInverseFlashNormal(t *testing.T) {
	assert.Equal(t, Inverse, Decode(0x01).Mode)
	assert.Equal(t, Flash, Decode(0x41).Mode)
	assert.Equal(t, Normal, Decode(0xC1).Mode)
}

func TestDecodeMasksAndRemasksToASCII(t *testing.T) {
	g := Decode(0xC1) // normal 'A'
	assert.Equal(t, 'A', g.Rune)

	g = Decode(0x00) // inverse, control range after masking -> '@'
	assert.Equal(t, '@', g.Rune)
}

func TestDecodeBacktickIsCursorUnderscore(t *testing.T) {
	g := Decode(0x60)
	assert.Equal(t, '_', g.Rune)
}

func TestFrameReadsInterleavedRows(t *testing.T) {
	src := &fakeSource{}
	src.mem[0x400] = 0xC1 // row 0, col 0 -> 'A'
	src.mem[0x480] = 0xC2 // row 1, col 0 -> 'B'
	src.mem[0x7D0] = 0xC3 // row 23, col 0 -> 'C'

	frame := New(src).Frame()
	assert.Equal(t, 'A', frame[0][0].Rune)
	assert.Equal(t, 'B', frame[1][0].Rune)
	assert.Equal(t, 'C', frame[23][0].Rune)
}
