// Package keyboard translates host keystrokes into the byte stream
// the Apple II keyboard latch expects, and polls ebiten for the two
// host-level signals the real keyboard doesn't carry: reset and quit.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Target receives translated key bytes. bus.Bus satisfies this with
// SetKey. Reset requests go to the separate reset func given to New,
// usually the attached CPU's Reset method.
type Target interface {
	SetKey(code uint8)
}

// Driver polls ebiten's input char buffer once per Update and applies
// the Apple II's keycode translations before latching each byte.
type Driver struct {
	target Target
	reset  func()
	chars  []rune
}

// New creates a Driver that latches translated keys into target and
// invokes reset when F7 is pressed, matching the source's reset key.
func New(target Target, reset func()) *Driver {
	return &Driver{target: target, reset: reset}
}

// Poll reads any characters typed since the last call, translates and
// latches each ASCII one (characters above 0x7F are skipped), and
// checks the reset hotkey. Quit is reported via
// the return value so the caller (the ebiten.Game) can return
// ebiten.Termination from its own Update.
func (d *Driver) Poll() (quit bool) {
	d.chars = ebiten.AppendInputChars(d.chars[:0])
	for _, r := range d.chars {
		if r > 0x7F {
			continue
		}
		d.target.SetKey(Translate(uint8(r)))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF7) && d.reset != nil {
		d.reset()
	}

	return inpututil.IsKeyJustPressed(ebiten.KeyF12)
}

// Translate applies the Apple II input driver's byte substitutions and
// sets bit 7 to mark the key ready, per the host keyboard contract:
// LF becomes CR, the left/right arrow and bell codes map to BS/NAK/BS,
// and lowercase letters are folded to uppercase.
func Translate(b uint8) uint8 {
	switch b {
	case 0x0A:
		b = 0x0D
	case 0x04:
		b = 0x08
	case 0x05:
		b = 0x15
	case 0x07:
		b = 0x08
	}
	if b >= 0x61 && b <= 0x7A {
		b &= 0xDF
	}
	return b | 0x80
}
