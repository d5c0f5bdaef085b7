package keyboard

import "testing"

func TestTranslate(t *testing.T) {
	cases := []struct {
		in, want uint8
	}{
		{0x0A, 0x8D}, // LF -> CR, bit 7 set
		{0x04, 0x88}, // left arrow -> BS
		{0x05, 0x95}, // right arrow -> NAK
		{0x07, 0x88}, // bell -> BS
		{'a', 0xC1},  // lowercase folded to uppercase
		{'z', 0xDA},
		{'A', 0xC1},  // already uppercase, unaffected by the fold
		{'1', 0xB1},  // untranslated byte still gets bit 7
	}

	for _, tc := range cases {
		if got := Translate(tc.in); got != tc.want {
			t.Errorf("Translate(0x%02x) = 0x%02x, want 0x%02x", tc.in, got, tc.want)
		}
	}
}
