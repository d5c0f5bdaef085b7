// Package romimage loads the Apple II system ROM binary that gets
// copied into the top 12K of the bus's address space.
package romimage

import (
	"fmt"
	"io"
	"os"
)

// Size is the exact size of a real Apple II ROM image: $D000-$FFFF.
const Size = 0x3000

// Load reads path and returns up to Size bytes of ROM content. A
// missing or short file is tolerated - the caller (bus.LoadROM) zero-
// fills whatever Load doesn't return - but any other read failure is
// reported.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't open ROM file %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't read ROM file %q: %w", path, err)
	}
	if len(data) > Size {
		data = data[:Size]
	}
	return data, nil
}
