// Package loader reads a raw binary image into a running Z80 system's
// memory: read the whole file, check it fits the destination, write
// it into memory, and position PC at the load point.
package loader

import (
	"fmt"
	"os"

	"github.com/VictorRandomCode/r80/z80"
)

// Load reads the file at path and writes it into sys's memory starting
// at origin, then sets PC to origin. Returns an error if the file
// can't be read or doesn't fit in the space remaining after origin.
func Load(sys *z80.CPU, path string, origin uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	available := sys.Mem.Size() - int(origin)
	if len(data) > available {
		return fmt.Errorf("%s is %d bytes, only %d available from origin %04X", path, len(data), available, origin)
	}

	if err := sys.Mem.SetRange(origin, len(data), data); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	sys.Reg.SetPC(origin)
	return nil
}
