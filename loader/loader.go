// Package loader reads a flat binary image from disk and turns it into a
// ready-to-run CPU.
package loader

import (
	"fmt"
	"os"

	"github.com/sarchlab/arm7pipe/cpu"
)

// Load reads the file at path and constructs a CPU with that file's
// contents loaded into memory at address 0.
func Load(path string) (*cpu.CPU, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}

	c, err := cpu.NewFromImage(data)
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}

	return c, nil
}
