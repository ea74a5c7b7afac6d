package servicepoint

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/flavioheleno/servicepoint/bitmap"
)

// Cp437Grid encodes lines of text into a grid of code page 437 characters
// for Cp437Data, one line per tile row. Shorter lines are padded with zero
// bytes, which the display leaves blank.
func Cp437Grid(lines []string) (*bitmap.ByteGrid, error) {
	enc := charmap.CodePage437.NewEncoder()
	encoded := make([][]byte, len(lines))
	width := 0
	for i, line := range lines {
		b, err := enc.Bytes([]byte(line))
		if err != nil {
			return nil, fmt.Errorf("servicepoint: line %d is not representable in code page 437: %w", i, err)
		}
		encoded[i] = b
		if len(b) > width {
			width = len(b)
		}
	}

	g := bitmap.NewByteGrid(width, len(lines))
	for y, b := range encoded {
		for x, c := range b {
			g.Set(x, y, c)
		}
	}
	return g, nil
}
