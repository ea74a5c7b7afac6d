// Package bitmap provides the grid types used to stage data for the
// servicepoint display.
//
// The display is 56x20 tiles of 8x8 pixels. Pixels are monochrome and stored
// packed, 8 per byte, most significant bit first:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 ...
//	Values: 0 0 0 0 0 1 0 0 | 0 ...
//	Bytes:  0x04            | ...
//
// This package provides:
//
// - BitVec: a packed sequence of bits
// - Grid: the capability shared by all grids (get, set, fill, dimensions)
// - DataRef: access to the raw backing bytes of a grid
// - PixelGrid: a monochrome grid backed by a BitVec, width divisible by 8
// - ByteGrid: a grid with one byte per cell, for brightness and characters
// - Pixel and PixelModel: a 1-bit color type and its color model
//
// Accessing a cell outside a grid, or loading a grid from a buffer of the
// wrong size, is a programming error and panics.
//
// Example usage:
//
//	// Light a single pixel on a full-screen grid
//	g := bitmap.MaxSizedPixelGrid()
//	g.Set(10, 20, true)
//
//	// Cut out the first tile row
//	row := g.Window(0, 0, g.Width(), 8)
//
//	// Use with standard Go image operations
//	draw.Draw(g.DrawImage(), g.Bounds(), image.NewUniform(bitmap.PixelOn), image.Point{}, draw.Src)
package bitmap
