package bitmap

import "fmt"

// Grid is a fixed-size two-dimensional container addressed by (x, y), where
// cell (x, y) lives at linear index x + y*Width().
//
// Accessing a cell outside 0 <= x < Width(), 0 <= y < Height() panics.
type Grid[T any] interface {
	Width() int
	Height() int
	Get(x, y int) T
	// Set stores value at (x, y) and returns the previous value.
	Set(x, y int, value T) T
	Fill(value T)
}

// DataRef is implemented by containers that expose their raw backing bytes.
// The returned slice aliases the container: writes are visible through it and
// it must not be used after the container has been handed off.
type DataRef interface {
	Data() []byte
}

// copyWindow copies the dst-sized rectangle of src starting at (x, y) into dst.
func copyWindow[T any](dst, src Grid[T], x, y int) {
	for wy := 0; wy < dst.Height(); wy++ {
		for wx := 0; wx < dst.Width(); wx++ {
			dst.Set(wx, wy, src.Get(x+wx, y+wy))
		}
	}
}

// equalCells reports whether a and b have the same size and cell values.
func equalCells[T comparable](a, b Grid[T]) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Get(x, y) != b.Get(x, y) {
				return false
			}
		}
	}
	return true
}

func checkIndexes(kind string, x, y, width, height int) {
	if x < 0 || x >= width {
		panic(fmt.Sprintf("bitmap: cannot access %s %d-%d because x is outside of bounds 0..%d", kind, x, y, width))
	}
	if y < 0 || y >= height {
		panic(fmt.Sprintf("bitmap: cannot access %s %d-%d because y is outside of bounds 0..%d", kind, x, y, height))
	}
}
