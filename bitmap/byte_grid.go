package bitmap

import (
	"fmt"
	"image"
	"image/color"
)

// ByteGrid is a grid with one byte per cell. It carries per-tile brightness
// values and character codes.
type ByteGrid struct {
	width  int
	height int
	data   []byte
}

// NewByteGrid returns a zeroed ByteGrid.
func NewByteGrid(width, height int) *ByteGrid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("bitmap: invalid byte grid size %dx%d", width, height))
	}
	return &ByteGrid{
		width:  width,
		height: height,
		data:   make([]byte, width*height),
	}
}

// LoadByteGrid returns a ByteGrid holding a copy of data.
// It panics if len(data) != width*height.
func LoadByteGrid(width, height int, data []byte) *ByteGrid {
	if width < 0 || height < 0 || len(data) != width*height {
		panic(fmt.Sprintf("bitmap: byte data is %d bytes, want %d for %dx%d", len(data), width*height, width, height))
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &ByteGrid{
		width:  width,
		height: height,
		data:   buf,
	}
}

func (g *ByteGrid) Width() int  { return g.width }
func (g *ByteGrid) Height() int { return g.height }

// Get returns the value at (x, y).
func (g *ByteGrid) Get(x, y int) byte {
	checkIndexes("byte", x, y, g.width, g.height)
	return g.data[x+y*g.width]
}

// Set stores value at (x, y) and returns the previous value.
func (g *ByteGrid) Set(x, y int, value byte) byte {
	checkIndexes("byte", x, y, g.width, g.height)
	pos := x + y*g.width
	old := g.data[pos]
	g.data[pos] = value
	return old
}

// Fill sets every cell to value.
func (g *ByteGrid) Fill(value byte) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Window returns a copy of the w×h rectangle whose top left corner is (x, y).
func (g *ByteGrid) Window(x, y, w, h int) *ByteGrid {
	win := NewByteGrid(w, h)
	copyWindow[byte](win, g, x, y)
	return win
}

// Data returns the rows of bytes. Writes through the slice change the grid.
func (g *ByteGrid) Data() []byte {
	return g.data
}

// Clone returns a deep copy.
func (g *ByteGrid) Clone() *ByteGrid {
	return LoadByteGrid(g.width, g.height, g.data)
}

// Equal reports whether g and o have the same size and values.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	return equalCells[byte](g, o)
}

// Bytes releases the rows of bytes to the caller. The grid must not be used
// afterwards.
func (g *ByteGrid) Bytes() []byte {
	data := g.data
	g.data = nil
	g.width, g.height = 0, 0
	return data
}

// DrawImage returns a draw.Image view of g. Cells are read and written as
// 8-bit gray levels.
func (g *ByteGrid) DrawImage() *ByteImage {
	return &ByteImage{g: g}
}

// ByteImage adapts a ByteGrid to draw.Image.
type ByteImage struct {
	g *ByteGrid
}

// ColorModel implements image.Image.
func (b *ByteImage) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (b *ByteImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.g.width, b.g.height)
}

// At implements image.Image. Points outside the grid read as black.
func (b *ByteImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.Gray{}
	}
	return color.Gray{Y: b.g.data[x+y*b.g.width]}
}

// Set implements draw.Image.
func (b *ByteImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	b.g.data[x+y*b.g.width] = color.GrayModel.Convert(c).(color.Gray).Y
}

// Grid returns the underlying ByteGrid.
func (b *ByteImage) Grid() *ByteGrid { return b.g }
