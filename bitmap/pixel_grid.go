package bitmap

import (
	"fmt"
	"image"
	"image/color"
)

// Screen dimensions of the display in pixels.
const (
	maxWidth  = 56 * 8
	maxHeight = 20 * 8
)

// Pixel is a monochrome color: true means the LED is lit.
type Pixel bool

const (
	PixelOff Pixel = false
	PixelOn  Pixel = true
)

// RGBA implements color.Color. A lit pixel is white.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	if p {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toPixel converts any color.Color to Pixel by thresholding its luminance.
func toPixel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return PixelOff
	}
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Pixel(y >= 0x8000)
}

// PixelModel converts colors to Pixel.
var PixelModel = color.ModelFunc(toPixel)

// PixelGrid is a monochrome grid stored in a BitVec, one bit per pixel, rows
// packed left to right. The width must be a multiple of 8 so that every row
// starts on a byte boundary.
type PixelGrid struct {
	width  int
	height int
	bits   *BitVec
}

// NewPixelGrid returns a PixelGrid with all pixels off.
// It panics if width is not divisible by 8.
func NewPixelGrid(width, height int) *PixelGrid {
	checkPixelWidth(width)
	return &PixelGrid{
		width:  width,
		height: height,
		bits:   NewBitVec(width * height),
	}
}

// MaxSizedPixelGrid returns a PixelGrid covering the whole screen.
func MaxSizedPixelGrid() *PixelGrid {
	return NewPixelGrid(maxWidth, maxHeight)
}

// LoadPixelGrid returns a PixelGrid holding a copy of data.
// It panics if width is not divisible by 8 or len(data) != width*height/8.
func LoadPixelGrid(width, height int, data []byte) *PixelGrid {
	checkPixelWidth(width)
	if len(data) != width*height/8 {
		panic(fmt.Sprintf("bitmap: pixel data is %d bytes, want %d for %dx%d", len(data), width*height/8, width, height))
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &PixelGrid{
		width:  width,
		height: height,
		bits:   LoadBitVec(buf),
	}
}

func checkPixelWidth(width int) {
	if width < 0 || width%8 != 0 {
		panic(fmt.Sprintf("bitmap: pixel grid width %d is not divisible by 8", width))
	}
}

func (g *PixelGrid) Width() int  { return g.width }
func (g *PixelGrid) Height() int { return g.height }

// Get returns whether the pixel at (x, y) is lit.
func (g *PixelGrid) Get(x, y int) bool {
	checkIndexes("pixel", x, y, g.width, g.height)
	return g.bits.Get(x + y*g.width)
}

// Set changes the pixel at (x, y) and returns its previous state.
func (g *PixelGrid) Set(x, y int, value bool) bool {
	checkIndexes("pixel", x, y, g.width, g.height)
	return g.bits.Set(x+y*g.width, value)
}

// Fill sets every pixel to value.
func (g *PixelGrid) Fill(value bool) {
	g.bits.Fill(value)
}

// Window returns a copy of the w×h rectangle whose top left corner is (x, y).
// The rectangle must lie inside g and w must be divisible by 8.
func (g *PixelGrid) Window(x, y, w, h int) *PixelGrid {
	win := NewPixelGrid(w, h)
	copyWindow[bool](win, g, x, y)
	return win
}

// Data returns the packed rows. Writes through the slice change the grid.
func (g *PixelGrid) Data() []byte {
	return g.bits.Data()
}

// Clone returns a deep copy.
func (g *PixelGrid) Clone() *PixelGrid {
	return &PixelGrid{
		width:  g.width,
		height: g.height,
		bits:   g.bits.Clone(),
	}
}

// Equal reports whether g and o have the same size and pixels.
func (g *PixelGrid) Equal(o *PixelGrid) bool {
	return equalCells[bool](g, o)
}

// Bytes releases the packed rows to the caller. The grid must not be used
// afterwards.
func (g *PixelGrid) Bytes() []byte {
	g.width, g.height = 0, 0
	return g.bits.Bytes()
}

// ColorModel implements image.Image.
func (g *PixelGrid) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements image.Image.
func (g *PixelGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// At implements image.Image. Points outside the grid read as PixelOff.
func (g *PixelGrid) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(g.Bounds())) {
		return PixelOff
	}
	return Pixel(g.bits.Get(x + y*g.width))
}

// setColor stores c thresholded through PixelModel. Points outside the grid
// are ignored, as draw.Image requires.
func (g *PixelGrid) setColor(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(g.Bounds())) {
		return
	}
	g.bits.Set(x+y*g.width, bool(PixelModel.Convert(c).(Pixel)))
}

// DrawImage returns a draw.Image view of g so the standard image/draw and
// font packages can render into it.
func (g *PixelGrid) DrawImage() *PixelImage {
	return &PixelImage{g: g}
}

// PixelImage adapts a PixelGrid to draw.Image.
type PixelImage struct {
	g *PixelGrid
}

func (p *PixelImage) ColorModel() color.Model     { return PixelModel }
func (p *PixelImage) Bounds() image.Rectangle     { return p.g.Bounds() }
func (p *PixelImage) At(x, y int) color.Color     { return p.g.At(x, y) }
func (p *PixelImage) Set(x, y int, c color.Color) { p.g.setColor(x, y, c) }

// Grid returns the underlying PixelGrid.
func (p *PixelImage) Grid() *PixelGrid { return p.g }
