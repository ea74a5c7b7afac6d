package bitmap

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextFace is the font used by DrawText. Each glyph cell is 7x13 pixels.
var TextFace font.Face = basicfont.Face7x13

// DrawText renders s onto dst with its baseline starting at (x, y), setting
// glyph pixels to on and leaving the background untouched.
func DrawText(dst draw.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(PixelOn),
		Face: TextFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextGrid renders lines of text into a new PixelGrid just large enough to
// hold them. The width is rounded up to the next multiple of 8.
func TextGrid(lines []string) *PixelGrid {
	m := TextFace.Metrics()
	lineHeight := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(TextFace, line).Ceil(); w > width {
			width = w
		}
	}
	width = (width + 7) &^ 7

	g := NewPixelGrid(width, lineHeight*len(lines))
	img := g.DrawImage()
	for i, line := range lines {
		DrawText(img, 0, i*lineHeight+ascent, line)
	}
	return g
}
