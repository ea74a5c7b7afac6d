package servicepoint

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/flavioheleno/servicepoint/bitmap"
	"github.com/flavioheleno/servicepoint/compression"
)

// ErrHalted is returned by Display methods after Halt.
var ErrHalted = errors.New("servicepoint: halted")

// Display is a display.Drawer for the whole screen. It keeps a copy of the
// last frame it sent and only transmits the tile-aligned rectangle that
// changed.
//
// A Display is not safe for concurrent use.
type Display struct {
	conn        *Connection
	rect        image.Rectangle
	compression compression.Code

	// Pixel buffers
	next *bitmap.PixelGrid // Frame being composed
	last *bitmap.PixelGrid // Last frame sent, nil until the first send

	halted bool
}

// NewDisplay returns a Display sending through c. Bitmap windows are
// compressed with the Compression configured on c.
func NewDisplay(c *Connection) *Display {
	return &Display{
		conn:        c,
		rect:        image.Rect(0, 0, PixelWidth, PixelHeight),
		compression: c.compression,
		next:        bitmap.MaxSizedPixelGrid(),
	}
}

// ColorModel returns the color model of the display.
func (d *Display) ColorModel() color.Model {
	return bitmap.PixelModel
}

// Bounds returns the image bounds of the display.
func (d *Display) Bounds() image.Rectangle {
	return d.rect
}

// Write sends a full frame of packed pixels.
// The data must be exactly PixelCount/8 bytes.
func (d *Display) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != PixelCount/8 {
		return 0, errors.New("servicepoint: invalid buffer size")
	}
	copy(d.next.Data(), pixels)
	if err := d.sendRect(0, d.rect.Dx()/TileSize-1, 0, d.rect.Dy()-1); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display. Only the changed region, widened to
// whole tile columns, is sent.
func (d *Display) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	draw.Draw(d.next.DrawImage(), dst, src, sp, draw.Src)

	if d.last == nil {
		return d.sendRect(0, d.rect.Dx()/TileSize-1, 0, d.rect.Dy()-1)
	}

	minCol, maxCol, minRow, maxRow := d.calculateDiff()
	if minCol > maxCol {
		// No changes
		return nil
	}
	return d.sendRect(minCol, maxCol, minRow, maxRow)
}

// calculateDiff compares the next and last frames and returns the changed
// byte columns and pixel rows, or (1, 0, 0, 0) if nothing changed.
func (d *Display) calculateDiff() (minCol, maxCol, minRow, maxRow int) {
	stride := d.rect.Dx() / TileSize
	height := d.rect.Dy()
	next, last := d.next.Data(), d.last.Data()

	minRow = height
	maxRow = -1
	minCol = stride
	maxCol = -1

	for y := 0; y < height; y++ {
		rowStart := y * stride
		rowEnd := rowStart + stride

		if bytes.Equal(last[rowStart:rowEnd], next[rowStart:rowEnd]) {
			continue
		}
		if y < minRow {
			minRow = y
		}
		maxRow = y

		for x := 0; x < stride; x++ {
			if last[rowStart+x] != next[rowStart+x] {
				if x < minCol {
					minCol = x
				}
				if x > maxCol {
					maxCol = x
				}
			}
		}
	}

	if maxRow < 0 {
		return 1, 0, 0, 0
	}
	return
}

// sendRect sends the region between byte columns minCol..maxCol and pixel
// rows minRow..maxRow of the next frame.
func (d *Display) sendRect(minCol, maxCol, minRow, maxRow int) error {
	x := minCol * TileSize
	w := (maxCol - minCol + 1) * TileSize
	h := maxRow - minRow + 1

	cmd := BitmapLinearWin{
		Origin:      Origin{X: x, Y: minRow},
		Pixels:      d.next.Window(x, minRow, w, h),
		Compression: d.compression,
	}
	if err := d.conn.Send(cmd); err != nil {
		return err
	}
	d.last = d.next.Clone()
	return nil
}

// Clear turns off every pixel.
func (d *Display) Clear() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.conn.Send(Clear{}); err != nil {
		return err
	}
	d.next.Fill(false)
	d.last = d.next.Clone()
	return nil
}

// SetBrightness sets the brightness of the whole display.
func (d *Display) SetBrightness(b uint8) error {
	if d.halted {
		return ErrHalted
	}
	return d.conn.Send(Brightness(b))
}

// HardReset restarts the display firmware. The last frame is forgotten, so
// the next Draw sends the whole screen.
func (d *Display) HardReset() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.conn.Send(HardReset{}); err != nil {
		return err
	}
	d.last = nil
	return nil
}

// Halt fades the display out.
// After calling Halt, the Display rejects further commands.
func (d *Display) Halt() error {
	d.halted = true
	return d.conn.Send(FadeOut{})
}

// String returns a string representation of the device.
func (d *Display) String() string {
	return fmt.Sprintf("servicepoint.Display{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = (*Display)(nil)
