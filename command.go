package servicepoint

import (
	"fmt"

	"github.com/flavioheleno/servicepoint/bitmap"
	"github.com/flavioheleno/servicepoint/compression"
)

// Command is a single instruction for the display.
//
// Packet converts the command into its wire packet. Commands carrying grids
// or bit vectors hand their backing storage to the packet, so a command must
// be encoded only once and its data must not be used afterwards.
type Command interface {
	Packet() (Packet, error)
	Code() CommandCode
}

// Origin is the top left corner of a window. Its unit depends on the command:
// tiles for CharBrightness and Cp437Data, pixels for BitmapLinearWin.
type Origin struct {
	X, Y int
}

// Clear turns off every pixel.
type Clear struct{}

// HardReset restarts the display firmware.
type HardReset struct{}

// FadeOut slowly decreases brightness until the display is dark.
type FadeOut struct{}

// BitmapLegacy is accepted by the display but does nothing. It exists for
// compatibility with older clients.
type BitmapLegacy struct{}

// Brightness sets the brightness of every tile.
type Brightness uint8

// CharBrightness sets per-tile brightness for the window of Values.Width() x
// Values.Height() tiles starting at Origin.
type CharBrightness struct {
	Origin Origin
	Values *bitmap.ByteGrid
}

// Cp437Data shows text. Chars holds one code page 437 character per tile.
type Cp437Data struct {
	Origin Origin
	Chars  *bitmap.ByteGrid
}

// BitmapLinear overwrites the framebuffer starting at byte Offset with Bits.
type BitmapLinear struct {
	Offset      uint16
	Bits        *bitmap.BitVec
	Compression compression.Code
}

// BitmapLinearAnd combines Bits into the framebuffer at byte Offset with a
// bitwise AND.
type BitmapLinearAnd struct {
	Offset      uint16
	Bits        *bitmap.BitVec
	Compression compression.Code
}

// BitmapLinearOr combines Bits into the framebuffer at byte Offset with a
// bitwise OR.
type BitmapLinearOr struct {
	Offset      uint16
	Bits        *bitmap.BitVec
	Compression compression.Code
}

// BitmapLinearXor combines Bits into the framebuffer at byte Offset with a
// bitwise XOR.
type BitmapLinearXor struct {
	Offset      uint16
	Bits        *bitmap.BitVec
	Compression compression.Code
}

// BitmapLinearWin replaces the pixels of the window starting at Origin (in
// pixels) with Pixels. Origin.X must be divisible by TileSize.
type BitmapLinearWin struct {
	Origin      Origin
	Pixels      *bitmap.PixelGrid
	Compression compression.Code
}

func (Clear) Code() CommandCode           { return CodeClear }
func (HardReset) Code() CommandCode       { return CodeHardReset }
func (FadeOut) Code() CommandCode         { return CodeFadeOut }
func (BitmapLegacy) Code() CommandCode    { return CodeBitmapLegacy }
func (Brightness) Code() CommandCode      { return CodeBrightness }
func (CharBrightness) Code() CommandCode  { return CodeCharBrightness }
func (Cp437Data) Code() CommandCode       { return CodeCp437Data }
func (BitmapLinear) Code() CommandCode    { return CodeBitmapLinear }
func (BitmapLinearAnd) Code() CommandCode { return CodeBitmapLinearAnd }
func (BitmapLinearOr) Code() CommandCode  { return CodeBitmapLinearOr }
func (BitmapLinearXor) Code() CommandCode { return CodeBitmapLinearXor }

// Code returns the command code for the chosen compression.
func (c BitmapLinearWin) Code() CommandCode {
	code, ok := winCodes[c.Compression]
	if !ok {
		return CodeBitmapLinearWin
	}
	return code
}

func (c Clear) Packet() (Packet, error)        { return emptyPacket(c.Code()), nil }
func (c HardReset) Packet() (Packet, error)    { return emptyPacket(c.Code()), nil }
func (c FadeOut) Packet() (Packet, error)      { return emptyPacket(c.Code()), nil }
func (c BitmapLegacy) Packet() (Packet, error) { return emptyPacket(c.Code()), nil }

func (c Brightness) Packet() (Packet, error) {
	return Packet{
		Header:  Header{Command: c.Code()},
		Payload: []byte{byte(c)},
	}, nil
}

func (c CharBrightness) Packet() (Packet, error) {
	return bytesWindowPacket(c.Code(), c.Origin, c.Values), nil
}

func (c Cp437Data) Packet() (Packet, error) {
	return bytesWindowPacket(c.Code(), c.Origin, c.Chars), nil
}

func (c BitmapLinear) Packet() (Packet, error) {
	return linearPacket(c.Code(), c.Offset, c.Bits, c.Compression)
}

func (c BitmapLinearAnd) Packet() (Packet, error) {
	return linearPacket(c.Code(), c.Offset, c.Bits, c.Compression)
}

func (c BitmapLinearOr) Packet() (Packet, error) {
	return linearPacket(c.Code(), c.Offset, c.Bits, c.Compression)
}

func (c BitmapLinearXor) Packet() (Packet, error) {
	return linearPacket(c.Code(), c.Offset, c.Bits, c.Compression)
}

// Packet encodes the window. The header carries x and width in tiles and y
// and height in pixel rows.
func (c BitmapLinearWin) Packet() (Packet, error) {
	if c.Origin.X%TileSize != 0 {
		panic(fmt.Sprintf("servicepoint: window x %d is not divisible by %d", c.Origin.X, TileSize))
	}
	code, ok := winCodes[c.Compression]
	if !ok {
		return Packet{}, fmt.Errorf("%w: %v", compression.ErrUnknownCode, c.Compression)
	}
	w, h := c.Pixels.Width(), c.Pixels.Height()
	header := Header{
		Command: code,
		A:       u16("x", c.Origin.X/TileSize),
		B:       u16("y", c.Origin.Y),
		C:       u16("width", w/TileSize),
		D:       u16("height", h),
	}
	payload, err := compression.Compress(c.Compression, c.Pixels.Bytes())
	if err != nil {
		return Packet{}, err
	}
	return Packet{Header: header, Payload: payload}, nil
}

func emptyPacket(code CommandCode) Packet {
	return Packet{Header: Header{Command: code}, Payload: []byte{}}
}

func bytesWindowPacket(code CommandCode, origin Origin, grid *bitmap.ByteGrid) Packet {
	header := Header{
		Command: code,
		A:       u16("x", origin.X),
		B:       u16("y", origin.Y),
		C:       u16("width", grid.Width()),
		D:       u16("height", grid.Height()),
	}
	return Packet{Header: header, Payload: grid.Bytes()}
}

func linearPacket(code CommandCode, offset uint16, bits *bitmap.BitVec, c compression.Code) (Packet, error) {
	// The bits are only consumed once the packet can be built.
	if !c.Valid() {
		return Packet{}, fmt.Errorf("%w: %v", compression.ErrUnknownCode, c)
	}
	data := bits.Bytes()
	header := Header{
		Command: code,
		A:       offset,
		B:       u16("length", len(data)),
		C:       uint16(c),
	}
	payload, err := compression.Compress(c, data)
	if err != nil {
		return Packet{}, err
	}
	return Packet{Header: header, Payload: payload}, nil
}

// u16 narrows a header value, panicking when it does not fit on the wire.
func u16(name string, v int) uint16 {
	if v < 0 || v > 0xFFFF {
		panic(fmt.Sprintf("servicepoint: %s %d does not fit in a header field", name, v))
	}
	return uint16(v)
}
