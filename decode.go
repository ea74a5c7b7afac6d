package servicepoint

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/servicepoint/bitmap"
	"github.com/flavioheleno/servicepoint/compression"
)

var (
	// ErrUnknownCommand is returned for a packet with an unassigned command code.
	ErrUnknownCommand = errors.New("servicepoint: unknown command code")
	// ErrUnexpectedPayloadSize is returned when the payload length does not
	// match what the header announces.
	ErrUnexpectedPayloadSize = errors.New("servicepoint: unexpected payload size")
	// ErrExtraneousHeaderValues is returned when a header field the command
	// does not use is non-zero.
	ErrExtraneousHeaderValues = errors.New("servicepoint: extraneous header values")
	// ErrInvalidCompressionCode is returned for an unknown compression code.
	ErrInvalidCompressionCode = errors.New("servicepoint: invalid compression code")
)

var emptyCommands = map[CommandCode]Command{
	CodeClear:        Clear{},
	CodeHardReset:    HardReset{},
	CodeFadeOut:      FadeOut{},
	CodeBitmapLegacy: BitmapLegacy{},
}

// CommandFromPacket reverses Command.Packet. Compressed payloads are
// decompressed. The returned command may retain p's payload.
func CommandFromPacket(p Packet) (Command, error) {
	h := p.Header
	switch h.Command {
	case CodeClear, CodeHardReset, CodeFadeOut, CodeBitmapLegacy:
		if err := checkEmpty(p); err != nil {
			return nil, err
		}
		return emptyCommands[h.Command], nil
	case CodeBrightness:
		if err := checkUnused(h, h.A, h.B, h.C, h.D); err != nil {
			return nil, err
		}
		if len(p.Payload) != 1 {
			return nil, payloadSizeError(h, 1, len(p.Payload))
		}
		return Brightness(p.Payload[0]), nil
	case CodeCharBrightness:
		g, err := bytesWindow(p)
		if err != nil {
			return nil, err
		}
		return CharBrightness{Origin: Origin{X: int(h.A), Y: int(h.B)}, Values: g}, nil
	case CodeCp437Data:
		g, err := bytesWindow(p)
		if err != nil {
			return nil, err
		}
		return Cp437Data{Origin: Origin{X: int(h.A), Y: int(h.B)}, Chars: g}, nil
	case CodeBitmapLinear:
		bits, c, err := linear(p)
		if err != nil {
			return nil, err
		}
		return BitmapLinear{Offset: h.A, Bits: bits, Compression: c}, nil
	case CodeBitmapLinearAnd:
		bits, c, err := linear(p)
		if err != nil {
			return nil, err
		}
		return BitmapLinearAnd{Offset: h.A, Bits: bits, Compression: c}, nil
	case CodeBitmapLinearOr:
		bits, c, err := linear(p)
		if err != nil {
			return nil, err
		}
		return BitmapLinearOr{Offset: h.A, Bits: bits, Compression: c}, nil
	case CodeBitmapLinearXor:
		bits, c, err := linear(p)
		if err != nil {
			return nil, err
		}
		return BitmapLinearXor{Offset: h.A, Bits: bits, Compression: c}, nil
	}

	if c, ok := winCompression(h.Command); ok {
		payload, err := compression.Decompress(c, p.Payload)
		if err != nil {
			return nil, err
		}
		width, height := int(h.C)*TileSize, int(h.D)
		if want := int(h.C) * height; len(payload) != want {
			return nil, payloadSizeError(h, want, len(payload))
		}
		return BitmapLinearWin{
			Origin:      Origin{X: int(h.A) * TileSize, Y: int(h.B)},
			Pixels:      bitmap.LoadPixelGrid(width, height, payload),
			Compression: c,
		}, nil
	}

	return nil, fmt.Errorf("%w: 0x%04x", ErrUnknownCommand, uint16(h.Command))
}

func checkEmpty(p Packet) error {
	h := p.Header
	if err := checkUnused(h, h.A, h.B, h.C, h.D); err != nil {
		return err
	}
	if len(p.Payload) != 0 {
		return payloadSizeError(h, 0, len(p.Payload))
	}
	return nil
}

func checkUnused(h Header, fields ...uint16) error {
	for _, f := range fields {
		if f != 0 {
			return fmt.Errorf("%w: %v", ErrExtraneousHeaderValues, h)
		}
	}
	return nil
}

func payloadSizeError(h Header, want, got int) error {
	return fmt.Errorf("%w: %v carries %d bytes, want %d", ErrUnexpectedPayloadSize, h.Command, got, want)
}

func bytesWindow(p Packet) (*bitmap.ByteGrid, error) {
	w, h := int(p.Header.C), int(p.Header.D)
	if len(p.Payload) != w*h {
		return nil, payloadSizeError(p.Header, w*h, len(p.Payload))
	}
	return bitmap.LoadByteGrid(w, h, p.Payload), nil
}

func linear(p Packet) (*bitmap.BitVec, compression.Code, error) {
	h := p.Header
	if err := checkUnused(h, h.D); err != nil {
		return nil, 0, err
	}
	c := compression.Code(h.C)
	if !c.Valid() {
		return nil, 0, fmt.Errorf("%w: 0x%04x", ErrInvalidCompressionCode, h.C)
	}
	payload, err := compression.Decompress(c, p.Payload)
	if err != nil {
		return nil, 0, err
	}
	if len(payload) != int(h.B) {
		return nil, 0, payloadSizeError(h, int(h.B), len(payload))
	}
	return bitmap.LoadBitVec(payload), c, nil
}
