package servicepoint

import (
	"fmt"

	"github.com/flavioheleno/servicepoint/compression"
)

// CommandCode is the first header field and selects how the display
// interprets the rest of the packet.
type CommandCode uint16

const (
	CodeClear                CommandCode = 0x0002
	CodeCp437Data            CommandCode = 0x0003
	CodeCharBrightness       CommandCode = 0x0005
	CodeBrightness           CommandCode = 0x0007
	CodeHardReset            CommandCode = 0x000b
	CodeFadeOut              CommandCode = 0x000d
	CodeBitmapLegacy         CommandCode = 0x0010
	CodeBitmapLinear         CommandCode = 0x0012
	CodeBitmapLinearWin      CommandCode = 0x0013
	CodeBitmapLinearAnd      CommandCode = 0x0014
	CodeBitmapLinearOr       CommandCode = 0x0015
	CodeBitmapLinearXor      CommandCode = 0x0016
	CodeBitmapLinearWinZlib  CommandCode = 0x0017
	CodeBitmapLinearWinBzip2 CommandCode = 0x0018
	CodeBitmapLinearWinLzma  CommandCode = 0x0019
	CodeBitmapLinearWinZstd  CommandCode = 0x001a
)

var commandNames = map[CommandCode]string{
	CodeClear:                "Clear",
	CodeCp437Data:            "Cp437Data",
	CodeCharBrightness:       "CharBrightness",
	CodeBrightness:           "Brightness",
	CodeHardReset:            "HardReset",
	CodeFadeOut:              "FadeOut",
	CodeBitmapLegacy:         "BitmapLegacy",
	CodeBitmapLinear:         "BitmapLinear",
	CodeBitmapLinearWin:      "BitmapLinearWin",
	CodeBitmapLinearAnd:      "BitmapLinearAnd",
	CodeBitmapLinearOr:       "BitmapLinearOr",
	CodeBitmapLinearXor:      "BitmapLinearXor",
	CodeBitmapLinearWinZlib:  "BitmapLinearWinZlib",
	CodeBitmapLinearWinBzip2: "BitmapLinearWinBzip2",
	CodeBitmapLinearWinLzma:  "BitmapLinearWinLzma",
	CodeBitmapLinearWinZstd:  "BitmapLinearWinZstd",
}

func (c CommandCode) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommandCode(0x%04x)", uint16(c))
}

// BitmapLinearWin has no spare header field for the compression code, so the
// compression is folded into the command code instead.
var winCodes = map[compression.Code]CommandCode{
	compression.Uncompressed: CodeBitmapLinearWin,
	compression.Zlib:         CodeBitmapLinearWinZlib,
	compression.Bzip2:        CodeBitmapLinearWinBzip2,
	compression.Lzma:         CodeBitmapLinearWinLzma,
	compression.Zstd:         CodeBitmapLinearWinZstd,
}

func winCompression(code CommandCode) (compression.Code, bool) {
	for c, wc := range winCodes {
		if wc == code {
			return c, true
		}
	}
	return 0, false
}
