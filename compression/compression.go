// Package compression implements the payload encodings understood by the
// servicepoint display.
//
// A Code travels in the packet header so the display knows how to unpack the
// payload. The zero Code is Uncompressed, which needs no backend.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz/lzma"
)

// Code identifies a payload encoding on the wire.
type Code uint16

const (
	Uncompressed Code = 0x0000
	Zlib         Code = 0x677a // "gz"
	Bzip2        Code = 0x627a // "bz"
	Lzma         Code = 0x6c7a // "lz"
	Zstd         Code = 0x7a73 // "zs"
)

// ErrUnknownCode is returned for a Code that is not one of the constants above.
var ErrUnknownCode = errors.New("compression: unknown code")

// Codes lists every supported Code.
var Codes = []Code{Uncompressed, Zlib, Bzip2, Lzma, Zstd}

// Valid reports whether c is a known Code.
func (c Code) Valid() bool {
	switch c {
	case Uncompressed, Zlib, Bzip2, Lzma, Zstd:
		return true
	}
	return false
}

func (c Code) String() string {
	switch c {
	case Uncompressed:
		return "uncompressed"
	case Zlib:
		return "zlib"
	case Bzip2:
		return "bzip2"
	case Lzma:
		return "lzma"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("Code(0x%04x)", uint16(c))
}

// ParseCode returns the Code named s, as printed by Code.String.
func ParseCode(s string) (Code, error) {
	for _, c := range Codes {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCode, s)
}

var (
	zstdEncOnce sync.Once
	zstdEnc     *zstd.Encoder
	zstdEncErr  error
	zstdDecOnce sync.Once
	zstdDec     *zstd.Decoder
	zstdDecErr  error
)

func zstdEncoder() (*zstd.Encoder, error) {
	zstdEncOnce.Do(func() {
		zstdEnc, zstdEncErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	})
	return zstdEnc, zstdEncErr
}

func zstdDecoder() (*zstd.Decoder, error) {
	zstdDecOnce.Do(func() {
		zstdDec, zstdDecErr = zstd.NewReader(nil)
	})
	return zstdDec, zstdDecErr
}

// Compress encodes data with c. Uncompressed returns data itself.
func Compress(c Code, data []byte) ([]byte, error) {
	switch c {
	case Uncompressed:
		return data, nil
	case Zstd:
		enc, err := zstdEncoder()
		if err != nil {
			return nil, fmt.Errorf("compression: zstd writer: %w", err)
		}
		return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
	}

	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch c {
	case Zlib:
		w, err = zlib.NewWriterLevel(&buf, zlib.BestCompression)
	case Bzip2:
		w, err = bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	case Lzma:
		w, err = lzma.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnknownCode, uint16(c))
	}
	if err != nil {
		return nil, fmt.Errorf("compression: %v writer: %w", c, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compression: %v write: %w", c, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compression: %v close: %w", c, err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(c Code, data []byte) ([]byte, error) {
	switch c {
	case Uncompressed:
		return data, nil
	case Zstd:
		dec, err := zstdDecoder()
		if err != nil {
			return nil, fmt.Errorf("compression: zstd reader: %w", err)
		}
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("compression: zstd: %w", err)
		}
		return out, nil
	}

	var r io.Reader
	switch c {
	case Zlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("compression: zlib: %w", err)
		}
		defer zr.Close()
		r = zr
	case Bzip2:
		br, err := bzip2.NewReader(bytes.NewReader(data), nil)
		if err != nil {
			return nil, fmt.Errorf("compression: bzip2: %w", err)
		}
		defer br.Close()
		r = br
	case Lzma:
		lr, err := lzma.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("compression: lzma: %w", err)
		}
		r = lr
	default:
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnknownCode, uint16(c))
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compression: %v: %w", c, err)
	}
	return out, nil
}
