// Package servicepoint controls a servicepoint pixel display over UDP.
//
// The display is a wall of 56×20 tiles, each 8×8 monochrome pixels, for a
// total of 448×160 pixels. Every tile also has its own brightness. The display
// listens for UDP datagrams on port 2342 and never answers.
//
// # Wire Format
//
// Every command is a single datagram: a 10-byte header of five big-endian
// 16-bit values followed by an optional payload:
//
//	+---------+------+------+------+------+-----------+
//	| command |  a   |  b   |  c   |  d   |  payload  |
//	+---------+------+------+------+------+-----------+
//	  2 bytes  2      2      2      2      0..n bytes
//
// The meaning of a, b, c and d depends on the command. Unused fields are zero.
//
// # Commands
//
// - Clear, HardReset, FadeOut, BitmapLegacy: header only
// - Brightness: one byte for the whole display
// - CharBrightness: per-tile brightness for a rectangle of tiles
// - Cp437Data: code page 437 characters for a rectangle of tiles
// - BitmapLinear, BitmapLinearAnd, BitmapLinearOr, BitmapLinearXor: a run of
// pixels starting at a linear offset, combined with the screen contents
// - BitmapLinearWin: a rectangle of pixels whose left edge is on a tile column
//
// Pixel payloads can be compressed with zlib, bzip2, LZMA or Zstandard. See
// package compression.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/servicepoint"
//		"github.com/flavioheleno/servicepoint/bitmap"
//	)
//
//	func main() {
//		c, err := servicepoint.Open("172.23.42.29", nil)
//		if err != nil {
//			panic(err)
//		}
//		defer c.Close()
//
//		chars, _ := servicepoint.Cp437Grid([]string{"Hello, World!"})
//		c.Send(servicepoint.Cp437Data{Chars: chars})
//
//		pixels := bitmap.MaxSizedPixelGrid()
//		pixels.Fill(true)
//		c.Send(servicepoint.BitmapLinearWin{Pixels: pixels})
//	}
//
// A command takes ownership of the grids it carries; do not touch them after
// Send.
//
// # Differential Updates
//
// Display implements the display.Drawer interface from periph.io. It keeps the
// last frame sent and only transmits the tile-aligned region that changed:
//
//	d := servicepoint.NewDisplay(c)
//	d.Draw(d.Bounds(), img, image.Point{})
//
// # Frame Pacing
//
// The display processes about one frame every 30ms and silently drops
// datagrams arriving faster. Callers animating the screen should wait
// FramePacing between frames.
//
// # Observability
//
// Connection events are logged with log/slog. Set Opts.Registerer to count
// packets, bytes and failures with Prometheus.
package servicepoint
