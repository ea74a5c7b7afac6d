package servicepoint

import "time"

const (
	// TileSize is the edge length of a tile in pixels.
	TileSize = 8
	// TileWidth is the number of tiles per row.
	TileWidth = 56
	// TileHeight is the number of tile rows.
	TileHeight = 20
	// PixelWidth is the screen width in pixels.
	PixelWidth = TileWidth * TileSize
	// PixelHeight is the screen height in pixels.
	PixelHeight = TileHeight * TileSize
	// PixelCount is the number of pixels on the screen.
	PixelCount = PixelWidth * PixelHeight
)

// DefaultPort is the UDP port the display listens on.
const DefaultPort = 2342

// FramePacing is the minimum interval between frames. The hardware manages
// roughly one frame every 28-29ms; the value is rounded up so fewer packets
// are dropped.
const FramePacing = 30 * time.Millisecond
