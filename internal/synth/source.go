package synth

import "image"

// TileSize is the fixed edge length, in source pixels, of every tile.
const TileSize = 8

// TileSource wraps one decoded tileset image together with an opaque
// identifier chosen by the host (typically the upload filename).
//
// The engine holds a read-only reference to the image; it never mutates
// pixels. When the host removes a source it must rebuild the catalog so
// that no derived Tile keeps referencing it.
type TileSource struct {
	// ID identifies the source for weight lookups and removal.
	ID string

	// Image is the decoded pixel data. Must not be nil.
	Image image.Image
}

// Width returns the source width in pixels.
func (s *TileSource) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the source height in pixels.
func (s *TileSource) Height() int {
	return s.Image.Bounds().Dy()
}

// TilesPerRow returns how many whole tiles fit across the source.
//
// Partial columns on the right edge are discarded, so a 20px wide source
// yields 2 tiles per row.
func (s *TileSource) TilesPerRow() int {
	return s.Width() / TileSize
}

// TilesPerCol returns how many whole tile rows fit down the source.
func (s *TileSource) TilesPerCol() int {
	return s.Height() / TileSize
}
