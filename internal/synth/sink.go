package synth

import (
	"image"
	"image/color"
)

// Sink is the drawing surface a generation pass commits tiles to.
//
// The engine issues, per grid cell, exactly one base blit (straight or
// mirrored) plus at most one translucent fill. Implementations decide how
// to realize the operations; internal/raster provides an image-backed one,
// and tests use recording sinks.
type Sink interface {
	// BlitTile draws the tile's 8x8 source region scaled into dst.
	BlitTile(t Tile, dst image.Rectangle)

	// BlitTileMirrored draws the tile's source region flipped about the
	// cell's vertical axis, scaled into dst. Used by the mirror glitch in
	// place of the straight blit.
	BlitTileMirrored(t Tile, dst image.Rectangle)

	// FillRect composites a translucent color over dst. The alpha channel
	// of c is the opacity to composite with; the region drawn underneath
	// must remain partially visible.
	FillRect(dst image.Rectangle, c color.NRGBA)
}
