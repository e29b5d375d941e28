package synth

import (
	"github.com/danielvan/tile-glitch/internal/imaging"
)

// ExcludeTolerance is the per-channel distance (0-255 scale) under which a
// pixel counts as matching the exclusion color.
const ExcludeTolerance = 20

// Tile addresses one 8x8 region within a specific tile source.
//
// A Tile does not own pixel data; (Source, X, Y) is a stable key that is
// re-sampled from the source image on demand. Tiles are immutable once
// created.
type Tile struct {
	// Source is the index of the owning TileSource in the extraction
	// input order.
	Source int `json:"source"`

	// X is the tile-aligned left edge in source-pixel coordinates.
	X int `json:"x"`

	// Y is the tile-aligned top edge in source-pixel coordinates.
	Y int `json:"y"`
}

// Catalog is the ordered set of eligible tiles across all sources.
//
// Order is deterministic for equal inputs: sources in input order, tiles
// row-major within each source. The catalog is rebuilt from scratch
// whenever the source set or the exclusion color changes; it never depends
// on a previous catalog.
type Catalog []Tile

// IndexOf returns the position of the first catalog entry with the same
// source index and tile offset as t, or -1 if no entry matches.
//
// A tile can legitimately be absent: the exclusion filter may have dropped
// it, or the catalog may have been rebuilt since the tile was placed.
func (c Catalog) IndexOf(t Tile) int {
	for i, e := range c {
		if e.Source == t.Source && e.X == t.X && e.Y == t.Y {
			return i
		}
	}
	return -1
}

// Extract slices the given sources into a flat tile catalog.
//
// Parameters:
//   - sources: Tile sources in host order. An empty slice yields an empty
//     catalog, not an error. A source smaller than one tile in either
//     dimension contributes nothing.
//   - exclude: Optional exclusion color. When non-nil, a candidate tile is
//     accepted only if none of its 64 pixels is within ExcludeTolerance of
//     the color on all three channels. When nil, every tile is accepted.
//
// Returns the catalog in deterministic order (see Catalog). Extract has no
// side effects and may be re-run in full on any input change.
func Extract(sources []*TileSource, exclude *imaging.RGBColor) Catalog {
	var catalog Catalog

	for si, src := range sources {
		cols := src.TilesPerRow()
		rows := src.TilesPerCol()

		for ty := 0; ty < rows; ty++ {
			for tx := 0; tx < cols; tx++ {
				t := Tile{Source: si, X: tx * TileSize, Y: ty * TileSize}
				if exclude != nil && touchesColor(src, t, *exclude) {
					continue
				}
				catalog = append(catalog, t)
			}
		}
	}

	return catalog
}

// touchesColor reports whether any pixel in the tile's region is within
// ExcludeTolerance of the given color.
func touchesColor(src *TileSource, t Tile, c imaging.RGBColor) bool {
	min := src.Image.Bounds().Min
	for dy := 0; dy < TileSize; dy++ {
		for dx := 0; dx < TileSize; dx++ {
			px := src.Image.At(min.X+t.X+dx, min.Y+t.Y+dy)
			if c.Near(px, ExcludeTolerance) {
				return true
			}
		}
	}
	return false
}
