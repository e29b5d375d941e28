package synth

import (
	"image"
	"image/color"
	"testing"

	"github.com/danielvan/tile-glitch/internal/imaging"
)

// uniformSource builds an in-memory tile source filled with one color.
func uniformSource(id string, width, height int, c color.Color) *TileSource {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return &TileSource{ID: id, Image: img}
}

// rampSource builds a source where every tile has a distinct solid color,
// derived from its tile coordinates. Useful for telling tiles apart.
func rampSource(id string, tilesAcross, tilesDown int) *TileSource {
	img := image.NewRGBA(image.Rect(0, 0, tilesAcross*TileSize, tilesDown*TileSize))
	for ty := 0; ty < tilesDown; ty++ {
		for tx := 0; tx < tilesAcross; tx++ {
			c := color.RGBA{R: uint8(40 * tx), G: uint8(40 * ty), B: 200, A: 255}
			for dy := 0; dy < TileSize; dy++ {
				for dx := 0; dx < TileSize; dx++ {
					img.Set(tx*TileSize+dx, ty*TileSize+dy, c)
				}
			}
		}
	}
	return &TileSource{ID: id, Image: img}
}

func TestExtract_CatalogSize(t *testing.T) {
	tests := []struct {
		name    string
		sources []*TileSource
		want    int
	}{
		{
			"no sources",
			nil,
			0,
		},
		{
			"single 2x1 tile source",
			[]*TileSource{uniformSource("a", 16, 8, color.RGBA{255, 0, 0, 255})},
			2,
		},
		{
			"partial tiles discarded",
			[]*TileSource{uniformSource("a", 20, 17, color.RGBA{255, 0, 0, 255})},
			4, // floor(20/8) * floor(17/8) = 2*2
		},
		{
			"source smaller than one tile",
			[]*TileSource{uniformSource("tiny", 7, 7, color.RGBA{255, 0, 0, 255})},
			0,
		},
		{
			"multiple sources sum",
			[]*TileSource{
				uniformSource("a", 32, 16, color.RGBA{255, 0, 0, 255}), // 4*2
				uniformSource("b", 7, 100, color.RGBA{0, 255, 0, 255}), // 0
				uniformSource("c", 24, 24, color.RGBA{0, 0, 255, 255}), // 3*3
			},
			17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := Extract(tt.sources, nil)
			if len(catalog) != tt.want {
				t.Errorf("catalog size: got %d, want %d", len(catalog), tt.want)
			}
		})
	}
}

func TestExtract_Order(t *testing.T) {
	sources := []*TileSource{
		rampSource("a", 2, 2),
		rampSource("b", 1, 1),
	}

	catalog := Extract(sources, nil)

	want := Catalog{
		{Source: 0, X: 0, Y: 0},
		{Source: 0, X: 8, Y: 0},
		{Source: 0, X: 0, Y: 8},
		{Source: 0, X: 8, Y: 8},
		{Source: 1, X: 0, Y: 0},
	}
	if len(catalog) != len(want) {
		t.Fatalf("catalog size: got %d, want %d", len(catalog), len(want))
	}
	for i := range want {
		if catalog[i] != want[i] {
			t.Errorf("catalog[%d]: got %+v, want %+v", i, catalog[i], want[i])
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	sources := []*TileSource{rampSource("a", 3, 3), rampSource("b", 2, 4)}

	first := Extract(sources, nil)
	second := Extract(sources, nil)

	if len(first) != len(second) {
		t.Fatalf("catalog sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("catalog[%d] differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestExtract_ExclusionFilter(t *testing.T) {
	// Source with two tiles: left solid magenta, right solid blue.
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{255, 0, 255, 255})
			img.Set(x+8, y, color.RGBA{0, 0, 255, 255})
		}
	}
	src := &TileSource{ID: "a", Image: img}

	exclude := &imaging.RGBColor{R: 255, G: 0, B: 255}
	catalog := Extract([]*TileSource{src}, exclude)

	if len(catalog) != 1 {
		t.Fatalf("catalog size: got %d, want 1", len(catalog))
	}
	if catalog[0].X != 8 || catalog[0].Y != 0 {
		t.Errorf("surviving tile: got (%d,%d), want (8,0)", catalog[0].X, catalog[0].Y)
	}
}

func TestExtract_ExclusionSinglePixel(t *testing.T) {
	// One matching pixel anywhere in the tile is enough to reject it.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	img.Set(7, 7, color.RGBA{255, 0, 255, 255})
	src := &TileSource{ID: "a", Image: img}

	exclude := &imaging.RGBColor{R: 255, G: 0, B: 255}
	if got := Extract([]*TileSource{src}, exclude); len(got) != 0 {
		t.Errorf("catalog size: got %d, want 0", len(got))
	}
}

func TestExtract_ExclusionTolerance(t *testing.T) {
	exclude := &imaging.RGBColor{R: 100, G: 100, B: 100}

	tests := []struct {
		name string
		fill color.RGBA
		kept bool
	}{
		{"exact match rejected", color.RGBA{100, 100, 100, 255}, false},
		{"all channels at tolerance rejected", color.RGBA{120, 120, 80, 255}, false},
		{"one channel past tolerance kept", color.RGBA{121, 100, 100, 255}, true},
		{"far color kept", color.RGBA{200, 10, 10, 255}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := uniformSource("a", 8, 8, tt.fill)
			catalog := Extract([]*TileSource{src}, exclude)
			if kept := len(catalog) == 1; kept != tt.kept {
				t.Errorf("tile kept: got %v, want %v", kept, tt.kept)
			}
		})
	}
}

func TestExtract_NoExclusionAcceptsAll(t *testing.T) {
	src := uniformSource("a", 32, 32, color.RGBA{255, 0, 255, 255})
	if got := Extract([]*TileSource{src}, nil); len(got) != 16 {
		t.Errorf("catalog size: got %d, want 16", len(got))
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	catalog := Extract([]*TileSource{rampSource("a", 2, 2), rampSource("b", 2, 1)}, nil)

	tests := []struct {
		name string
		tile Tile
		want int
	}{
		{"first", Tile{Source: 0, X: 0, Y: 0}, 0},
		{"middle", Tile{Source: 0, X: 0, Y: 8}, 2},
		{"second source", Tile{Source: 1, X: 8, Y: 0}, 5},
		{"unknown offset", Tile{Source: 0, X: 16, Y: 0}, -1},
		{"unknown source", Tile{Source: 9, X: 0, Y: 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.IndexOf(tt.tile); got != tt.want {
				t.Errorf("IndexOf(%+v): got %d, want %d", tt.tile, got, tt.want)
			}
		})
	}
}
