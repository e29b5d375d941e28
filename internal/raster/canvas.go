package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/danielvan/tile-glitch/internal/synth"
)

// Canvas is an image-backed synth.Sink.
//
// It resolves tile keys against the source list it was built with, crops
// the 8x8 source regions, scales them with nearest-neighbor resampling to
// keep pixel-art tiles crisp, and composites glitch overlays in RGB space.
//
// A Canvas is written by exactly one generation pass at a time.
type Canvas struct {
	img     *image.RGBA
	sources []*synth.TileSource
}

// NewCanvas allocates a canvas sized for a cols x rows grid of cells at
// the given cell edge length in pixels. The background starts opaque
// black.
func NewCanvas(cols, rows, cellSize int, sources []*synth.TileSource) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Canvas{img: img, sources: sources}
}

// Image returns the underlying raster. The caller may encode or inspect
// it after the generation pass completes.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// BlitTile draws the tile's source region scaled into dst.
func (c *Canvas) BlitTile(t synth.Tile, dst image.Rectangle) {
	c.blit(c.region(t), dst)
}

// BlitTileMirrored draws the tile's source region flipped about the
// vertical axis, scaled into dst.
func (c *Canvas) BlitTileMirrored(t synth.Tile, dst image.Rectangle) {
	c.blit(transform.FlipH(c.region(t)), dst)
}

// FillRect composites a translucent color over dst, blending each pixel
// with the fill at the opacity carried in ov.A. Pixels already drawn in
// dst stay partially visible underneath.
func (c *Canvas) FillRect(dst image.Rectangle, ov color.NRGBA) {
	dst = dst.Intersect(c.img.Bounds())
	over := colorful.Color{
		R: float64(ov.R) / 255,
		G: float64(ov.G) / 255,
		B: float64(ov.B) / 255,
	}
	t := float64(ov.A) / 255

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			base, ok := colorful.MakeColor(c.img.At(x, y))
			if !ok {
				base = colorful.Color{}
			}
			c.img.Set(x, y, base.BlendRgb(over, t).Clamped())
		}
	}
}

// region crops the tile's 8x8 rectangle out of its source image.
func (c *Canvas) region(t synth.Tile) image.Image {
	src := c.sources[t.Source].Image
	min := src.Bounds().Min
	r := image.Rect(min.X+t.X, min.Y+t.Y, min.X+t.X+synth.TileSize, min.Y+t.Y+synth.TileSize)
	return imaging.Crop(src, r)
}

// blit scales region into dst with nearest-neighbor resampling and writes
// it over whatever the cell held before.
func (c *Canvas) blit(region image.Image, dst image.Rectangle) {
	scaled := transform.Resize(region, dst.Dx(), dst.Dy(), transform.NearestNeighbor)
	draw.Draw(c.img, dst, scaled, scaled.Bounds().Min, draw.Src)
}
