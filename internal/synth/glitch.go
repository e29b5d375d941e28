package synth

import (
	"image"
	"image/color"
)

// OverlayAlpha is the opacity of the glitch color overlay, 30% of full.
const OverlayAlpha = 77

// glitchSlots is the number of equally likely effect slots once the chaos
// roll succeeds. Slot 2 is a reserved no-op: the 1-in-3 chance of "no
// visible corruption" is intentional and must be preserved.
const glitchSlots = 3

// applyGlitch commits the tile for one cell, with probability chaos/2
// percent replacing or augmenting the straight blit with a corruption
// effect:
//
//	slot 0: horizontal mirror, replacing the straight blit
//	slot 1: straight blit plus a random-color translucent overlay
//	slot 2: reserved no-op, drawn straight
//
// Effects are draw-time only. Neither the catalog nor the source pixels
// are touched, and the placement grid has already recorded the pre-glitch
// tile identity before this runs.
func (g *Generator) applyGlitch(t Tile, dst image.Rectangle, chaos int, sink Sink) {
	if g.roll() < float64(chaos)/2 {
		switch g.rng.Intn(glitchSlots) {
		case 0:
			sink.BlitTileMirrored(t, dst)
			return
		case 1:
			sink.BlitTile(t, dst)
			sink.FillRect(dst, g.randomOverlay())
			return
		}
	}
	sink.BlitTile(t, dst)
}

// randomOverlay returns a uniformly random RGB color at overlay opacity.
func (g *Generator) randomOverlay() color.NRGBA {
	return color.NRGBA{
		R: uint8(g.rng.Intn(256)),
		G: uint8(g.rng.Intn(256)),
		B: uint8(g.rng.Intn(256)),
		A: OverlayAlpha,
	}
}
