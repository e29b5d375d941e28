package synth

import (
	"image"
	"image/color"
)

// drawOp records a single sink operation for assertions.
type drawOp struct {
	kind string // "blit", "mirror", "fill"
	tile Tile
	dst  image.Rectangle
	fill color.NRGBA
}

// recordSink captures the draw operations of a generation pass.
type recordSink struct {
	ops []drawOp
}

func (s *recordSink) BlitTile(t Tile, dst image.Rectangle) {
	s.ops = append(s.ops, drawOp{kind: "blit", tile: t, dst: dst})
}

func (s *recordSink) BlitTileMirrored(t Tile, dst image.Rectangle) {
	s.ops = append(s.ops, drawOp{kind: "mirror", tile: t, dst: dst})
}

func (s *recordSink) FillRect(dst image.Rectangle, c color.NRGBA) {
	s.ops = append(s.ops, drawOp{kind: "fill", dst: dst, fill: c})
}

func (s *recordSink) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}
