package synth

import (
	"image"
	"math/rand"
)

// Params are the continuous control values for one generation pass.
//
// Params is a pure input: the engine re-reads it every pass and holds no
// configuration of its own between passes.
type Params struct {
	// Chaos in [0,100] controls the probability and intensity of glitch
	// post-processing. The effective glitch probability per cell is
	// Chaos/2 percent.
	Chaos int `json:"chaos"`

	// Coherence in [0,100] biases how strongly a cell's tile choice
	// follows its already-placed neighbors.
	Coherence int `json:"coherence"`

	// Normalize in [0,100] biases repetition vs. localized variation when
	// following a neighbor. Higher values mean a higher chance of exact
	// repetition and a tighter variation radius when varying.
	Normalize int `json:"normalize"`

	// Scale is the integer blow-up factor from the 8x8 source region to
	// the destination cell, typically 1-4.
	Scale int `json:"scale"`

	// CycleMode switches independent sampling to exhaustive
	// without-replacement draws from a shuffled catalog permutation.
	CycleMode bool `json:"cycle_mode"`
}

// CellSize returns the destination cell edge length in pixels.
func (p Params) CellSize() int {
	return TileSize * p.Scale
}

// Grid is the placement record of one generation pass: one tile per cell,
// nil where nothing was placed. It exists so later cells can look up
// already-placed neighbors, and it always records the pre-glitch tile
// identity. Discard it when the pass completes.
type Grid [][]*Tile

// neighborInfluence pairs an already-placed tile with its proximity weight
// for the neighbor-choice draw.
type neighborInfluence struct {
	tile   Tile
	weight float64
}

// Generator runs generation passes against an injected random source.
//
// The random source is the only dependency; given identical seeds and
// identical inputs, Generate reproduces the same grid and the same draw
// operations. A Generator is not safe for concurrent use.
type Generator struct {
	rng  *rand.Rand
	pool CyclePool
}

// NewGenerator returns a Generator drawing randomness from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// roll returns a uniform draw in [0,100). All probability comparisons in
// the engine are half-open (roll < threshold), so a threshold of 0 never
// triggers and 100 always does.
func (g *Generator) roll() float64 {
	return g.rng.Float64() * 100
}

// Generate fills a rows x cols grid with tiles and commits them to sink.
//
// Parameters:
//   - catalog: The tile catalog. An empty catalog makes the pass a no-op
//     returning nil; this is an expected condition, not an error.
//   - sources: The sources the catalog was extracted from.
//   - weights: Per-source sampling weights for independent draws.
//   - params: The control values for this pass.
//   - rows, cols: Destination grid dimensions in cells.
//   - sink: Receives one base blit per cell plus at most one glitch
//     operation. May be nil to compute a grid without drawing.
//
// Traversal is strictly row-major, top row first, left to right; each cell
// consults only cells above or to its left. Per cell the engine either
// derives the tile from a placed neighbor (probability
// coherence + 0.3*normalize percent, deliberately unclamped so parameter
// combinations above 100 saturate to "always connect") or samples
// independently via cycle mode or the weighted selector.
func (g *Generator) Generate(catalog Catalog, sources []*TileSource, weights Weights, params Params, rows, cols int, sink Sink) Grid {
	if len(catalog) == 0 || rows <= 0 || cols <= 0 {
		return nil
	}

	grid := make(Grid, rows)
	for r := range grid {
		grid[r] = make([]*Tile, cols)
	}

	cell := params.CellSize()
	connectionChance := float64(params.Coherence) + float64(params.Normalize)*0.3

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var tile Tile

			neighbors := placedNeighbors(grid, r, c)
			if len(neighbors) > 0 && g.roll() < connectionChance {
				tile = g.deriveFromNeighbor(catalog, sources, params, neighbors)
			} else if params.CycleMode {
				tile = catalog[g.pool.Next(g.rng, len(catalog))]
			} else {
				tile = SelectWeighted(g.rng, catalog, sources, weights)
			}

			placed := tile
			grid[r][c] = &placed

			if sink != nil {
				dst := image.Rect(c*cell, r*cell, (c+1)*cell, (r+1)*cell)
				g.applyGlitch(tile, dst, params.Chaos, sink)
			}
		}
	}

	return grid
}

// placedNeighbors gathers up to four directional influences for the cell at
// (r, c): immediate left and up at weight 1, the cells two to the left and
// two above at weight 0.5, modeling decaying spatial influence.
func placedNeighbors(grid Grid, r, c int) []neighborInfluence {
	var out []neighborInfluence
	add := func(rr, cc int, w float64) {
		if rr < 0 || cc < 0 {
			return
		}
		if t := grid[rr][cc]; t != nil {
			out = append(out, neighborInfluence{tile: *t, weight: w})
		}
	}
	add(r, c-1, 1)
	add(r-1, c, 1)
	add(r, c-2, 0.5)
	add(r-2, c, 0.5)
	return out
}

// deriveFromNeighbor picks one influencing neighbor by proximity weight and
// produces a tile near it in catalog space.
//
// With probability normalize percent the offset comes from a small fixed
// set biased toward exact repetition; otherwise it is drawn from a square
// radius that shrinks as normalize rises. A candidate index is accepted
// only if it is in catalog bounds and stays within the neighbor's source;
// any out-of-bounds or cross-source result falls back to the neighbor tile
// itself, as does a neighbor that is no longer in the catalog.
func (g *Generator) deriveFromNeighbor(catalog Catalog, sources []*TileSource, params Params, neighbors []neighborInfluence) Tile {
	n := g.pickNeighbor(neighbors)

	idx := catalog.IndexOf(n)
	if idx < 0 {
		return n
	}

	tilesPerRow := sources[n.Source].TilesPerRow()

	var offset int
	if g.roll() < float64(params.Normalize) {
		repeats := [7]int{0, 0, 0, -1, 1, -tilesPerRow, tilesPerRow}
		offset = repeats[g.rng.Intn(len(repeats))]
	} else {
		radius := (100-params.Normalize)/25 + 1
		dx := g.rng.Intn(2*radius+1) - radius
		dy := g.rng.Intn(2*radius+1) - radius
		offset = dy*tilesPerRow + dx
	}

	cand := idx + offset
	if cand < 0 || cand >= len(catalog) || catalog[cand].Source != n.Source {
		return n
	}
	return catalog[cand]
}

// pickNeighbor draws one neighbor weighted by proximity, resolving ties to
// the last candidate in sequence.
func (g *Generator) pickNeighbor(neighbors []neighborInfluence) Tile {
	total := 0.0
	for _, n := range neighbors {
		total += n.weight
	}

	r := g.rng.Float64() * total
	for _, n := range neighbors {
		r -= n.weight
		if r <= 0 {
			return n.tile
		}
	}
	return neighbors[len(neighbors)-1].tile
}
