package synth

import "math/rand"

// DefaultWeight is the sampling weight assumed for any source that has no
// explicit entry in the weight map.
const DefaultWeight = 50

// Weights maps a TileSource.ID to its sampling weight in [0,100].
//
// A source's weight drives the relative probability that independent
// sampling picks one of its tiles. Absence of an entry implies
// DefaultWeight; this is an expected steady-state condition, not an error.
type Weights map[string]int

// Resolve returns the weight for the given source ID, falling back to
// DefaultWeight when no entry exists.
func (w Weights) Resolve(id string) int {
	if w == nil {
		return DefaultWeight
	}
	if v, ok := w[id]; ok {
		return v
	}
	return DefaultWeight
}

// SelectWeighted draws one tile from the catalog with probability
// proportional to its source's weight.
//
// Parameters:
//   - rng: The random source for this draw. Must not be nil.
//   - catalog: The tile catalog. Must be non-empty; the caller guards.
//   - sources: The sources the catalog was extracted from, used to resolve
//     each tile's source ID.
//   - weights: Per-source weights; missing entries resolve to DefaultWeight.
//
// The draw walks the catalog subtracting each tile's weight from a uniform
// value in [0, totalWeight) and returns the tile that exhausts it. The walk
// order is an implementation detail; the contract is the resulting
// distribution, weight_i / totalWeight per tile. If rounding exhausts the
// walk, the last tile is returned.
func SelectWeighted(rng *rand.Rand, catalog Catalog, sources []*TileSource, weights Weights) Tile {
	total := 0.0
	for _, t := range catalog {
		total += float64(weights.Resolve(sources[t.Source].ID))
	}

	// All-zero weights degenerate to a uniform draw.
	if total <= 0 {
		return catalog[rng.Intn(len(catalog))]
	}

	r := rng.Float64() * total
	for _, t := range catalog {
		r -= float64(weights.Resolve(sources[t.Source].ID))
		if r <= 0 {
			return t
		}
	}
	return catalog[len(catalog)-1]
}
