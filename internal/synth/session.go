package synth

import (
	"image"
	"math/rand"

	"github.com/danielvan/tile-glitch/internal/imaging"
)

// Session is the single coordinating context that owns the mutable state
// shared between generation passes: the tileset list, the derived catalog,
// the per-source weights, and the exclusion color.
//
// The catalog is rebuilt eagerly whenever the source set or the exclusion
// color changes, so every Generate call sees a catalog consistent with the
// current inputs. A Session is single-owner; no concurrent writers are
// contemplated and no locking is done.
type Session struct {
	sources []*TileSource
	weights Weights
	exclude *imaging.RGBColor
	catalog Catalog
	gen     *Generator
}

// NewSession creates a session with no sources, drawing randomness from a
// generator seeded with seed so that passes are reproducible.
func NewSession(seed int64) *Session {
	return &Session{
		weights: make(Weights),
		gen:     NewGenerator(rand.New(rand.NewSource(seed))),
	}
}

// AddSource registers a decoded tileset under the given ID and rebuilds
// the catalog. IDs are expected to be unique; re-adding an existing ID
// adds a second source with the same weight entry.
func (s *Session) AddSource(id string, img image.Image) {
	s.sources = append(s.sources, &TileSource{ID: id, Image: img})
	s.rebuild()
}

// RemoveSource drops the source with the given ID, deletes its weight
// entry, and rebuilds the catalog so no tile references it anymore.
// Unknown IDs are ignored.
func (s *Session) RemoveSource(id string) {
	kept := s.sources[:0]
	for _, src := range s.sources {
		if src.ID != id {
			kept = append(kept, src)
		}
	}
	if len(kept) == len(s.sources) {
		return
	}
	s.sources = kept
	delete(s.weights, id)
	s.rebuild()
}

// SetWeight assigns the sampling weight in [0,100] for a source ID.
// Weight changes do not invalidate the catalog.
func (s *Session) SetWeight(id string, weight int) {
	s.weights[id] = weight
}

// SetExcludeColor sets or clears (nil) the exclusion color and rebuilds
// the catalog under the new filter.
func (s *Session) SetExcludeColor(c *imaging.RGBColor) {
	s.exclude = c
	s.rebuild()
}

// Catalog returns the current tile catalog.
func (s *Session) Catalog() Catalog {
	return s.catalog
}

// Sources returns the current tile sources in extraction order.
func (s *Session) Sources() []*TileSource {
	return s.sources
}

// Generate runs one synchronous generation pass over a rows x cols grid,
// committing draw operations to sink. With no sources or a fully filtered
// catalog the pass is a no-op and returns nil.
func (s *Session) Generate(params Params, rows, cols int, sink Sink) Grid {
	return s.gen.Generate(s.catalog, s.sources, s.weights, params, rows, cols, sink)
}

func (s *Session) rebuild() {
	s.catalog = Extract(s.sources, s.exclude)
	s.gen.pool.Reset()
}
