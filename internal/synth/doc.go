// Package synth implements the procedural tile pattern synthesis engine.
//
// The engine slices source images into a flat catalog of fixed 8x8 tiles,
// then fills a destination grid by walking it row-major and choosing a tile
// per cell: either derived from an already-placed neighbor (spatial
// coherence) or drawn independently, with an optional glitch perturbation
// applied at draw time.
//
// # Pipeline
//
//	sources --Extract--> Catalog --Generate--> PlacementGrid + draw ops
//
// Extract and Generate are pure functions of their inputs plus an injected
// random source; re-running them with the same seed reproduces the same
// pattern. The only state carried between passes is the cycle-mode draw
// cursor (CyclePool).
//
// # Coordinate System
//
// Tile offsets are in source-pixel coordinates, tile-aligned, 0-based with
// origin at the top-left. Grid cells are addressed as (row, col), row 0 at
// the top.
//
// # Error Handling
//
// The engine core has no fatal error class. Empty inputs produce empty
// outputs, out-of-bounds neighbor lookups fall back to the originating
// neighbor tile, and a missing per-source weight falls back to
// DefaultWeight. Malformed image data is the loader's problem; by the time
// pixels reach this package they are trusted.
package synth
