// Package imaging provides image loading and color utilities for the
// pattern synthesis engine.
//
// This package sits between the host (which names tileset files) and the
// engine core (which only ever sees decoded image.Image values). It covers
// decoding and caching of tileset images, hex color parsing for the
// exclusion filter, and per-channel color tolerance tests.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Thread Safety
//
// SourceStore is safe for concurrent use. The color helpers are pure
// functions and can be called from any goroutine.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Files that do not exist or cannot be read
//   - Files that are not valid PNG, JPEG, or GIF images
//   - Malformed hex color strings
//
// Corrupt image data is rejected here, before it can reach the engine
// core, which by design has no fatal error paths of its own.
package imaging
