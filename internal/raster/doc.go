// Package raster provides the image-backed drawing surface that receives
// tile blits and glitch overlays from a generation pass.
//
// Canvas implements synth.Sink over a standard *image.RGBA. Tile regions
// are cropped from their source image, scaled with nearest-neighbor
// resampling (pixel-art tiles must stay blocky), and written with draw.Src
// so a mirrored blit fully replaces the straight one. Translucent overlay
// fills blend in RGB space at the opacity the engine requests.
//
// Encoding the finished raster to a file is the host's job; Canvas only
// exposes the raw image.
package raster
