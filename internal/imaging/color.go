package imaging

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255. The engine uses RGBColor for the
// tile exclusion filter, where a tile is rejected when any of its pixels
// falls within a per-channel tolerance of the excluded color.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#RRGGBB" form.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements color.Color so an RGBColor can be handed to the standard
// image/draw machinery directly.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Near reports whether the given color is within tol of c on every channel.
//
// Parameters:
//   - other: The color to compare, in any color.Color representation.
//     16-bit components are scaled down to 8-bit before comparison.
//   - tol: Per-channel tolerance on the 0-255 scale.
//
// A pixel counts as "near" only when all three channels are within
// tolerance; a single channel differing by more than tol is enough to make
// the colors distinct. Alpha is ignored.
func (c RGBColor) Near(other color.Color, tol int) bool {
	r, g, b, _ := other.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	return absDiff(c.R, r8) <= tol && absDiff(c.G, g8) <= tol && absDiff(c.B, b8) <= tol
}

// ParseHexColor parses a 24-bit hex color string like "#FF0000" or "ff0000".
//
// Returns an error for empty strings or strings that are not exactly six
// hex digits after the optional leading '#'. Alpha is not accepted; the
// exclusion color is defined as opaque 24-bit RGB.
func ParseHexColor(hex string) (RGBColor, error) {
	if len(hex) == 0 {
		return RGBColor{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGBColor{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return RGBColor{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
