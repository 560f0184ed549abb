package splits

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A float32
}

// ColorPair holds the two endpoints of the vertical gradient applied to each
// glyph of a text or number run.
type ColorPair [2]Color

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA returns a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(0xFF, 0xFF, 0xFF)
)

// ParseHexColor parses a hex color string.
// Supported formats: "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA".
func ParseHexColor(hex string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(digits) {
	case 3, 4:
		// Each short digit stands for a repeated pair: "f0a" is "ff00aa".
		var long strings.Builder
		for _, d := range digits {
			long.WriteRune(d)
			long.WriteRune(d)
		}
		digits = long.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB, #RGBA, #RRGGBB or #RRGGBBAA", hex)
	}
	if len(digits) == 6 {
		digits += "ff"
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// IsOpaque reports whether the color fully covers what is beneath it.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// GradientKind selects how a Gradient is spread across a rectangle.
type GradientKind uint8

const (
	// GradientTransparent draws nothing.
	GradientTransparent GradientKind = iota
	// GradientPlain fills with Start.
	GradientPlain
	// GradientVertical blends from Start at the top to End at the bottom.
	GradientVertical
	// GradientHorizontal blends from Start at the left to End at the right.
	GradientHorizontal
)

// String returns the lowercase name used in snapshot files.
func (k GradientKind) String() string {
	switch k {
	case GradientTransparent:
		return "transparent"
	case GradientPlain:
		return "plain"
	case GradientVertical:
		return "vertical"
	case GradientHorizontal:
		return "horizontal"
	}
	return "unknown"
}

// Gradient is the fill style of a rectangle. The zero value is transparent.
type Gradient struct {
	Kind       GradientKind
	Start, End Color
}

// Plain returns a single-color fill.
func Plain(c Color) Gradient {
	return Gradient{Kind: GradientPlain, Start: c, End: c}
}

// Vertical returns a top-to-bottom fill.
func Vertical(top, bottom Color) Gradient {
	return Gradient{Kind: GradientVertical, Start: top, End: bottom}
}

// Horizontal returns a left-to-right fill.
func Horizontal(left, right Color) Gradient {
	return Gradient{Kind: GradientHorizontal, Start: left, End: right}
}

// IsTransparent reports whether drawing the gradient would change nothing.
func (g Gradient) IsTransparent() bool {
	switch g.Kind {
	case GradientPlain:
		return g.Start.A == 0
	case GradientVertical, GradientHorizontal:
		return g.Start.A == 0 && g.End.A == 0
	}
	return true
}
