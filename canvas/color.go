package canvas

import (
	"github.com/grindlemire/go-splits"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a cell color. The zero value is the terminal's default color.
type Color struct {
	r, g, b uint8
	set     bool
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, set: true}
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// RGB returns the red, green, and blue components.
// Default colors report black.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ANSI256 approximates the color with an entry of the 256-color palette,
// using the 6x6x6 cube (16-231) and the grayscale ramp (232-255).
func (c Color) ANSI256() uint8 {
	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return uint8(232 + (int(r)-8)*24/240)
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return uint8(16 + 36*ri + 6*gi + bi)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGBColor(r, g, b)
}

func toColorful(c splits.Color) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// blend interpolates two colors in RGB, alpha included.
func blend(a, b splits.Color, t float32) splits.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mixed := toColorful(a).BlendRgb(toColorful(b), float64(t))
	return splits.Color{
		R: float32(mixed.R),
		G: float32(mixed.G),
		B: float32(mixed.B),
		A: a.A + (b.A-a.A)*t,
	}
}

// sample returns the gradient's color at fractional position (fx, fy)
// inside its rectangle.
func sample(g splits.Gradient, fx, fy float32) splits.Color {
	switch g.Kind {
	case splits.GradientPlain:
		return g.Start
	case splits.GradientVertical:
		return blend(g.Start, g.End, fy)
	case splits.GradientHorizontal:
		return blend(g.Start, g.End, fx)
	}
	return splits.Transparent
}

// over composites c on top of under using c's alpha.
func over(c splits.Color, under Color) Color {
	if c.A >= 1 {
		return fromColorful(toColorful(c))
	}
	return fromColorful(under.colorful().BlendRgb(toColorful(c), float64(c.A)))
}

// glyphColor flattens a per-glyph gradient to the single color a cell can
// show: the gradient's midpoint.
func glyphColor(colors splits.ColorPair) Color {
	return fromColorful(toColorful(blend(colors[0], colors[1], 0.5)))
}
