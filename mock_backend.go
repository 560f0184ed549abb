package splits

import (
	"fmt"
	"slices"
)

// Op names a Backend method recorded by MockBackend.
type Op string

// Recorded operations.
const (
	OpFillRectangle    Op = "FillRectangle"
	OpDrawImage        Op = "DrawImage"
	OpCreateTexture    Op = "CreateTexture"
	OpFreeTexture      Op = "FreeTexture"
	OpDrawTextEllipsis Op = "DrawTextEllipsis"
	OpMeasureNumbers   Op = "MeasureNumbers"
	OpDrawNumbers      Op = "DrawNumbers"
	OpTranslate        Op = "Translate"
)

// Call is one recorded Backend call. Only the fields relevant to Op are set.
type Call struct {
	Op Op
	// Text is the requested text; Drawn is what was drawn after truncation.
	Text  string
	Drawn string
	// Origin is in the caller's coordinates; Offset is the translation in
	// effect when the call was made.
	Origin  Vec2
	Offset  Vec2
	Size    Vec2
	Scale   float32
	Colors  ColorPair
	Fill    Gradient
	MaxX    float32
	Texture Texture
	// Result is the x coordinate returned to the caller.
	Result float32
}

// Abs returns the call's origin with the translation applied.
func (c Call) Abs() Vec2 {
	return c.Origin.Add(c.Offset)
}

// MockBackend is a Backend that records every call for verification.
// Text is measured as monospaced: each rune is CharWidth*scale wide.
type MockBackend struct {
	// CharWidth is the advance of one rune at scale 1.
	CharWidth float32
	// Aspect is the aspect ratio reported for created textures.
	Aspect float32
	// FailTextures makes CreateTexture fail.
	FailTextures bool
	// FailMeasure makes every measuring call return ErrMeasurementUnavailable.
	FailMeasure bool

	calls        []Call
	offset       Vec2
	nextTexture  Texture
	live         map[Texture]bool
	freed        []Texture
	invalidFrees int
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a recording backend with half-width glyphs and
// square textures.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		CharWidth: 0.5,
		Aspect:    1,
		live:      make(map[Texture]bool),
	}
}

// Calls returns the recorded calls, filtered to ops if any are given.
func (m *MockBackend) Calls(ops ...Op) []Call {
	if len(ops) == 0 {
		return slices.Clone(m.calls)
	}
	var out []Call
	for _, c := range m.calls {
		if slices.Contains(ops, c.Op) {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls. Texture bookkeeping survives so that
// lifecycle checks can span frames.
func (m *MockBackend) Reset() {
	m.calls = nil
}

// Offset returns the current translation.
func (m *MockBackend) Offset() Vec2 {
	return m.offset
}

// LiveTextures returns the handles created and not yet freed, sorted.
func (m *MockBackend) LiveTextures() []Texture {
	var out []Texture
	for tex := range m.live {
		out = append(out, tex)
	}
	slices.Sort(out)
	return out
}

// FreedTextures returns freed handles in the order they were freed.
func (m *MockBackend) FreedTextures() []Texture {
	return slices.Clone(m.freed)
}

// InvalidFrees counts FreeTexture calls on handles that were not live.
func (m *MockBackend) InvalidFrees() int {
	return m.invalidFrees
}

func (m *MockBackend) record(c Call) {
	c.Offset = m.offset
	m.calls = append(m.calls, c)
}

func (m *MockBackend) width(text string, scale float32) float32 {
	return float32(len([]rune(text))) * m.CharWidth * scale
}

// FillRectangle records the fill.
func (m *MockBackend) FillRectangle(origin, size Vec2, fill Gradient) {
	m.record(Call{Op: OpFillRectangle, Origin: origin, Size: size, Fill: fill})
}

// DrawImage records the draw.
func (m *MockBackend) DrawImage(origin, size Vec2, tex Texture) {
	m.record(Call{Op: OpDrawImage, Origin: origin, Size: size, Texture: tex})
}

// CreateTexture hands out sequential handles starting at 1. Empty sources
// fail, as does every source while FailTextures is set.
func (m *MockBackend) CreateTexture(src ImageSource) (Texture, float32, error) {
	if m.FailTextures || len(src.Data) == 0 {
		m.record(Call{Op: OpCreateTexture, Text: src.Name})
		return 0, 0, fmt.Errorf("%w: %q", ErrTextureCreation, src.Name)
	}
	m.nextTexture++
	tex := m.nextTexture
	if m.live == nil {
		m.live = make(map[Texture]bool)
	}
	m.live[tex] = true
	m.record(Call{Op: OpCreateTexture, Text: src.Name, Texture: tex})
	return tex, m.Aspect, nil
}

// FreeTexture records the free. Freeing a handle that is not live is counted
// by InvalidFrees rather than failing.
func (m *MockBackend) FreeTexture(tex Texture) {
	m.record(Call{Op: OpFreeTexture, Texture: tex})
	if !m.live[tex] {
		m.invalidFrees++
		return
	}
	delete(m.live, tex)
	m.freed = append(m.freed, tex)
}

// DrawTextEllipsis truncates text rune by rune until it fits before maxX,
// marking truncation with a trailing "…".
func (m *MockBackend) DrawTextEllipsis(text string, origin Vec2, scale float32, colors ColorPair, maxX float32) (float32, error) {
	if m.FailMeasure {
		return 0, ErrMeasurementUnavailable
	}

	drawn := text
	if origin.X+m.width(text, scale) > maxX {
		runes := []rune(text)
		drawn = ""
		for n := len(runes) - 1; n >= 0; n-- {
			candidate := string(runes[:n]) + "…"
			if origin.X+m.width(candidate, scale) <= maxX {
				drawn = candidate
				break
			}
		}
	}

	end := origin.X + m.width(drawn, scale)
	m.record(Call{
		Op:     OpDrawTextEllipsis,
		Text:   text,
		Drawn:  drawn,
		Origin: origin,
		Scale:  scale,
		Colors: colors,
		MaxX:   maxX,
		Result: end,
	})
	return end, nil
}

// MeasureNumbers records the measurement.
func (m *MockBackend) MeasureNumbers(text string, scale float32) (float32, error) {
	if m.FailMeasure {
		return 0, ErrMeasurementUnavailable
	}
	w := m.width(text, scale)
	m.record(Call{Op: OpMeasureNumbers, Text: text, Scale: scale, Result: w})
	return w, nil
}

// DrawNumbers records the draw and returns origin.X minus the text width.
func (m *MockBackend) DrawNumbers(text string, origin Vec2, scale float32, colors ColorPair) (float32, error) {
	if m.FailMeasure {
		return 0, ErrMeasurementUnavailable
	}
	left := origin.X - m.width(text, scale)
	m.record(Call{
		Op:     OpDrawNumbers,
		Text:   text,
		Drawn:  text,
		Origin: origin,
		Scale:  scale,
		Colors: colors,
		Result: left,
	})
	return left, nil
}

// Translate records the shift and applies it to later calls.
func (m *MockBackend) Translate(dx, dy float32) {
	m.record(Call{Op: OpTranslate, Origin: Vec2{X: dx, Y: dy}})
	m.offset = m.offset.Add(Vec2{X: dx, Y: dy})
}
