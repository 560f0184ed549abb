package splits

import "fmt"

// RenderTimer draws a timer row into the box [0,0]..size and returns the
// left edge of the drawn digits.
//
// Digits are laid out right to left from a fixed right margin, so the right
// edge stays put when the time gains a digit and only the returned left
// edge moves. Callers use it as the right bound for text placed beside the
// timer.
func RenderTimer(b Backend, size Vec2, state *TimerState) (float32, error) {
	width, height := size.X, size.Y
	b.FillRectangle(Vec2{}, size, state.Background)

	colors := ColorPair{state.BottomColor, state.TopColor}
	baseline := 0.85 * height

	x, err := b.DrawNumbers(state.Fraction, Vec2{X: width - Margin, Y: baseline}, 0.8*height, colors)
	if err != nil {
		return 0, fmt.Errorf("drawing timer fraction: %w", err)
	}
	x, err = b.DrawNumbers(state.Time, Vec2{X: x, Y: baseline}, 1.2*height, colors)
	if err != nil {
		return 0, fmt.Errorf("drawing timer time: %w", err)
	}
	return x, nil
}
