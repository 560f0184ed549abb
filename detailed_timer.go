package splits

import "fmt"

// comparisonSlot places a comparison on one of the two fixed text rows.
type comparisonSlot struct {
	comparison *ComparisonState
	y          float32
}

// comparisonSlots assigns comparisons to the lower and upper rows.
// Comparison2 always takes the lower row and pushes Comparison1 into the
// upper one; a lone Comparison1 takes the lower row so it is never left empty.
// Slots are returned in draw order.
func comparisonSlots(c1, c2 *ComparisonState, lowerY, rowHeight float32) ([2]comparisonSlot, int) {
	var slots [2]comparisonSlot
	switch {
	case c1 != nil && c2 != nil:
		slots[0] = comparisonSlot{c2, lowerY}
		slots[1] = comparisonSlot{c1, lowerY - rowHeight}
		return slots, 2
	case c2 != nil:
		slots[0] = comparisonSlot{c2, lowerY}
		return slots, 1
	case c1 != nil:
		slots[0] = comparisonSlot{c1, lowerY}
		return slots, 1
	}
	return slots, 0
}

// RenderDetailedTimer draws the detailed timer component into the box
// [0,0]..size.
//
// The top 55% holds the run timer with the segment name to its left; the
// rest holds the segment timer with up to two comparisons to its left. The
// icon, when present, sits on the far left across both rows.
//
// icon carries the uploaded icon between frames. When state.IconChange is set
// the old texture is freed before the new one is created; if creation fails
// the slot stays empty and the frame is drawn without an icon. A nil icon
// disables icons entirely.
//
// The only error returned is a backend measurement failure, wrapped.
func RenderDetailedTimer(b Backend, size Vec2, state *DetailedTimerState, layout *LayoutState, icon *IconSlot) error {
	width, height := size.X, size.Y
	b.FillRectangle(Vec2{}, size, state.Background)

	iconSize := height - 2*Margin

	if icon != nil && state.IconChange != nil {
		// The frame still renders without an icon; Replace logs the failure.
		_ = icon.Replace(b, *state.IconChange)
	}

	leftSide := Margin
	if icon != nil {
		if ic, ok := icon.Icon(); ok {
			b.DrawImage(Vec2{X: Margin, Y: Margin}, Vec2{X: iconSize, Y: iconSize}, ic.Texture)
			leftSide = 2*Margin + iconSize
		}
	}

	topHeight := 0.55 * height
	bottomHeight := height - topHeight
	textColors := ColorPair{layout.TextColor, layout.TextColor}

	timerEnd, err := RenderTimer(b, Vec2{X: width, Y: topHeight}, &state.Timer)
	if err != nil {
		return fmt.Errorf("timer row: %w", err)
	}

	if state.SegmentName != nil {
		_, err := b.DrawTextEllipsis(
			*state.SegmentName,
			Vec2{X: leftSide, Y: 0.6 * topHeight},
			0.5*topHeight,
			textColors,
			timerEnd,
		)
		if err != nil {
			return fmt.Errorf("segment name: %w", err)
		}
	}

	b.Translate(0, topHeight)
	segmentTimerEnd, err := RenderTimer(b, Vec2{X: width, Y: bottomHeight}, &state.SegmentTimer)
	b.Translate(0, -topHeight)
	if err != nil {
		return fmt.Errorf("segment timer row: %w", err)
	}

	comparisonTextScale := 0.5 * bottomHeight
	comparison2Y := 0.8*bottomHeight + topHeight
	slots, n := comparisonSlots(state.Comparison1, state.Comparison2, comparison2Y, comparisonTextScale)

	var nameEnd, timeWidth float32
	for _, slot := range slots[:n] {
		end, err := b.DrawTextEllipsis(
			slot.comparison.Name,
			Vec2{X: leftSide, Y: slot.y},
			comparisonTextScale,
			textColors,
			segmentTimerEnd,
		)
		if err != nil {
			return fmt.Errorf("comparison name: %w", err)
		}
		nameEnd = max(nameEnd, end)

		w, err := b.MeasureNumbers(slot.comparison.Time, comparisonTextScale)
		if err != nil {
			return fmt.Errorf("comparison time: %w", err)
		}
		timeWidth = max(timeWidth, w)
	}

	// Both times share one right-anchored column.
	timeX := nameEnd + Margin + timeWidth

	for _, slot := range slots[:n] {
		_, err := b.DrawNumbers(slot.comparison.Time, Vec2{X: timeX, Y: slot.y}, comparisonTextScale, textColors)
		if err != nil {
			return fmt.Errorf("comparison time: %w", err)
		}
	}
	return nil
}
