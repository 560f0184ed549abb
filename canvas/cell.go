package canvas

// Style holds the colors of a cell.
// Zero value represents default styling.
type Style struct {
	Fg Color
	Bg Color
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg)
}

// Cell represents a single character cell of the canvas.
// Wide graphemes occupy two cells; the first holds the content and the
// second is a continuation with Width 0.
type Cell struct {
	Content string
	Style   Style
	Width   uint8
}

// blankCell is a space with the given background.
func blankCell(bg Color) Cell {
	return Cell{Content: " ", Style: Style{Bg: bg}, Width: 1}
}

// IsContinuation returns true if this cell is a continuation of a wide grapheme.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}
