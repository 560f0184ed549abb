package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/go-splits"
)

// Option is a functional option for configuring a Canvas.
type Option func(*Canvas) error

// WithCellSize sets how many widget units one cell spans horizontally and
// vertically. Default is 0.2 x 0.4, roughly the 1:2 shape of a terminal cell.
func WithCellSize(w, h float32) Option {
	return func(c *Canvas) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("cell size must be positive, got %vx%v", w, h)
		}
		c.cellW, c.cellH = w, h
		return nil
	}
}

// WithTrueColor selects 24-bit color output. When disabled, colors are
// reduced to the 256-color palette. Default is true.
func WithTrueColor(enabled bool) Option {
	return func(c *Canvas) error {
		c.trueColor = enabled
		return nil
	}
}

// WithEllipsis sets the marker appended to truncated text. Default is "…".
func WithEllipsis(marker string) Option {
	return func(c *Canvas) error {
		c.ellipsis = marker
		return nil
	}
}

// Canvas is a splits.Backend that rasterizes into a grid of cells.
// It is not safe for concurrent use.
type Canvas struct {
	cols, rows int
	cells      []Cell

	cellW, cellH float32
	trueColor    bool
	ellipsis     string

	offset      splits.Vec2
	textures    map[splits.Texture]image.Image
	nextTexture splits.Texture
}

// Ensure Canvas implements splits.Backend.
var _ splits.Backend = (*Canvas)(nil)

// New creates a blank canvas of cols x rows cells.
func New(cols, rows int, opts ...Option) (*Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("canvas must have positive dimensions, got %dx%d", cols, rows)
	}
	c := &Canvas{
		cols:      cols,
		rows:      rows,
		cells:     make([]Cell, cols*rows),
		cellW:     0.2,
		cellH:     0.4,
		trueColor: true,
		ellipsis:  "…",
		textures:  make(map[splits.Texture]image.Image),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.Clear()
	return c, nil
}

// Size returns the canvas extent in widget units.
func (c *Canvas) Size() splits.Vec2 {
	return splits.V(float32(c.cols)*c.cellW, float32(c.rows)*c.cellH)
}

// Grid returns the canvas dimensions in cells.
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Clear resets every cell to a default-styled space and drops any
// translation. Textures are kept.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell(DefaultColor())
	}
	c.offset = splits.Vec2{}
}

// Cell returns the cell at (col, row), or an empty Cell if out of bounds.
func (c *Canvas) Cell(col, row int) Cell {
	idx := c.idx(col, row)
	if idx < 0 {
		return Cell{}
	}
	return c.cells[idx]
}

// idx converts (col, row) to a flat index. Returns -1 if out of bounds.
func (c *Canvas) idx(col, row int) int {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return -1
	}
	return row*c.cols + col
}

// setCell writes a cell, clearing any wide grapheme it overlaps.
func (c *Canvas) setCell(col, row int, cell Cell) {
	idx := c.idx(col, row)
	if idx < 0 {
		return
	}

	current := c.cells[idx]
	// Overwriting a continuation orphans the wide grapheme to its left.
	if current.IsContinuation() && col > 0 {
		left := c.cells[idx-1]
		c.cells[idx-1] = blankCell(left.Style.Bg)
	}
	// Overwriting the start of a wide grapheme orphans its continuation.
	if current.Width == 2 && col+1 < c.cols && cell.Width != 2 {
		c.cells[idx+1] = blankCell(c.cells[idx+1].Style.Bg)
	}

	c.cells[idx] = cell
}

const eps = 1e-4

// colFloor returns the column whose left edge is at or before x.
func (c *Canvas) colFloor(x float32) int {
	return int(math.Floor(float64(x/c.cellW) + eps))
}

// colCeil returns the first column whose left edge is at or after x.
func (c *Canvas) colCeil(x float32) int {
	return int(math.Ceil(float64(x/c.cellW) - eps))
}

// baselineRow returns the row sitting on baseline y, clamped to the grid.
func (c *Canvas) baselineRow(y float32) int {
	row := int(math.Ceil(float64(y/c.cellH)-eps)) - 1
	return min(max(row, 0), c.rows-1)
}

// span returns the cells [start, end) whose centers lie in [a0, a1).
func span(a0, a1, unit float32) (start, end int) {
	start = int(math.Ceil(float64(a0/unit) - 0.5))
	end = int(math.Ceil(float64(a1/unit) - 0.5))
	return start, end
}

// Translate shifts the origin of later draws.
func (c *Canvas) Translate(dx, dy float32) {
	c.offset = c.offset.Add(splits.V(dx, dy))
}

// FillRectangle paints the background of every cell whose center lies in
// the box. Opaque colors replace the cell; translucent ones tint its
// background and keep its content.
func (c *Canvas) FillRectangle(origin, size splits.Vec2, fill splits.Gradient) {
	if fill.IsTransparent() || size.X <= 0 || size.Y <= 0 {
		return
	}
	o := origin.Add(c.offset)
	x0, x1 := span(o.X, o.X+size.X, c.cellW)
	y0, y1 := span(o.Y, o.Y+size.Y, c.cellH)

	for row := max(y0, 0); row < min(y1, c.rows); row++ {
		fy := ((float32(row)+0.5)*c.cellH - o.Y) / size.Y
		for col := max(x0, 0); col < min(x1, c.cols); col++ {
			fx := ((float32(col)+0.5)*c.cellW - o.X) / size.X
			color := sample(fill, fx, fy)
			if color.A <= 0 {
				continue
			}
			if color.IsOpaque() {
				c.setCell(col, row, blankCell(over(color, DefaultColor())))
				continue
			}
			cell := &c.cells[c.idx(col, row)]
			cell.Style.Bg = over(color, cell.Style.Bg)
		}
	}
}

// writeText writes s starting at (col, row) over the existing backgrounds
// and returns the number of columns advanced.
func (c *Canvas) writeText(col, row int, s string, fg Color) int {
	start := col
	for len(s) > 0 {
		cluster, width := ansi.FirstGraphemeCluster(s, ansi.GraphemeWidth)
		if len(cluster) == 0 {
			break
		}
		s = s[len(cluster):]
		if width <= 0 {
			continue
		}
		if col+width > c.cols {
			break
		}
		if col >= 0 {
			bg := c.Cell(col, row).Style.Bg
			c.setCell(col, row, Cell{Content: cluster, Style: Style{Fg: fg, Bg: bg}, Width: uint8(width)})
			if width == 2 {
				bg := c.Cell(col+1, row).Style.Bg
				c.setCell(col+1, row, Cell{Style: Style{Fg: fg, Bg: bg}, Width: 0})
			}
		}
		col += width
	}
	return col - start
}

func (c *Canvas) measure(text string) float32 {
	return float32(ansi.StringWidth(text)) * c.cellW
}

// MeasureNumbers returns the width of text: its display columns times the
// cell width. Scale does not change the width of a terminal glyph.
func (c *Canvas) MeasureNumbers(text string, scale float32) (float32, error) {
	return c.measure(ansi.Strip(text)), nil
}

// DrawNumbers writes text so its last column ends at origin.X.
func (c *Canvas) DrawNumbers(text string, origin splits.Vec2, scale float32, colors splits.ColorPair) (float32, error) {
	text = ansi.Strip(text)
	width := ansi.StringWidth(text)
	left := origin.X - float32(width)*c.cellW

	o := origin.Add(c.offset)
	end := c.colFloor(o.X)
	c.writeText(end-width, c.baselineRow(o.Y), text, glyphColor(colors))
	return left, nil
}

// DrawTextEllipsis writes text from the first column at or after origin.X,
// truncated with the ellipsis marker so it ends at or before maxX.
func (c *Canvas) DrawTextEllipsis(text string, origin splits.Vec2, scale float32, colors splits.ColorPair, maxX float32) (float32, error) {
	text = ansi.Strip(text)
	o := origin.Add(c.offset)
	start := c.colCeil(o.X)
	avail := c.colFloor(maxX+c.offset.X) - start
	if avail <= 0 || text == "" {
		return origin.X, nil
	}

	text = ansi.Truncate(text, avail, c.ellipsis)
	written := c.writeText(start, c.baselineRow(o.Y), text, glyphColor(colors))
	end := float32(start+written)*c.cellW - c.offset.X
	return max(origin.X, min(end, maxX)), nil
}
