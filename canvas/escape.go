package canvas

import (
	"io"
	"strconv"
	"strings"
)

// escBuilder builds SGR escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Bytes returns the built output.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle resets the current attributes and applies s.
func (e *escBuilder) SetStyle(s Style, trueColor bool) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	e.appendColor(s.Fg, 38, trueColor)
	e.appendColor(s.Bg, 48, trueColor)
	e.buf = append(e.buf, 'm')
}

// appendColor appends ";38;2;r;g;b" style parameters. base is 38 for
// foreground and 48 for background.
func (e *escBuilder) appendColor(c Color, base int, trueColor bool) {
	if c.IsDefault() {
		return
	}
	e.buf = append(e.buf, ';')
	e.writeInt(base)
	if !trueColor {
		e.buf = append(e.buf, ';', '5', ';')
		e.writeInt(int(c.ANSI256()))
		return
	}
	r, g, b := c.RGB()
	e.buf = append(e.buf, ';', '2', ';')
	e.writeInt(int(r))
	e.buf = append(e.buf, ';')
	e.writeInt(int(g))
	e.buf = append(e.buf, ';')
	e.writeInt(int(b))
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// render writes every row, switching styles only where they change and
// resetting at the end of each line.
func (c *Canvas) render() []byte {
	e := newEscBuilder(c.cols * c.rows * 8)
	for row := 0; row < c.rows; row++ {
		var last Style
		styled := false
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if cell.IsContinuation() {
				continue
			}
			if !styled || !cell.Style.Equal(last) {
				e.SetStyle(cell.Style, c.trueColor)
				last = cell.Style
				styled = true
			}
			e.WriteString(cell.Content)
		}
		e.ResetStyle()
		e.buf = append(e.buf, '\n')
	}
	return e.Bytes()
}

// WriteTo writes the canvas as ANSI-styled lines.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.render())
	return int64(n), err
}

// String returns the canvas as ANSI-styled lines.
func (c *Canvas) String() string {
	return string(c.render())
}

// PlainText returns the canvas content without styling, one line per row
// with trailing spaces removed.
func (c *Canvas) PlainText() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		var line strings.Builder
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if cell.IsContinuation() {
				continue
			}
			line.WriteString(cell.Content)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
