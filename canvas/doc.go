// Package canvas implements a terminal backend for the splits renderers.
//
// A Canvas maps widget units onto a grid of character cells. Fills and
// images paint cell backgrounds, text and numbers occupy one cell per column
// of display width, and the finished grid is written out as ANSI-styled
// lines. Glyph scale only matters to the renderer's geometry: every glyph is
// one cell tall.
package canvas
