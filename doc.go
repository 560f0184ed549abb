// Package splits renders the detailed timer component of a speedrun timing
// layout.
//
// The renderer is backend-agnostic: it measures text and issues draw calls
// through the [Backend] interface and keeps no state between frames other
// than the caller-owned [IconSlot]. The canvas package provides a terminal
// backend; [MockBackend] records calls for tests.
//
// Coordinates are in widget units with the origin at the top-left corner,
// x growing rightward and y growing downward.
package splits
