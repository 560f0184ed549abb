package splits

// Margin is the padding shared by every layout step.
const Margin float32 = 0.35

// Vec2 is a position or size in widget units.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for constructing a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a new Vec2 offset by other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns a new Vec2 with other subtracted.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}
