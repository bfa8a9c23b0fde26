package components

import "image/color"

// Transform stores a rectangle's position and size in pixels plus its fill
// color.
type Transform struct {
	X, Y  float64
	W, H  float64
	Color color.RGBA
}

// Physics stores a rectangle's downward velocity in pixels per second.
type Physics struct {
	Velocity float64
}
