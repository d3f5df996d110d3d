// Package state holds the stroke configuration shared by the surface and
// the panel that drives it.
package state

import "math"

const (
	DefaultStrokeWidth = 10.0
	DefaultStrokeColor = "#000000"
)

// Point is a position in surface coordinates.
type Point struct{ X, Y float32 }

// StrokeConfig is what the next stroke will be drawn with. Changing it never
// touches strokes that are already painted.
type StrokeConfig struct {
	Width float64
	Color string
}

func DefaultStrokeConfig() StrokeConfig {
	return StrokeConfig{Width: DefaultStrokeWidth, Color: DefaultStrokeColor}
}

// StrokeOptions is a partial update to a StrokeConfig. Zero values mean
// "leave as is".
type StrokeOptions struct {
	StrokeColor string
	StrokeWidth float64
}

// Apply copies every set field of o onto c. A field counts as set only when it
// is truthy: an empty colour, a zero width and a NaN width are all ignored, so
// StrokeWidth: 0 never changes the stored width.
func (c *StrokeConfig) Apply(o StrokeOptions) {
	if o.StrokeColor != "" {
		c.Color = o.StrokeColor
	}
	if o.StrokeWidth != 0 && !math.IsNaN(o.StrokeWidth) {
		c.Width = o.StrokeWidth
	}
}
