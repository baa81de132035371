package geometry

import "math"

// Slope is a gradient, kept as run over rise: how far you go horizontally for
// each unit you climb. A 45° slope has value 1, and steeper slopes have
// smaller values.
type Slope struct {
	value float64
}

// NewSlope is the slope that climbs height over a horizontal distance of
// width.
func NewSlope(height, width float64) Slope {
	return Slope{width / height}
}

// SlopeValue wraps a run-over-rise ratio directly.
func SlopeValue(value float64) Slope {
	return Slope{value}
}

// SlopeFromPercent follows the convention that a p% slope climbs p over a run
// of 100.
func SlopeFromPercent(percent float64) Slope {
	return NewSlope(percent, 100)
}

func SlopeFromAngle(angle float64) Slope {
	return Slope{math.Tan(angle)}
}

func (s Slope) Value() float64 { return s.value }

// Length is how far along the slope you travel per unit of rise.
func (s Slope) Length() float64 { return math.Sqrt(s.value*s.value + 1) }

func (s Slope) Angle() float64 { return math.Atan(s.value) }

// Direction is the unit vector going up the slope, in the frame where xAxis is
// horizontal and yAxis is up.
func (s Slope) Direction(xAxis, yAxis Vector3D) Vector3D {
	return xAxis.Scale(s.value).Add(yAxis).Normalize()
}

// Normal is perpendicular to Direction, on the upper side.
func (s Slope) Normal(xAxis, yAxis Vector3D) Vector3D {
	return yAxis.Scale(s.value).Sub(xAxis).Normalize()
}

func (s Slope) WidthByHeight(height float64) float64 {
	return height * s.value
}

func (s Slope) WidthByLength(length float64) float64 {
	return length * s.value / s.Length()
}

func (s Slope) LengthByHeight(height float64) float64 {
	return math.Hypot(height*s.value, height)
}

func (s Slope) LengthByWidth(width float64) float64 {
	return math.Hypot(width/s.value, width)
}

func (s Slope) HeightByWidth(width float64) float64 {
	return width / s.value
}

func (s Slope) HeightByLength(length float64) float64 {
	return length / s.Length()
}
