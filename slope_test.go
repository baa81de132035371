package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlope(t *testing.T) {
	cases := []struct {
		slope         Slope
		width, height float64
	}{
		{SlopeValue(1), 1, 1},
		{NewSlope(3, 1.5), 1.5, 3},
		{SlopeFromPercent(30), 50, 15},
		{SlopeFromAngle(math.Atan(2)), 2, 1},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d: %g over %g", i, c.height, c.width), func(t *testing.T) {
			s := c.slope
			length := math.Hypot(c.width, c.height)

			dir := s.Direction(BasisX3D(), BasisY3D())
			assert.True(t, dir.IsAlmostEqualTo(Vector3D{c.width, c.height, 0}), "direction %v", dir)
			normal := s.Normal(BasisX3D(), BasisY3D())
			assert.True(t, normal.IsAlmostEqualTo(Vector3D{-c.height, c.width, 0}), "normal %v", normal)

			assert.InDelta(t, c.width, s.WidthByHeight(c.height), epsilon)
			assert.InDelta(t, c.width, s.WidthByLength(length), epsilon)
			assert.InDelta(t, c.height, s.HeightByWidth(c.width), epsilon)
			assert.InDelta(t, c.height, s.HeightByLength(length), epsilon)
			assert.InDelta(t, length, s.LengthByHeight(c.height), epsilon)
			assert.InDelta(t, length, s.LengthByWidth(c.width), epsilon)
		})
	}

	assert.InDelta(t, math.Pi/4, SlopeValue(1).Angle(), epsilon)
	assert.InDelta(t, math.Sqrt2, SlopeValue(1).Length(), epsilon)
}
