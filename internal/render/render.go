// Package render draws a scene and its findings to a PNG, and can show the
// result in the terminal (iTerm only).
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geometry"
	"github.com/osuushi/geometry/internal/scene"
	"github.com/pkg/errors"
)

// Padding around the scene, in pixels, so that shapes on the edge aren't cut
// off and labels have somewhere to go
const padding = 40

var ErrEmptyScene = errors.New("scene has no shapes to draw")

// Render draws every shape of s, then marks the points of the findings on top.
// scale is in pixels per unit. The image is y-up, like the kernel.
func Render(s *scene.Scene, findings []scene.Finding, scale float64, path string) error {
	bounds := s.Bounds()
	if bounds.IsEmpty() {
		return ErrEmptyScene
	}
	if !(scale > 0) {
		return errors.Errorf("invalid scale %v", scale)
	}

	size := bounds.Size()
	width := int(scale*size.X) + padding*2
	height := int(scale*size.Y) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	c.SetLineWidth(2)
	for _, shape := range s.Shapes {
		drawShape(c, shape)
	}
	for _, shape := range s.Shapes {
		label(c, shape.Name, shape.Bounds().Center())
	}

	for _, finding := range findings {
		switch finding.Kind {
		case scene.Crossing:
			c.SetRGB(1, 0.2, 0.2)
		default:
			c.SetRGB(1, 1, 0)
		}
		for _, p := range finding.Points {
			c.DrawPoint(p.X, p.Y, 4)
			c.Fill()
		}
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func drawShape(c *gg.Context, shape scene.Shape) {
	c.NewSubPath()
	switch g := shape.Geometry.(type) {
	case geometry.Segment2D:
		c.DrawLine(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
		c.SetRGB(0, 1, 1)
		c.Stroke()
	case geometry.Circle2D:
		c.DrawCircle(g.Center.X, g.Center.Y, g.Radius)
		c.SetRGB(0, 1, 0)
		c.Stroke()
	case geometry.Triangle2D:
		c.MoveTo(g.A.X, g.A.Y)
		c.LineTo(g.B.X, g.B.Y)
		c.LineTo(g.C.X, g.C.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0.6, 0.5, 1)
		c.Stroke()
	case geometry.Arc2D:
		// gg only sweeps counter-clockwise, so clockwise arcs are drawn from
		// their end.
		from := g.StartPoint()
		if !g.IsCounterClockwise() {
			from = g.EndPoint()
		}
		center := g.Center()
		start := math.Atan2(from.Y-center.Y, from.X-center.X)
		c.DrawArc(center.X, center.Y, g.Radius(), start, start+g.Span())
		c.SetRGB(1, 0.5, 0)
		c.Stroke()
	case geometry.Point2D:
		c.DrawPoint(g.X, g.Y, 3)
		c.SetRGB(1, 1, 1)
		c.Fill()
	}
}

// Text has to be drawn without the flip, or it comes out upside down.
func label(c *gg.Context, name string, at geometry.Point2D) {
	x, y := c.TransformPoint(at.X, at.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(name, x, y, 0.5, 0.5)
	c.Pop()
}

// Cat prints a PNG to w with the iTerm inline image protocol.
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "printing %s", path)
}
