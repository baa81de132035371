// Package scene reads a small SVG drawing into kernel shapes and reports how
// they relate to each other: where curves cross, and which marker points sit
// inside triangles or on circles.
//
// This is not a full (or even correct) SVG reader. It understands:
//
//	<line x1 y1 x2 y2>           a segment
//	<circle cx cy r>             a circle, or a marker point when r is 0
//	<polygon points="a b c">     a triangle
//	<polyline points="s m e">    the arc from s through m to e
//
// Everything else is ignored. Coordinates are taken as they are, so a scene
// drawn in an SVG editor appears upside down relative to the kernel's y-up
// axes. That doesn't change any of the relations.
package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry"
	"github.com/osuushi/geometry/dbg"
	"github.com/pkg/errors"
)

// Shape is a named piece of the scene. Geometry is one of geometry.Segment2D,
// geometry.Circle2D, geometry.Triangle2D, geometry.Arc2D or a geometry.Point2D
// marker.
type Shape struct {
	Name     string
	Geometry interface{}
}

func (s Shape) Bounds() geometry.BBox2D {
	switch g := s.Geometry.(type) {
	case geometry.Segment2D:
		return g.Bounds()
	case geometry.Circle2D:
		return g.Bounds()
	case geometry.Triangle2D:
		return g.Bounds()
	case geometry.Arc2D:
		return g.Bounds()
	case geometry.Point2D:
		return geometry.BBox2DOf(g)
	}
	return geometry.BBox2DOf()
}

type Scene struct {
	Shapes []Shape
}

func (s *Scene) Bounds() geometry.BBox2D {
	bounds := geometry.BBox2DOf()
	for _, shape := range s.Shapes {
		bounds = bounds.Union(shape.Bounds())
	}
	return bounds
}

// Load parses an SVG document into a scene.
func Load(r io.Reader) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleScenePanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	scene = &Scene{}
	scene.walk(root)
	return scene, nil
}

// Shapes are collected in document order.
func (s *Scene) walk(el *svgparser.Element) {
	switch el.Name {
	case "line":
		s.add(el, geometry.Segment2D{
			Start: point(el, "x1", "y1"),
			End:   point(el, "x2", "y2"),
		})
	case "circle":
		center := point(el, "cx", "cy")
		radius := number(el, "r", false)
		switch {
		case radius < 0:
			fatalf("circle %q has negative radius %g", el.Attributes["id"], radius)
		case radius == 0:
			s.add(el, center)
		default:
			s.add(el, geometry.Circle2D{Center: center, Radius: radius})
		}
	case "polygon":
		points := pointList(el, 3)
		s.add(el, geometry.Triangle2D{A: points[0], B: points[1], C: points[2]})
	case "polyline":
		points := pointList(el, 3)
		arc, err := geometry.Arc2DThroughPoints(points[0], points[2], points[1])
		if err != nil {
			fatalWrapf(err, "arc %q", el.Attributes["id"])
		}
		s.add(el, arc)
	}

	for _, child := range el.Children {
		s.walk(child)
	}
}

func (s *Scene) add(el *svgparser.Element, g interface{}) {
	name := el.Attributes["id"]
	if name == "" {
		name = dbg.Name(g)
	}
	s.Shapes = append(s.Shapes, Shape{Name: name, Geometry: g})
}

// Missing coordinates default to 0, the same as in SVG.
func number(el *svgparser.Element, attr string, optional bool) float64 {
	raw, ok := el.Attributes[attr]
	if !ok {
		if optional {
			return 0
		}
		fatalf("<%s> is missing %q", el.Name, attr)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		fatalf("invalid %s value %q on <%s>: %v", attr, raw, el.Name, err)
	}
	return value
}

func point(el *svgparser.Element, x, y string) geometry.Point2D {
	return geometry.Point2D{X: number(el, x, true), Y: number(el, y, true)}
}

// Parses a points attribute like "0,0 10,0 5,5", which has to hold exactly n
// points.
func pointList(el *svgparser.Element, n int) []geometry.Point2D {
	pointStrings := strings.Fields(el.Attributes["points"])
	if len(pointStrings) != n {
		fatalf("<%s> needs %d points, got %d", el.Name, n, len(pointStrings))
	}
	points := make([]geometry.Point2D, 0, n)
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			fatalf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			fatalf("invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			fatalf("invalid y value %q: %v", coords[1], err)
		}
		points = append(points, geometry.Point2D{X: x, Y: y})
	}
	return points
}

type Kind int

const (
	// Two curves meet
	Crossing Kind = iota
	// A marker is inside (or on the edge of) a triangle
	Inside
	// A marker is on a circle
	OnCircle
)

func (k Kind) String() string {
	switch k {
	case Crossing:
		return "crossing"
	case Inside:
		return "inside"
	case OnCircle:
		return "on circle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Finding is one relation between two shapes of the scene.
type Finding struct {
	Kind   Kind
	A, B   string
	Points []geometry.Point2D
}

func (f Finding) String() string {
	return f.Format(aurora.NewAurora(false))
}

// Format renders the finding on one line, coloured through au.
func (f Finding) Format(au aurora.Aurora) string {
	points := make([]string, len(f.Points))
	for i, p := range f.Points {
		points[i] = au.Green(p).String()
	}
	return fmt.Sprintf("%-9s %s × %s: %s",
		au.Yellow(f.Kind).String(),
		au.Cyan(f.A).String(),
		au.Cyan(f.B).String(),
		strings.Join(points, " "),
	)
}

// Evaluate checks every pair of shapes. Findings come out in the order of the
// pairs.
func (s *Scene) Evaluate() []Finding {
	var findings []Finding
	for i, a := range s.Shapes {
		for _, b := range s.Shapes[i+1:] {
			finding, ok := relate(a, b)
			if !ok {
				finding, ok = relate(b, a)
			}
			if ok {
				findings = append(findings, finding)
			}
		}
	}
	return findings
}

// Only one order of each pair of kinds is handled here. Evaluate tries both.
func relate(a, b Shape) (Finding, bool) {
	crossing := func(hits []geometry.IntersectResult[geometry.Point2D]) (Finding, bool) {
		if len(hits) == 0 {
			return Finding{}, false
		}
		finding := Finding{Kind: Crossing, A: a.Name, B: b.Name}
		for _, hit := range hits {
			finding.Points = append(finding.Points, hit.Point)
		}
		return finding, true
	}

	switch ga := a.Geometry.(type) {
	case geometry.Segment2D:
		switch gb := b.Geometry.(type) {
		case geometry.Segment2D:
			if hit, ok := ga.IntersectSegment(gb); ok {
				return crossing([]geometry.IntersectResult[geometry.Point2D]{hit})
			}
		case geometry.Circle2D:
			return crossing(ga.IntersectCircle(gb))
		case geometry.Arc2D:
			return crossing(ga.IntersectArc(gb))
		}
	case geometry.Circle2D:
		if gb, ok := b.Geometry.(geometry.Circle2D); ok {
			return crossing(ga.IntersectCircle(gb))
		}
	case geometry.Point2D:
		switch gb := b.Geometry.(type) {
		case geometry.Triangle2D:
			if gb.Contains(ga, true) {
				return Finding{Kind: Inside, A: a.Name, B: b.Name, Points: []geometry.Point2D{ga}}, true
			}
		case geometry.Circle2D:
			if gb.OnBoundary(ga) {
				return Finding{Kind: OnCircle, A: a.Name, B: b.Name, Points: []geometry.Point2D{ga}}, true
			}
		}
	}
	return Finding{}, false
}
