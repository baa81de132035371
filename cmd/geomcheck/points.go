package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func runPoints(in io.Reader, out io.Writer, au aurora.Aurora, logger *zap.Logger) error {
	triangles, err := readTriangles(in)
	if err != nil {
		return err
	}
	logger.Info("read triangles", zap.Int("count", len(triangles)))

	for i, triangle := range triangles {
		fmt.Fprintln(out, describe(i+1, triangle, au))
	}
	return nil
}

func describe(n int, t geometry.Triangle2D, au aurora.Aurora) string {
	header := au.Cyan(fmt.Sprintf("triangle %d", n)).String()
	if t.IsDegenerate() {
		return fmt.Sprintf("%s: %s", header, au.Red("degenerate").String())
	}
	orientation := "clockwise"
	if t.IsCounterClockwise() {
		orientation = "counter-clockwise"
	}
	center, err := t.CircumCenter()
	if err != nil {
		// IsDegenerate already caught this
		return fmt.Sprintf("%s: %s", header, au.Red(err).String())
	}
	return fmt.Sprintf("%s: %s, area %g, circumcenter %s",
		header, orientation, t.Area(), au.Green(center).String())
}

// Groups of points are separated by blank lines. Every group has to hold
// exactly three points.
func readTriangles(in io.Reader) ([]geometry.Triangle2D, error) {
	var triangles []geometry.Triangle2D
	var points []geometry.Point2D
	line := 0

	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		if len(points) != 3 {
			return errors.Errorf("triangle ending on line %d has %d points", line, len(points))
		}
		triangles = append(triangles, geometry.Triangle2D{A: points[0], B: points[1], C: points[2]})
		points = nil
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing triangle if any
	if err := flush(); err != nil {
		return nil, err
	}
	return triangles, nil
}

func parsePoint(line string) (geometry.Point2D, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geometry.Point2D{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geometry.Point2D{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geometry.Point2D{}, errors.Wrap(err, "parsing y")
	}
	return geometry.Point2D{X: x, Y: y}, nil
}
