package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var plain = aurora.NewAurora(false)

func TestReadTriangles(t *testing.T) {
	input := "0 0\n1 0\n0 1\n\n\n2 2\n4 2\n 2 4 \n"
	triangles, err := readTriangles(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, triangles, 2)
	assert.Equal(t, geometry.Point2D{X: 1}, triangles[0].B)
	assert.Equal(t, geometry.Point2D{X: 2, Y: 4}, triangles[1].C)

	_, err = readTriangles(strings.NewReader("0 0\n1 0\n\n0 1\n"))
	assert.EqualError(t, err, "triangle ending on line 3 has 2 points")

	_, err = readTriangles(strings.NewReader("0 0\n1 x\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = readTriangles(strings.NewReader("0 0 0\n"))
	assert.Error(t, err)
}

func TestRunPoints(t *testing.T) {
	var out bytes.Buffer
	input := "0 0\n2 0\n0 2\n\n0 0\n0 2\n2 0\n\n0 0\n1 1\n2 2\n"
	require.NoError(t, runPoints(strings.NewReader(input), &out, plain, zap.NewNop()))
	assert.Equal(t,
		"triangle 1: counter-clockwise, area 2, circumcenter (1, 1)\n"+
			"triangle 2: clockwise, area 2, circumcenter (1, 1)\n"+
			"triangle 3: degenerate\n",
		out.String())
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.svg")
	require.NoError(t, os.WriteFile(scenePath, []byte(`<svg>
  <line id="a" x1="0" y1="0" x2="2" y2="2"/>
  <line id="b" x1="0" y1="2" x2="2" y2="0"/>
</svg>`), 0o644))

	var out bytes.Buffer
	opts := options{scene: scenePath, png: filepath.Join(dir, "scene.png"), scale: 10}
	require.NoError(t, runCheck(opts, &out, plain, zap.NewNop()))
	assert.Equal(t, "crossing  a × b: (1, 1)\n", out.String())
	assert.FileExists(t, opts.png)

	opts.scene = filepath.Join(dir, "missing.svg")
	assert.Error(t, runCheck(opts, &out, plain, zap.NewNop()))
}

func TestConfigure(t *testing.T) {
	defer func() { _ = geometry.UseTolerance(geometry.DefaultTolerance) }()

	configPath := filepath.Join(t.TempDir(), "geometry.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("tolerance: 1e-6\n"), 0o644))

	require.NoError(t, configure(options{config: configPath}, zap.NewNop()))
	assert.Equal(t, 1e-6, geometry.Tolerance())

	require.NoError(t, configure(options{config: configPath, tolerance: 1e-3}, zap.NewNop()))
	assert.Equal(t, 1e-3, geometry.Tolerance())

	assert.Error(t, configure(options{tolerance: -1}, zap.NewNop()))
	assert.Error(t, configure(options{config: filepath.Join(t.TempDir(), "nope.yaml")}, zap.NewNop()))
}

func TestNewLogger(t *testing.T) {
	for _, jsonLog := range []bool{false, true} {
		logger, err := newLogger(jsonLog)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
