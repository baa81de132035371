package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/osuushi/geometry/internal/scene"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `<svg>
  <line id="horizon" x1="-5" y1="0" x2="5" y2="0"/>
  <circle id="ring" cx="0" cy="0" r="2"/>
  <polygon id="tri" points="-4,-4 4,-4 0,4"/>
  <polyline id="bow" points="3,0 0,3 -3,0"/>
  <circle id="marker" cx="0" cy="-1" r="0"/>
</svg>`

func TestRender(t *testing.T) {
	s, err := scene.Load(strings.NewReader(source))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, Render(s, s.Evaluate(), 10, path))

	img, err := gg.LoadPNG(path)
	require.NoError(t, err)
	// 10 units wide and 8 high, plus the padding
	assert.Equal(t, 10*10+padding*2, img.Bounds().Dx())
	assert.Equal(t, 8*10+padding*2, img.Bounds().Dy())

	var out bytes.Buffer
	require.NoError(t, Cat(path, &out))
	assert.Contains(t, out.String(), "1337;File=")
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	err := Render(&scene.Scene{}, nil, 10, filepath.Join(dir, "empty.png"))
	assert.True(t, errors.Is(err, ErrEmptyScene))

	s, err := scene.Load(strings.NewReader(source))
	require.NoError(t, err)
	assert.Error(t, Render(s, nil, 0, filepath.Join(dir, "flat.png")))
	assert.Error(t, Render(s, nil, 1, filepath.Join(dir, "missing", "dir.png")))

	_, err = os.Stat(filepath.Join(dir, "flat.png"))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, Cat(filepath.Join(dir, "nope.png"), &bytes.Buffer{}))
}
