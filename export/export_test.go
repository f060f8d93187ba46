package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/smooth"
)

func testData(t *testing.T) (curve.Series, smooth.Curve) {
	t.Helper()

	s, err := curve.New([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	require.NoError(t, err)

	c, err := smooth.Series(s, "cubic", smooth.WithNumPoints(50))
	require.NoError(t, err)

	return s, c
}

func TestFigure(t *testing.T) {
	s, c := testData(t)

	p, err := Figure(s, c, WithTitle("squares"), WithAxisLabels("t", "v"))
	require.NoError(t, err)

	assert.Equal(t, "squares", p.Title.Text)
	assert.Equal(t, "t", p.X.Label.Text)
	assert.Equal(t, "v", p.Y.Label.Text)
}

func TestSaveFormats(t *testing.T) {
	s, c := testData(t)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg", "out.svg", "out.pdf", "UPPER.PNG"} {
		path := filepath.Join(dir, name)

		require.NoError(t, Save(s, c, path), name)

		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	s, c := testData(t)

	for _, name := range []string{"out.bmp", "out", "out."} {
		err := Save(s, c, filepath.Join(t.TempDir(), name))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	s, c := testData(t)

	err := Save(s, c, filepath.Join(t.TempDir(), "missing", "out.png"))
	require.Error(t, err)
}
