package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesMixedSeparators(t *testing.T) {
	s, err := Series("1,2\n3 4\n5\t6")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3, 5}, s.X)
	assert.Equal(t, []float64{2, 4, 6}, s.Y)
}

func TestSeriesSemicolon(t *testing.T) {
	s, err := Series("1;10\n2;20")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, s.X)
	assert.Equal(t, []float64{10, 20}, s.Y)
}

func TestSeriesSortsOutOfOrderInput(t *testing.T) {
	s, err := Series("3 9\n1 1\n2 4")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, s.X)
	assert.Equal(t, []float64{1, 4, 9}, s.Y)
}

func TestSeriesSkipsCommentsAndBlanks(t *testing.T) {
	input := "# header comment\n\n1 1\n   \n# another\n2 4\n"

	s, err := Series(input)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, s.X)
	assert.Equal(t, []float64{1, 4}, s.Y)
}

func TestSeriesCommaWithSpaces(t *testing.T) {
	// "1, 2" splits on the comma; the field " 2" must still parse.
	s, err := Series("1, 2\n3, 4")
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4}, s.Y)
}

func TestSeriesExtraFieldsIgnored(t *testing.T) {
	s, err := Series("1 2 garbage\n3 4 5 6")
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4}, s.Y)
}

func TestSeriesTooFewPoints(t *testing.T) {
	for _, input := range []string{"", "# only a comment", "1 2"} {
		_, err := Series(input)
		assert.ErrorIs(t, err, ErrTooFewPoints, "input %q", input)
	}
}

func TestSeriesMalformedLine(t *testing.T) {
	_, err := Series("abc 1")
	require.ErrorIs(t, err, ErrMalformedLine)

	var lerr *LineError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 1, lerr.Line)
	assert.Equal(t, "abc 1", lerr.Text)
}

func TestSeriesMalformedLineNumber(t *testing.T) {
	_, err := Series("1 1\n2 4\nbogus-line\n3 9")

	var lerr *LineError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 3, lerr.Line)
	assert.Equal(t, "bogus-line", lerr.Text)
}

func TestSeriesLineWithoutSeparator(t *testing.T) {
	_, err := Series("1 2\n5")

	var lerr *LineError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Line)
}

func TestSeriesNegativeAndScientific(t *testing.T) {
	s, err := Series("-1.5 2e3\n0.25 -4.5e-2")
	require.NoError(t, err)

	assert.Equal(t, []float64{-1.5, 0.25}, s.X)
	assert.Equal(t, []float64{2000, -0.045}, s.Y)
}

func TestSeriesCRLF(t *testing.T) {
	s, err := Series("1 1\r\n2 4\r\n")
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, s.X)
	assert.Equal(t, []float64{1, 4}, s.Y)
}
