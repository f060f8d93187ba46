package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-curve/curve"
)

// Errors returned by [Series].
var (
	ErrMalformedLine = errors.New("parse: malformed line")
	ErrTooFewPoints  = errors.New("parse: need at least 2 data points")
)

// separators in priority order. The first one that yields at least two
// fields is used for the whole line.
var separators = []string{" ", ",", "\t", ";"}

// LineError reports a line that could not be parsed. Line is 1-based and
// Text is the trimmed line as read from the input.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("parse: line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Series parses text into a normalized [curve.Series].
//
// A malformed line fails with a [*LineError] wrapping [ErrMalformedLine].
// Fewer than 2 parsed points fails with [ErrTooFewPoints]. If the x values
// are not strictly increasing, the points are stably sorted by x before
// being returned.
func Series(text string) (curve.Series, error) {
	var xs, ys []float64

	for num, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		x, y, err := parseLine(line)
		if err != nil {
			return curve.Series{}, &LineError{Line: num + 1, Text: line, Err: err}
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) < 2 {
		return curve.Series{}, ErrTooFewPoints
	}

	s, err := curve.New(xs, ys)
	if err != nil {
		return curve.Series{}, fmt.Errorf("parse: %w", err)
	}

	return s, nil
}

func parseLine(line string) (x, y float64, err error) {
	var fields []string

	for _, sep := range separators {
		if parts := strings.Split(line, sep); len(parts) >= 2 {
			fields = parts
			break
		}
	}

	if len(fields) < 2 {
		return 0, 0, ErrMalformedLine
	}

	x, err = parseFloat(fields[0])
	if err != nil {
		return 0, 0, err
	}

	y, err = parseFloat(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func parseFloat(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformedLine, field)
	}

	return v, nil
}
