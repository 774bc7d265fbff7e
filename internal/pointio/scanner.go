package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/monitoring"
)

// ErrPointCountOutOfRange is returned when the number of points to read is
// negative or above the configured maximum.
var ErrPointCountOutOfRange = errors.New("point count out of range")

// Scanner reads points as whitespace-separated tokens: a count, then for
// each point its name, dimension and coordinates. Prompts go to a separate
// writer so they can be shown on a terminal or discarded.
type Scanner struct {
	tokens    *bufio.Scanner
	prompt    io.Writer
	maxPoints int
}

// NewScanner reads tokens from r and writes prompts to prompt (nil discards
// them). maxPoints is the largest count ScanCount accepts.
func NewScanner(r io.Reader, prompt io.Writer, maxPoints int) *Scanner {
	tokens := bufio.NewScanner(r)
	tokens.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	tokens.Split(bufio.ScanWords)
	if prompt == nil {
		prompt = io.Discard
	}
	return &Scanner{tokens: tokens, prompt: prompt, maxPoints: maxPoints}
}

func (s *Scanner) promptf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.prompt, format, args...)
}

func (s *Scanner) next(what string) (string, error) {
	if s.tokens.Scan() {
		return s.tokens.Text(), nil
	}
	if err := s.tokens.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", what, err)
	}
	return "", fmt.Errorf("reading %s: %w", what, io.ErrUnexpectedEOF)
}

func (s *Scanner) nextInt(what string) (int, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a whole number: %w", what, tok, geometry.ErrInvalidNumber)
	}
	return n, nil
}

func (s *Scanner) nextFloat(what string) (float64, error) {
	tok, err := s.next(what)
	if err != nil {
		return 0, err
	}
	v, err := parseCoordinate(tok)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	return v, nil
}

func parseCoordinate(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", tok, geometry.ErrInvalidNumber)
	}
	return v, nil
}

// ScanCount reads the number of points that follow.
func (s *Scanner) ScanCount() (int, error) {
	s.promptf("Enter the number of points: ")
	n, err := s.nextInt("number of points")
	if err != nil {
		return 0, err
	}
	if n < 0 || n > s.maxPoints {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrPointCountOutOfRange, n, s.maxPoints)
	}
	return n, nil
}

// ScanPoint reads one point. The dimension is range-checked before any
// coordinate is read.
func (s *Scanner) ScanPoint() (geometry.CartesianPoint, error) {
	s.promptf("\nEnter point's name: ")
	name, err := s.next("point name")
	if err != nil {
		return geometry.CartesianPoint{}, err
	}

	s.promptf("Enter point's dimension (whole number): ")
	dimension, err := s.nextInt("dimension")
	if err != nil {
		return geometry.CartesianPoint{}, fmt.Errorf("point %q: %w", name, err)
	}
	if err := geometry.ValidateDimension(dimension); err != nil {
		return geometry.CartesianPoint{}, fmt.Errorf("point %q: %w", name, err)
	}

	s.promptf("Enter point's coordinates:\n")
	x := make([]float64, dimension)
	for i := range x {
		s.promptf("  x%d = ", i)
		if x[i], err = s.nextFloat(fmt.Sprintf("x%d", i)); err != nil {
			return geometry.CartesianPoint{}, fmt.Errorf("point %q: %w", name, err)
		}
	}

	p, err := geometry.NewCartesianPoint(dimension, x, name)
	if err != nil {
		return geometry.CartesianPoint{}, fmt.Errorf("point %q: %w", name, err)
	}
	monitoring.Debugf("scanned point %q (%d-dim)", p.Name(), p.Dimension())
	return p, nil
}

// ScanAll reads a count followed by that many points. Nothing is returned
// unless every point is valid.
func (s *Scanner) ScanAll() ([]geometry.CartesianPoint, error) {
	n, err := s.ScanCount()
	if err != nil {
		return nil, err
	}
	points := make([]geometry.CartesianPoint, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.ScanPoint()
		if err != nil {
			return nil, fmt.Errorf("point %d of %d: %w", i+1, n, err)
		}
		points = append(points, p)
	}
	return points, nil
}
