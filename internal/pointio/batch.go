package pointio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/monitoring"
)

// Batch file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const maxBatchFileSize = 1 * 1024 * 1024 // 1MB

// ErrMalformedBatch is returned when a batch is empty or holds more than one
// top-level document.
var ErrMalformedBatch = errors.New("malformed batch")

// BatchFile is the on-disk layout of a batch of points.
type BatchFile struct {
	Points []BatchPoint `json:"points" yaml:"points"`
}

// BatchPoint is one entry of a BatchFile. Dimension is optional; when set it
// must equal len(Coordinates).
type BatchPoint struct {
	Name        string    `json:"name" yaml:"name"`
	Dimension   *int      `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"`
}

// FormatFromPath maps a file extension to a batch format.
func FormatFromPath(path string) (string, error) {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("batch file must have .json, .yaml or .yml extension, got %q", ext)
	}
}

// LoadBatch reads and validates a batch file. The format follows the file
// extension and the file must be under 1MB.
func LoadBatch(path string, maxPoints int) ([]geometry.CartesianPoint, error) {
	cleanPath := filepath.Clean(path)
	format, err := FormatFromPath(cleanPath)
	if err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat batch file: %w", err)
	}
	if fileInfo.Size() > maxBatchFileSize {
		return nil, fmt.Errorf("batch file too large: %d bytes (max %d)", fileInfo.Size(), maxBatchFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	points, err := DecodeBatch(bytes.NewReader(data), format, maxPoints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(cleanPath), err)
	}
	monitoring.Logf("loaded %d points from %s", len(points), cleanPath)
	return points, nil
}

// DecodeBatch parses a batch in the given format and builds validated
// points in file order. The input must hold exactly one document.
func DecodeBatch(r io.Reader, format string, maxPoints int) ([]geometry.CartesianPoint, error) {
	var file BatchFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&file); err != nil {
			return nil, batchParseError(format, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: trailing data after %s document", ErrMalformedBatch, format)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&file); err != nil {
			return nil, batchParseError(format, err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: more than one %s document", ErrMalformedBatch, format)
		}
	default:
		return nil, fmt.Errorf("unknown batch format %q", format)
	}

	if len(file.Points) > maxPoints {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrPointCountOutOfRange, len(file.Points), maxPoints)
	}

	points := make([]geometry.CartesianPoint, 0, len(file.Points))
	for i, bp := range file.Points {
		p, err := bp.toCartesian()
		if err != nil {
			return nil, fmt.Errorf("point %d of %d: %w", i+1, len(file.Points), err)
		}
		points = append(points, p)
	}
	return points, nil
}

func batchParseError(format string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty %s batch", ErrMalformedBatch, format)
	}
	return fmt.Errorf("failed to parse %s batch: %w", format, err)
}

func (bp BatchPoint) toCartesian() (geometry.CartesianPoint, error) {
	dimension := len(bp.Coordinates)
	if bp.Dimension != nil {
		dimension = *bp.Dimension
	}
	for i, v := range bp.Coordinates {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geometry.CartesianPoint{}, fmt.Errorf("point %q: x%d = %v: %w", bp.Name, i, v, geometry.ErrInvalidNumber)
		}
	}
	p, err := geometry.NewCartesianPoint(dimension, bp.Coordinates, bp.Name)
	if err != nil {
		return geometry.CartesianPoint{}, fmt.Errorf("point %q: %w", bp.Name, err)
	}
	return p, nil
}
