package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/units"
)

// Defaults applied by the Get* accessors when a field is unset.
const (
	DefaultPrecision = 4
	DefaultWorkers   = 1
	DefaultMaxPoints = 1 << 16
)

// ConversionConfig controls how points are converted and rendered.
// Every field is optional; the Get* methods supply defaults for nil fields,
// so partial configs are safe.
type ConversionConfig struct {
	// Conversion params
	DegeneratePolicy *string `json:"degenerate_policy,omitempty" yaml:"degenerate_policy,omitempty"` // "zero" or "fail"
	Workers          *int    `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Input params
	MaxPoints *int `json:"max_points,omitempty" yaml:"max_points,omitempty"`

	// Output params
	AngleUnits *string `json:"angle_units,omitempty" yaml:"angle_units,omitempty"` // "rad" or "deg"
	Precision  *int    `json:"precision,omitempty" yaml:"precision,omitempty"`      // significant digits
}

// Helper functions to create pointers
func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }

// EmptyConfig returns a ConversionConfig with all fields set to nil.
func EmptyConfig() *ConversionConfig {
	return &ConversionConfig{}
}

// DefaultConfig returns a ConversionConfig with every field populated.
func DefaultConfig() *ConversionConfig {
	return &ConversionConfig{
		DegeneratePolicy: ptrString(geometry.DegenerateZero.String()),
		Workers:          ptrInt(DefaultWorkers),
		MaxPoints:        ptrInt(DefaultMaxPoints),
		AngleUnits:       ptrString(units.Radians),
		Precision:        ptrInt(DefaultPrecision),
	}
}

// Load reads a ConversionConfig from a .json, .yaml or .yml file.
// The file must be under 1MB. Fields omitted from the file stay nil.
func Load(path string) (*ConversionConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if ext == ".json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filepath.Base(cleanPath), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *ConversionConfig) Validate() error {
	if c.DegeneratePolicy != nil {
		if _, err := geometry.ParseDegeneratePolicy(*c.DegeneratePolicy); err != nil {
			return fmt.Errorf("degenerate_policy: %w", err)
		}
	}

	if c.AngleUnits != nil && !units.IsValid(*c.AngleUnits) {
		return fmt.Errorf("angle_units must be one of %s, got %q", units.GetValidUnitsString(), *c.AngleUnits)
	}

	// strconv 'g' formatting is exact at 17 significant digits for float64
	if c.Precision != nil && (*c.Precision < 1 || *c.Precision > 17) {
		return fmt.Errorf("precision must be between 1 and 17, got %d", *c.Precision)
	}

	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}

	if c.MaxPoints != nil && *c.MaxPoints < 1 {
		return fmt.Errorf("max_points must be positive, got %d", *c.MaxPoints)
	}

	return nil
}

// GetDegeneratePolicy returns the parsed degenerate_policy or DegenerateZero.
func (c *ConversionConfig) GetDegeneratePolicy() geometry.DegeneratePolicy {
	if c.DegeneratePolicy == nil {
		return geometry.DegenerateZero
	}
	p, err := geometry.ParseDegeneratePolicy(*c.DegeneratePolicy)
	if err != nil {
		return geometry.DegenerateZero // default on parse error
	}
	return p
}

// GetWorkers returns the workers value or the default.
func (c *ConversionConfig) GetWorkers() int {
	if c.Workers == nil {
		return DefaultWorkers
	}
	return *c.Workers
}

// GetMaxPoints returns the max_points value or the default.
func (c *ConversionConfig) GetMaxPoints() int {
	if c.MaxPoints == nil {
		return DefaultMaxPoints
	}
	return *c.MaxPoints
}

// GetAngleUnits returns the angle_units value or radians.
func (c *ConversionConfig) GetAngleUnits() string {
	if c.AngleUnits == nil {
		return units.Radians
	}
	return *c.AngleUnits
}

// GetPrecision returns the precision value or the default.
func (c *ConversionConfig) GetPrecision() int {
	if c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// ConvertOptions translates the config into geometry options.
func (c *ConversionConfig) ConvertOptions() []geometry.ConvertOption {
	return []geometry.ConvertOption{
		geometry.WithDegeneratePolicy(c.GetDegeneratePolicy()),
		geometry.WithWorkers(c.GetWorkers()),
	}
}
