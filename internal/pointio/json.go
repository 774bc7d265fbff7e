package pointio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/units"
)

// PolarRecord is the JSON form of a converted point.
type PolarRecord struct {
	Name      string    `json:"name"`
	Dimension int       `json:"dimension"`
	Radius    float64   `json:"radius"`
	Angles    []float64 `json:"angles"`
	AngleUnit string    `json:"angle_unit"`
}

// NewPolarRecord converts pt's angles to angleUnits.
func NewPolarRecord(pt geometry.PolarPoint, angleUnits string) PolarRecord {
	if !units.IsValid(angleUnits) {
		angleUnits = units.Radians
	}
	return PolarRecord{
		Name:      pt.Name(),
		Dimension: pt.Dimension(),
		Radius:    pt.Radius(),
		Angles:    units.ConvertAngles(pt.Angles(), angleUnits),
		AngleUnit: angleUnits,
	}
}

// WriteJSON writes points as an indented JSON array of PolarRecord.
func WriteJSON(w io.Writer, points []geometry.PolarPoint, angleUnits string) error {
	records := make([]PolarRecord, len(points))
	for i, pt := range points {
		records[i] = NewPolarRecord(pt, angleUnits)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode polar points: %w", err)
	}
	return nil
}
