package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/units"
)

// RenderPolarHTML writes an HTML page with two charts: each point projected
// onto the plane of its last angle, and a bar chart of radii. The last angle
// is reported in angleUnits in the tooltip data.
func RenderPolarHTML(w io.Writer, points []geometry.PolarPoint, angleUnits string) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	pad := 1.0
	scatterData := make([]opts.ScatterData, 0, len(points))
	names := make([]string, 0, len(points))
	radii := make([]opts.BarData, 0, len(points))
	for _, p := range points {
		x, y := Projection(p)
		phi := units.ConvertAngle(lastAngle(p), angleUnits)
		scatterData = append(scatterData, opts.ScatterData{
			Name:  p.Name(),
			Value: []interface{}{x, y, p.Radius(), phi},
		})
		names = append(names, p.Name())
		radii = append(radii, opts.BarData{Name: p.Name(), Value: p.Radius()})
		if p.Radius()*1.1 > pad {
			pad = p.Radius() * 1.1
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Polar points", Width: "720px", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{Title: "Last-angle projection", Subtitle: fmt.Sprintf("points=%d", len(points))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "r·cos φ", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "r·sin φ", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("points", scatterData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "720px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Radius"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("radius", radii,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.PageTitle = "Polar points"
	page.AddCharts(scatter, bar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render polar page: %w", err)
	}
	return nil
}
