package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/banshee-data/nsphere/internal/chart"
	"github.com/banshee-data/nsphere/internal/config"
	"github.com/banshee-data/nsphere/internal/geometry"
	"github.com/banshee-data/nsphere/internal/monitoring"
	"github.com/banshee-data/nsphere/internal/pointio"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
)

type convertOptions struct {
	input      string
	configPath string
	format     string
	units      string
	precision  int
	workers    int
	strict     bool
	echo       bool
	quiet      bool
	plotPath   string
	chartPath  string
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Read points and print them in generalized spherical coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, &opts)
		},
	}
	addConvertFlags(cmd, &opts)
	return cmd
}

func addConvertFlags(cmd *cobra.Command, o *convertOptions) {
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "Batch file of points (.json, .yaml, .yml); reads stdin when empty")
	f.StringVarP(&o.configPath, "config", "c", "", "Conversion config file (.json, .yaml, .yml)")
	f.StringVarP(&o.format, "format", "f", formatText, "Output format: text or json")
	f.StringVar(&o.units, "units", "", "Angle units: rad or deg (overrides config)")
	f.IntVar(&o.precision, "precision", 0, "Significant digits in text output (overrides config)")
	f.IntVar(&o.workers, "workers", 0, "Points converted concurrently (overrides config)")
	f.BoolVar(&o.strict, "strict", false, "Reject points whose angles are undefined instead of using 0")
	f.BoolVar(&o.echo, "echo", false, "Print the Cartesian input before the results (text format)")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Do not print interactive prompts")
	f.StringVar(&o.plotPath, "plot", "", "Also save a PNG scatter of the results to this path")
	f.StringVar(&o.chartPath, "chart", "", "Also save an HTML chart page of the results to this path")
}

// resolveConfig loads the config file (if any) and applies explicitly set
// flags on top of it.
func resolveConfig(cmd *cobra.Command, o *convertOptions) (*config.ConversionConfig, error) {
	cfg := config.EmptyConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("units") {
		cfg.AngleUnits = &o.units
	}
	if flags.Changed("precision") {
		cfg.Precision = &o.precision
	}
	if flags.Changed("workers") {
		cfg.Workers = &o.workers
	}
	if flags.Changed("strict") {
		policy := geometry.DegenerateZero.String()
		if o.strict {
			policy = geometry.DegenerateFail.String()
		}
		cfg.DegeneratePolicy = &policy
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func readPoints(cmd *cobra.Command, o *convertOptions, cfg *config.ConversionConfig) ([]geometry.CartesianPoint, error) {
	if o.input != "" {
		return pointio.LoadBatch(o.input, cfg.GetMaxPoints())
	}
	var prompt io.Writer = cmd.ErrOrStderr()
	if o.quiet {
		prompt = io.Discard
	}
	return pointio.NewScanner(cmd.InOrStdin(), prompt, cfg.GetMaxPoints()).ScanAll()
}

func runConvert(cmd *cobra.Command, o *convertOptions) error {
	if o.format != formatText && o.format != formatJSON {
		return fmt.Errorf("unknown output format %q (want %s or %s)", o.format, formatText, formatJSON)
	}
	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return err
	}

	runID := uuid.New()
	monitoring.Debugf("run %s: policy=%s units=%s workers=%d",
		runID, cfg.GetDegeneratePolicy(), cfg.GetAngleUnits(), cfg.GetWorkers())

	points, err := readPoints(cmd, o, cfg)
	if err != nil {
		return err
	}

	polar, err := geometry.ConvertAll(cmd.Context(), points, cfg.ConvertOptions()...)
	if err != nil {
		return err
	}
	monitoring.Logf("run %s: converted %d points", runID, len(polar))

	out := cmd.OutOrStdout()
	switch o.format {
	case formatJSON:
		if err := pointio.WriteJSON(out, polar, cfg.GetAngleUnits()); err != nil {
			return err
		}
	default:
		printer := pointio.NewPrinter(out, cfg.GetPrecision(), cfg.GetAngleUnits())
		if o.echo {
			if err := printer.PrintCartesianBatch(points); err != nil {
				return err
			}
		}
		if err := printer.PrintPolarBatch(polar); err != nil {
			return err
		}
	}

	if o.plotPath != "" {
		if err := chart.PlotPolar(polar, o.plotPath); err != nil {
			return err
		}
		monitoring.Logf("run %s: wrote plot %s", runID, o.plotPath)
	}
	if o.chartPath != "" {
		if err := writeChart(o.chartPath, polar, cfg.GetAngleUnits()); err != nil {
			return err
		}
		monitoring.Logf("run %s: wrote chart %s", runID, o.chartPath)
	}
	return nil
}

func writeChart(path string, polar []geometry.PolarPoint, angleUnits string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close chart file: %w", cerr)
		}
	}()
	return chart.RenderPolarHTML(f, polar, angleUnits)
}
