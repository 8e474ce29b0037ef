// Package charts renders numeric series as PNG charts: a scatter plot with a
// fitted linear trend, and an index-based line chart with a supplied trend.
package charts

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"

	logging "trendchart/internal/infra/log"
)

var (
	ErrEmptySeries    = errors.New("series must not be empty")
	ErrLengthMismatch = errors.New("series must have the same length")
)

// RenderScatter writes a scatter plot of (xs[i], ys[i]) to outputPath. With
// more than two points a least-squares trend line is drawn under the points.
func RenderScatter(xs, ys []float64, outputPath, title string) error {
	if err := checkSeries(xs, ys); err != nil {
		return err
	}
	start := time.Now()

	rc := newRenderContext(title, "X-Koordinate", "Y-Koordinate")

	var trend plotter.XYs
	if len(xs) > minTrendPoints {
		fit := FitLine(xs, ys)
		trend = fit.Sample(floats.Min(xs), floats.Max(xs), trendSamples)
		logging.LogDebug("Fitted trend line",
			zap.Float64("slope", fit.Slope),
			zap.Float64("intercept", fit.Intercept))
	}

	if err := rc.addSeries(zipXYs(xs, ys), trend); err != nil {
		return err
	}
	if err := rc.save(outputPath); err != nil {
		return err
	}

	logging.LogSuccess("Scatter plot rendered",
		zap.String("path", outputPath),
		zap.Int("points", len(xs)),
		zap.Bool("trend", trend != nil),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// RenderLine writes measurements as points against their 0-based index, with
// trendline drawn as a line at the supplied values.
func RenderLine(measurements, trendline []float64, outputPath, title string) error {
	if err := checkSeries(measurements, trendline); err != nil {
		return err
	}
	start := time.Now()

	rc := newRenderContext(title, "Messnummer", "Messwert")

	index := make([]float64, len(measurements))
	for i := range index {
		index[i] = float64(i)
	}

	if err := rc.addSeries(zipXYs(index, measurements), zipXYs(index, trendline)); err != nil {
		return err
	}
	if err := rc.save(outputPath); err != nil {
		return err
	}

	logging.LogSuccess("Line chart rendered",
		zap.String("path", outputPath),
		zap.Int("points", len(measurements)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

func checkSeries(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptySeries
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

func zipXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// PNGRenderer exposes RenderScatter and RenderLine as methods.
type PNGRenderer struct{}

func (PNGRenderer) RenderScatter(xs, ys []float64, outputPath, title string) error {
	return RenderScatter(xs, ys, outputPath, title)
}

func (PNGRenderer) RenderLine(measurements, trendline []float64, outputPath, title string) error {
	return RenderLine(measurements, trendline, outputPath, title)
}
