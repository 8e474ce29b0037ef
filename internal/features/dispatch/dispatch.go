// Package dispatch turns one JSON request read from stdin into a rendered
// chart and reports the outcome on stdout/stderr with a process exit code.
package dispatch

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"trendchart/internal/features/charts"
	logging "trendchart/internal/infra/log"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Renderer draws the two chart variants.
type Renderer interface {
	RenderScatter(xs, ys []float64, outputPath, title string) error
	RenderLine(measurements, trendline []float64, outputPath, title string) error
}

type Dispatcher struct {
	renderer Renderer
}

func New(renderer Renderer) *Dispatcher {
	return &Dispatcher{renderer: renderer}
}

// Run handles one request with the PNG renderer.
func Run(stdin io.Reader, stdout, stderr io.Writer) int {
	return New(charts.PNGRenderer{}).Run(stdin, stdout, stderr)
}

// Run reads the whole of stdin, renders the requested chart and returns the
// exit code. Exactly one line is written, to stdout on success or to stderr
// on failure.
func (d *Dispatcher) Run(stdin io.Reader, stdout, stderr io.Writer) int {
	start := time.Now()
	logger := logging.RequestLogger(logging.GenerateRequestID())

	data, err := io.ReadAll(stdin)
	if err != nil {
		logger.Error("Failed to read input", zap.Error(err))
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return ExitFailure
	}
	logger.Debug("Request received", zap.Int("bytes", len(data)))

	req, err := ParseRequest(data)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			logger.Warn("Rejected request", zap.Stringer("kind", reqErr.Kind), zap.Error(err))
			if reqErr.Kind == MalformedJSON {
				fmt.Fprintf(stderr, "Error parsing JSON: %v\n", err)
				return ExitFailure
			}
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	message, err := d.render(req)
	if err != nil {
		logger.Error("Chart generation failed",
			zap.String("output_path", req.OutputPath),
			zap.Error(err))
		fmt.Fprintf(stderr, "Error generating chart: %v\n", err)
		return ExitFailure
	}

	logger.Info("Request completed",
		zap.String("output_path", req.OutputPath),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	fmt.Fprintln(stdout, message)
	return ExitOK
}

func (d *Dispatcher) render(req *ChartRequest) (message string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panicked: %v", r)
		}
	}()

	switch p := req.Payload.(type) {
	case CoordinatePayload:
		if err := d.renderer.RenderScatter(p.X, p.Y, req.OutputPath, req.Title); err != nil {
			return "", err
		}
		return "Scatter plot saved to " + req.OutputPath, nil
	case MeasurementPayload:
		if err := d.renderer.RenderLine(p.Measurements, p.Trendline, req.OutputPath, req.Title); err != nil {
			return "", err
		}
		return "Line chart saved to " + req.OutputPath, nil
	default:
		return "", fmt.Errorf("unsupported payload %T", req.Payload)
	}
}
