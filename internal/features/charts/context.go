package charts

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"trendchart/internal/infra/fs"
	logging "trendchart/internal/infra/log"
)

// renderContext holds the plot of a single render call. Nothing in it is
// shared between calls.
type renderContext struct {
	plot   *plot.Plot
	legend *legendBox
}

func newRenderContext(title, xLabel, yLabel string) *renderContext {
	p := plot.New()
	p.BackgroundColor = color.White

	p.Title.Text = title
	p.Title.TextStyle.Font = titleFont
	p.Title.Padding = titlePadding

	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font = labelFont
	p.X.Tick.Label.Font = tickFont
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font = labelFont
	p.Y.Tick.Label.Font = tickFont

	grid := plotter.NewGrid()
	grid.Vertical = draw.LineStyle{Color: gridColor, Width: gridWidth}
	grid.Horizontal = draw.LineStyle{Color: gridColor, Width: gridWidth}
	p.Add(grid)

	return &renderContext{
		plot:   p,
		legend: newLegendBox(),
	}
}

// addSeries draws points as a scatter layer and, if trend is non-empty, a
// trend line underneath them.
func (rc *renderContext) addSeries(points, trend plotter.XYs) error {
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("failed to build scatter layer: %w", err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  pointColor,
		Radius: pointRadius,
		Shape:  draw.CircleGlyph{},
	}

	var line *plotter.Line
	if len(trend) > 0 {
		line, err = plotter.NewLine(trend)
		if err != nil {
			return fmt.Errorf("failed to build trend layer: %w", err)
		}
		line.LineStyle = draw.LineStyle{Color: trendColor, Width: trendWidth}
		rc.plot.Add(line)
	}
	rc.plot.Add(scatter)

	rc.legend.Add(pointsLabel, scatter, points)
	if line != nil {
		rc.legend.Add(trendLabel, line, trend)
	}
	return nil
}

// save draws the plot onto a white raster canvas and writes it as PNG.
func (rc *renderContext) save(path string) error {
	rc.plot.Add(rc.legend)

	canvas := vgimg.NewWith(
		vgimg.UseWH(canvasWidth, canvasHeight),
		vgimg.UseDPI(canvasDPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(canvas)
	rc.plot.Draw(draw.Crop(dc, layoutMargin, -layoutMargin, layoutMargin, -layoutMargin))

	if err := fs.EnsureParentDir(path); err != nil {
		return err
	}

	// gg encodes and writes the PNG, same save path for every chart
	out := gg.NewContextForImage(canvas.Image())
	if err := out.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	size, err := fs.VerifyWritten(path)
	if err != nil {
		logging.LogError("Chart file is empty after rendering", zap.String("filename", path))
		return err
	}

	bounds := canvas.Image().Bounds()
	logging.LogInfo("Chart saved",
		zap.String("filename", path),
		zap.Int64("fileSize", size),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	return nil
}
