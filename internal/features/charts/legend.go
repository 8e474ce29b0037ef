package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type corner int

const (
	upperRight corner = iota
	upperLeft
	lowerLeft
	lowerRight
)

// cornerOrder is the preference used when several corners are equally empty.
var cornerOrder = []corner{upperRight, upperLeft, lowerLeft, lowerRight}

func (c corner) top() bool  { return c == upperRight || c == upperLeft }
func (c corner) left() bool { return c == upperLeft || c == lowerLeft }

// legendBox is a plotter drawing a framed, semi-opaque legend inside the data
// area, in the corner that hides the fewest data points. It must be added to
// the plot last.
type legendBox struct {
	legend plot.Legend
	data   []plotter.XYs
}

func newLegendBox() *legendBox {
	l := plot.NewLegend()
	l.TextStyle.Font = legendFont
	l.Padding = legendSpacing
	return &legendBox{legend: l}
}

// Add registers an entry together with the data it stands for.
func (b *legendBox) Add(name string, thumb plot.Thumbnailer, data plotter.XYs) {
	b.legend.Add(name, thumb)
	b.data = append(b.data, data)
}

func (b *legendBox) Plot(c draw.Canvas, plt *plot.Plot) {
	if len(b.data) == 0 {
		return
	}
	inner := draw.Crop(c, legendInset, -legendInset, legendInset, -legendInset)
	size := b.legend.Rectangle(inner).Size()

	trX, trY := plt.Transforms(&c)
	var pts []vg.Point
	for _, xys := range b.data {
		for _, p := range xys {
			pts = append(pts, vg.Point{X: trX(p.X), Y: trY(p.Y)})
		}
	}

	best := bestCorner(inner.Rectangle, size, pts)
	frame := frameRect(inner.Rectangle, size, best)

	c.SetColor(legendFill)
	c.Fill(frame.Path())
	c.SetLineStyle(draw.LineStyle{Color: legendFrame, Width: frameWidth})
	c.Stroke(frame.Path())

	b.legend.Top = best.top()
	b.legend.Left = best.left()
	b.legend.Draw(inner)
}

// frameRect returns the padded box around a legend of the given size placed
// in corner k of area.
func frameRect(area vg.Rectangle, size vg.Point, k corner) vg.Rectangle {
	var r vg.Rectangle
	if k.left() {
		r.Min.X = area.Min.X
		r.Max.X = area.Min.X + size.X
	} else {
		r.Max.X = area.Max.X
		r.Min.X = area.Max.X - size.X
	}
	if k.top() {
		r.Max.Y = area.Max.Y
		r.Min.Y = area.Max.Y - size.Y
	} else {
		r.Min.Y = area.Min.Y
		r.Max.Y = area.Min.Y + size.Y
	}
	r.Min.X -= legendPadding
	r.Min.Y -= legendPadding
	r.Max.X += legendPadding
	r.Max.Y += legendPadding
	return r
}

// bestCorner picks the corner whose legend frame covers the fewest points.
func bestCorner(area vg.Rectangle, size vg.Point, pts []vg.Point) corner {
	best := cornerOrder[0]
	bestCount := -1
	for _, k := range cornerOrder {
		frame := frameRect(area, size, k)
		n := 0
		for _, p := range pts {
			if p.X >= frame.Min.X && p.X <= frame.Max.X && p.Y >= frame.Min.Y && p.Y <= frame.Max.Y {
				n++
			}
		}
		if bestCount < 0 || n < bestCount {
			best, bestCount = k, n
		}
	}
	return best
}
