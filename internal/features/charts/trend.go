package charts

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// Fit is a degree-1 polynomial y = Slope*x + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
}

// FitLine returns the least-squares line through the points (xs[i], ys[i]).
//
// When every x is the same value c the problem has no unique solution. The
// line returned then has intercept mean(ys)/2 and slope mean(ys)/(2c), the
// minimum-norm solution once both columns are scaled to unit length. For
// c == 0 it is the flat line at mean(ys). Either way it evaluates to mean(ys)
// at c. xs and ys must be non-empty and of equal length.
func FitLine(xs, ys []float64) Fit {
	if floats.Min(xs) == floats.Max(xs) {
		c := xs[0]
		mean := stat.Mean(ys, nil)
		if c == 0 {
			return Fit{Slope: 0, Intercept: mean}
		}
		return Fit{Slope: mean / (2 * c), Intercept: mean / 2}
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Fit{Slope: slope, Intercept: intercept}
}

// At evaluates the line at x.
func (f Fit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Sample evaluates the line at n evenly spaced points in [lo, hi].
func (f Fit) Sample(lo, hi float64, n int) plotter.XYs {
	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi
	pts := make(plotter.XYs, n)
	for i, x := range xs {
		pts[i].X = x
		pts[i].Y = f.At(x)
	}
	return pts
}
