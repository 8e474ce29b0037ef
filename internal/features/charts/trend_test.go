package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

// closedFormSlope is the textbook least-squares slope Sxy/Sxx.
func closedFormSlope(xs, ys []float64) float64 {
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))
	var sxy, sxx float64
	for i := range xs {
		sxy += (xs[i] - mx) * (ys[i] - my)
		sxx += (xs[i] - mx) * (xs[i] - mx)
	}
	return sxy / sxx
}

func TestFitLine_ExactLine(t *testing.T) {
	fit := FitLine([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	assert.InDelta(t, 2.0, fit.Slope, 1e-12)
	assert.InDelta(t, 0.0, fit.Intercept, 1e-12)
}

func TestFitLine_MatchesClosedForm(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []float64
	}{
		{"noisy", []float64{0.5, 1.7, 2.2, 3.9, 5.1, 6.3}, []float64{1.1, 2.9, 3.2, 6.8, 8.0, 11.5}},
		{"negative", []float64{-3, -1, 0, 2, 7}, []float64{9, 4, 1, -2, -12}},
		{"unsorted", []float64{10, 2, 7, 4}, []float64{3, 1, 2, 2}},
		{"repeated x", []float64{1, 1, 2, 2, 3}, []float64{1, 2, 2, 3, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fit := FitLine(tc.xs, tc.ys)
			assert.InDelta(t, closedFormSlope(tc.xs, tc.ys), fit.Slope, 1e-9)

			var mx, my float64
			for i := range tc.xs {
				mx += tc.xs[i]
				my += tc.ys[i]
			}
			n := float64(len(tc.xs))
			// the fitted line passes through the centroid
			assert.InDelta(t, my/n, fit.At(mx/n), 1e-9)
		})
	}
}

func TestFitLine_AllXEqual(t *testing.T) {
	cases := []struct {
		name             string
		xs, ys           []float64
		slope, intercept float64
	}{
		{"positive x", []float64{2, 2, 2}, []float64{1, 2, 3}, 0.5, 1},
		{"negative x", []float64{-4, -4, -4, -4}, []float64{1, 3, 5, 7}, -0.5, 2},
		{"zero x", []float64{0, 0, 0}, []float64{1, 2, 3}, 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fit := FitLine(tc.xs, tc.ys)
			assert.InDelta(t, tc.slope, fit.Slope, 1e-12)
			assert.InDelta(t, tc.intercept, fit.Intercept, 1e-12)
			assert.InDelta(t, stat.Mean(tc.ys, nil), fit.At(tc.xs[0]), 1e-12)
		})
	}
}

func TestFit_Sample(t *testing.T) {
	pts := Fit{Slope: 2, Intercept: 1}.Sample(-1, 3, trendSamples)

	assert.Len(t, pts, 100)
	assert.Equal(t, -1.0, pts[0].X)
	assert.Equal(t, 3.0, pts[len(pts)-1].X)
	assert.InDelta(t, -1.0, pts[0].Y, 1e-12)
	assert.InDelta(t, 7.0, pts[len(pts)-1].Y, 1e-12)
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, 4.0/99, pts[i].X-pts[i-1].X, 1e-12)
	}
}

func TestFit_SampleDegenerateRange(t *testing.T) {
	pts := Fit{Slope: 1, Intercept: 0}.Sample(5, 5, trendSamples)
	for _, p := range pts {
		assert.Equal(t, 5.0, p.X)
		assert.Equal(t, 5.0, p.Y)
	}
}
