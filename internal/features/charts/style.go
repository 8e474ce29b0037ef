package charts

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

const (
	canvasWidth  = 10.67 * vg.Inch
	canvasHeight = 8 * vg.Inch
	canvasDPI    = 75

	// minTrendPoints is the largest input that gets no fitted trend.
	minTrendPoints = 2
	trendSamples   = 100

	pointsLabel = "Messungen"
	trendLabel  = "Trend"
)

var (
	pointColor = color.NRGBA{R: 0x00, G: 0x66, B: 0xCC, A: 178} // alpha 0.7
	trendColor = color.NRGBA{R: 0xCC, G: 0x00, B: 0x00, A: 255}
	gridColor  = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 178}

	legendFill  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 242} // alpha 0.95
	legendFrame = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 242}
)

var (
	// pointRadius gives a marker area of about 30pt².
	pointRadius = vg.Points(2.74)
	trendWidth  = vg.Points(2)
	gridWidth   = vg.Points(0.5)
	frameWidth  = vg.Points(0.8)

	titlePadding  = vg.Points(15)
	layoutMargin  = vg.Points(8)
	legendInset   = vg.Points(8)
	legendPadding = vg.Points(4)
	legendSpacing = vg.Points(3)
)

var (
	sansRegular = font.Font{Typeface: "Liberation", Variant: "Sans"}
	sansBold    = font.Font{Typeface: "Liberation", Variant: "Sans", Weight: xfont.WeightBold}

	titleFont  = font.From(sansBold, vg.Points(13))
	labelFont  = font.From(sansBold, vg.Points(11))
	tickFont   = font.From(sansRegular, vg.Points(10))
	legendFont = font.From(sansRegular, vg.Points(10))
)
