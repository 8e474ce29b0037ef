package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
)

func TestBestCorner(t *testing.T) {
	area := vg.Rectangle{Max: vg.Point{X: 100, Y: 100}}
	size := vg.Point{X: 20, Y: 10}

	cases := []struct {
		name string
		pts  []vg.Point
		want corner
	}{
		{"empty prefers upper right", nil, upperRight},
		{"upper right busy", []vg.Point{{X: 95, Y: 95}}, upperLeft},
		{"both upper busy", []vg.Point{{X: 95, Y: 95}, {X: 5, Y: 95}}, lowerLeft},
		{"three busy", []vg.Point{{X: 95, Y: 95}, {X: 5, Y: 95}, {X: 5, Y: 5}}, lowerRight},
		{"fewest wins", []vg.Point{
			{X: 95, Y: 95}, {X: 90, Y: 92},
			{X: 5, Y: 95}, {X: 10, Y: 92},
			{X: 5, Y: 5},
			{X: 95, Y: 5}, {X: 90, Y: 2},
		}, lowerLeft},
		{"centre ignored", []vg.Point{{X: 50, Y: 50}}, upperRight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bestCorner(area, size, tc.pts))
		})
	}
}

func TestFrameRect(t *testing.T) {
	area := vg.Rectangle{Max: vg.Point{X: 100, Y: 50}}
	size := vg.Point{X: 20, Y: 10}

	r := frameRect(area, size, lowerLeft)
	assert.Equal(t, vg.Point{X: -legendPadding, Y: -legendPadding}, r.Min)
	assert.Equal(t, vg.Point{X: 20 + legendPadding, Y: 10 + legendPadding}, r.Max)

	r = frameRect(area, size, upperRight)
	assert.Equal(t, vg.Point{X: 80 - legendPadding, Y: 40 - legendPadding}, r.Min)
	assert.Equal(t, vg.Point{X: 100 + legendPadding, Y: 50 + legendPadding}, r.Max)
}
