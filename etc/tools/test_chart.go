package main

import (
	"fmt"
	"os"
	"path/filepath"

	"trendchart/internal/features/charts"
)

// go run etc/tools/test_chart.go
// writes etc/charts/scatter_chart.png and etc/charts/line_chart.png
func main() {
	fmt.Println("Generating sample charts...")

	dir := filepath.Join("etc", "charts")
	scatterPath := filepath.Join(dir, "scatter_chart.png")
	linePath := filepath.Join(dir, "line_chart.png")

	xs := []float64{1.2, 2.0, 2.9, 4.1, 5.0, 6.2, 7.1, 8.3}
	ys := []float64{2.1, 3.9, 6.2, 7.8, 10.4, 12.1, 13.8, 16.9}
	if err := charts.RenderScatter(xs, ys, scatterPath, "Sample Scatter"); err != nil {
		fmt.Printf("Error generating scatter chart: %v\n", err)
		os.Exit(1)
	}

	measurements := []float64{10.2, 10.8, 10.1, 11.4, 11.9, 11.2, 12.6, 12.9}
	fit := charts.FitLine([]float64{0, 1, 2, 3, 4, 5, 6, 7}, measurements)
	trendline := make([]float64, len(measurements))
	for i := range trendline {
		trendline[i] = fit.At(float64(i))
	}
	if err := charts.RenderLine(measurements, trendline, linePath, "Sample Measurements"); err != nil {
		fmt.Printf("Error generating line chart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Charts generated successfully: %s, %s\n", scatterPath, linePath)
	fmt.Println("Open the files to see the result!")
}
