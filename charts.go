package probcast

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/probcast/go-probcast/evaluate"
)

// LinePACF generates an echart line chart of a partial autocorrelation curve
// with symmetric confidence bounds to eyeball which lags carry signal.
func LinePACF(pacf []float64, confBound float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Partial Autocorrelation",
			},
		),
	)

	lags := make([]int, 0, len(pacf))
	pacfData := make([]opts.LineData, 0, len(pacf))
	upperData := make([]opts.LineData, 0, len(pacf))
	lowerData := make([]opts.LineData, 0, len(pacf))
	for i, v := range pacf {
		lags = append(lags, i)
		pacfData = append(pacfData, opts.LineData{Value: v})
		upperData = append(upperData, opts.LineData{Value: confBound})
		lowerData = append(lowerData, opts.LineData{Value: -confBound})
	}

	line.SetXAxis(lags).
		AddSeries("PACF", pacfData).
		AddSeries("Upper Bound", upperData).
		AddSeries("Lower Bound", lowerData)
	return line
}

// ReliabilityChart generates an echart line chart comparing the observed
// exceedance proportions against the nominal quantile levels along with the
// bootstrap consistency bands. All values are plotted in percent.
func ReliabilityChart(rel *evaluate.Reliability) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Reliability",
			},
		),
	)

	levels := make([]string, 0, len(rel.Quantiles))
	observedData := make([]opts.LineData, 0, len(rel.Quantiles))
	targetData := make([]opts.LineData, 0, len(rel.Quantiles))
	lowerData := make([]opts.LineData, 0, len(rel.Quantiles))
	upperData := make([]opts.LineData, 0, len(rel.Quantiles))
	for i, q := range rel.Quantiles {
		levels = append(levels, fmt.Sprintf("%.0f", 100.0*q))
		observedData = append(observedData, opts.LineData{Value: 100.0 * rel.Observed[i]})
		targetData = append(targetData, opts.LineData{Value: 100.0 * q})
		lowerData = append(lowerData, opts.LineData{Value: 100.0 * rel.Lower[i]})
		upperData = append(upperData, opts.LineData{Value: 100.0 * rel.Upper[i]})
	}

	line.SetXAxis(levels).
		AddSeries("Observed", observedData).
		AddSeries("Target", targetData).
		AddSeries("Lower Band", lowerData).
		AddSeries("Upper Band", upperData)
	return line
}

// PITHistogram generates an echart bar chart of a probability integral
// transform sample binned over [0, 1]. A calibrated forecast yields a flat
// histogram.
func PITHistogram(pit []float64, bins int) *charts.Bar {
	if bins < 1 {
		bins = 20
	}

	counts := make([]int, bins)
	for _, p := range pit {
		idx := int(p * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "PIT Histogram",
			},
		),
	)

	labels := make([]string, 0, bins)
	barData := make([]opts.BarData, 0, bins)
	for i, cnt := range counts {
		labels = append(labels, fmt.Sprintf("%.2f", float64(i)/float64(bins)))
		barData = append(barData, opts.BarData{Value: cnt})
	}

	bar.SetXAxis(labels).AddSeries("PIT", barData)
	return bar
}

// PINAWChart generates an echart line chart of interval sharpness per model,
// plotting normalized average width against the nominal interval size from
// the narrowest pair outward.
func PINAWChart(sharpness map[string]*evaluate.Sharpness) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Prediction Interval Normalized Average Width",
			},
		),
	)

	var xSet bool
	for name, s := range sharpness {
		if !xSet {
			intervals := make([]string, 0, len(s.Intervals))
			for i := len(s.Intervals) - 1; i >= 0; i-- {
				intervals = append(intervals, fmt.Sprintf("%.0f", 100.0*s.Intervals[i]))
			}
			line.SetXAxis(intervals)
			xSet = true
		}

		widthData := make([]opts.LineData, 0, len(s.Widths))
		for i := len(s.Widths) - 1; i >= 0; i-- {
			widthData = append(widthData, opts.LineData{Value: s.Widths[i]})
		}
		line.AddSeries(name, widthData)
	}
	return line
}

// PlotEvaluation writes the given charts to a single html page at path.
func PlotEvaluation(path string, chs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chs...)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return page.Render(io.MultiWriter(file))
}
