package probcast

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/probcast/go-probcast/evaluate"
	"github.com/probcast/go-probcast/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePACF(t *testing.T) {
	pacf := []float64{1.0, 0.8, -0.2, 0.05}

	var buf bytes.Buffer
	require.NoError(t, LinePACF(pacf, stats.ConfBound(100)).Render(&buf))
	assert.Contains(t, buf.String(), "Partial Autocorrelation")
}

func TestReliabilityChart(t *testing.T) {
	quantiles := []float64{0.1, 0.5, 0.9}
	target := []float64{1, 2, 3}
	pred := [][]float64{{0, 2, 5}, {0, 3, 5}, {0, 2, 5}}

	rel, err := evaluate.ReliabilityBands(target, pred, quantiles, 50, rand.New(rand.NewPCG(3, 5)))
	require.Nil(t, err)

	var buf bytes.Buffer
	require.NoError(t, ReliabilityChart(rel).Render(&buf))
	assert.Contains(t, buf.String(), "Reliability")
}

func TestPITHistogram(t *testing.T) {
	pit := []float64{0.1, 0.1, 0.5, 0.9, 1.0}

	var buf bytes.Buffer
	require.NoError(t, PITHistogram(pit, 10).Render(&buf))
	assert.Contains(t, buf.String(), "PIT Histogram")
}

func TestPlotEvaluation(t *testing.T) {
	pacf := []float64{1.0, 0.8, -0.2}
	path := filepath.Join(t.TempDir(), "eval.html")

	require.NoError(t, PlotEvaluation(path, LinePACF(pacf, stats.ConfBound(100))))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Partial Autocorrelation")
}

func TestPINAWChart(t *testing.T) {
	quantiles := []float64{0.05, 0.25, 0.75, 0.95}
	target := []float64{0, 4}
	pred := [][]float64{{0, 1, 3, 4}, {0, 1, 3, 4}}

	s, err := evaluate.PINAW(target, pred, quantiles)
	require.Nil(t, err)

	var buf bytes.Buffer
	chart := PINAWChart(map[string]*evaluate.Sharpness{"qr": s})
	require.NoError(t, chart.Render(&buf))
	assert.Contains(t, buf.String(), "Normalized Average Width")
}
