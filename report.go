// Package probcast bundles probabilistic forecast scoring into aggregate
// reports and renders evaluation diagnostics with the Apache Echarts library.
// The heavy lifting lives in the supervised, evaluate, stats, and frame
// subpackages; this package ties their outputs together for a caller
// comparing forecast models.
package probcast

import (
	"fmt"
	"math"

	"github.com/probcast/go-probcast/evaluate"
)

// Report aggregates the scores of a quantile forecast against realized
// values. The point metrics are computed on the median quantile column.
type Report struct {
	Point        *evaluate.PointScores `json:"point"`
	CRPS         float64               `json:"crps"`
	MeanPinball  float64               `json:"mean_pinball_loss"`
	PITFallbacks int                   `json:"pit_fallbacks"`
}

// NewReport scores a quantile prediction matrix against the target, rounding
// to digits decimals unless digits is negative. The point forecast is taken
// from the 0.5 quantile column when present, otherwise from the middle
// column.
func NewReport(target []float64, quantPred [][]float64, quantiles []float64, digits int) (*Report, error) {
	crps, err := evaluate.CRPS(target, quantPred, quantiles, digits)
	if err != nil {
		return nil, fmt.Errorf("unable to compute crps, %w", err)
	}

	loss, err := evaluate.Pinball(quantPred, target, quantiles)
	if err != nil {
		return nil, fmt.Errorf("unable to compute pinball loss, %w", err)
	}
	meanPinball := 0.0
	for _, row := range loss {
		for _, v := range row {
			meanPinball += v
		}
	}
	meanPinball /= float64(len(target) * len(quantiles))

	_, fallbacks, err := evaluate.PIT(target, quantPred, quantiles)
	if err != nil {
		return nil, fmt.Errorf("unable to compute pit, %w", err)
	}

	medianIdx := len(quantiles) / 2
	for i, q := range quantiles {
		if q == 0.5 {
			medianIdx = i
			break
		}
	}
	point := make([]float64, len(target))
	for i := range quantPred {
		point[i] = quantPred[i][medianIdx]
	}
	pointScores, err := evaluate.NewPointScores(point, target, digits)
	if err != nil {
		return nil, fmt.Errorf("unable to compute point scores, %w", err)
	}

	return &Report{
		Point:        pointScores,
		CRPS:         crps,
		MeanPinball:  roundTo(meanPinball, digits),
		PITFallbacks: fallbacks,
	}, nil
}

func roundTo(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
