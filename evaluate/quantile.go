package evaluate

import (
	"math"
)

// Pinball computes the pinball loss of quantile predictions against the
// target, the elementwise max of the two linear penalties weighted by the
// quantile level and its complement. The result has one row per observation
// and one column per quantile level.
func Pinball(pred [][]float64, target []float64, quantiles []float64) ([][]float64, error) {
	if err := checkQuantPred(target, pred, quantiles); err != nil {
		return nil, err
	}
	if err := validateQuantiles(quantiles); err != nil {
		return nil, err
	}

	loss := make([][]float64, len(target))
	for i := range target {
		loss[i] = make([]float64, len(quantiles))
		for j, q := range quantiles {
			under := (target[i] - pred[i][j]) * q
			over := (pred[i][j] - target[i]) * (1 - q)
			loss[i][j] = math.Max(under, over)
		}
	}
	return loss, nil
}

// CRPS approximates the continuous ranked probability score by trapezoidal
// integration over the quantile predictions of the squared deviation between
// the exceedance indicator and the uniform conditional probabilities
// p_i = i/(n-1), averaged across observations. The discrete approximation is
// carried over verbatim from its reference formulation and has not been
// re-derived; treat it as provisional. Rounds to digits decimals unless
// digits is negative.
func CRPS(target []float64, quantPred [][]float64, quantiles []float64, digits int) (float64, error) {
	if err := checkQuantPred(target, quantPred, quantiles); err != nil {
		return 0, err
	}
	if err := validateQuantiles(quantiles); err != nil {
		return 0, err
	}
	n := len(quantiles)
	if n < 2 {
		return 0, ErrTooFewQuantiles
	}
	if len(target) == 0 {
		return 0, ErrNoData
	}

	total := 0.0
	for i := range target {
		row := quantPred[i]
		area := 0.0
		for j := 0; j+1 < n; j++ {
			f0 := heavisideDev(row[j], target[i], j, n)
			f1 := heavisideDev(row[j+1], target[i], j+1, n)
			area += (row[j+1] - row[j]) * (f0 + f1) / 2.0
		}
		total += area
	}
	return roundTo(total/float64(len(target)), digits), nil
}

func heavisideDev(pred, target float64, idx, n int) float64 {
	h := 0.0
	if pred > target {
		h = 1.0
	}
	dev := h - float64(idx)/float64(n-1)
	return dev * dev
}

// PIT evaluates the probability integral transform: for each observation the
// smallest quantile level whose prediction reaches the actual value, or 1.0
// when even the highest quantile prediction falls short. The returned
// fallback count tracks how often that happened since a large count biases
// the calibration histogram upward.
func PIT(target []float64, quantPred [][]float64, quantiles []float64) ([]float64, int, error) {
	if err := checkQuantPred(target, quantPred, quantiles); err != nil {
		return nil, 0, err
	}
	if err := validateQuantiles(quantiles); err != nil {
		return nil, 0, err
	}

	pit := make([]float64, len(target))
	fallbacks := 0
	for i := range target {
		pit[i] = 1.0
		found := false
		for j, qp := range quantPred[i] {
			if qp >= target[i] {
				pit[i] = quantiles[j]
				found = true
				break
			}
		}
		if !found {
			fallbacks++
		}
	}
	return pit, fallbacks, nil
}
