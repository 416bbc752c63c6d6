package evaluate

import (
	"gonum.org/v1/gonum/floats"
)

// Sharpness holds the prediction interval normalized average width per
// symmetric quantile pair, from the widest interval inward. Widths are
// percentages of the target's observed range; a zero target range makes them
// infinite, which is propagated as-is. Meaningful mostly when comparing
// several models side by side.
type Sharpness struct {
	Intervals []float64 `json:"intervals"`
	Widths    []float64 `json:"widths"`
}

// PINAW computes the normalized average width of the prediction interval
// formed by each symmetric quantile pair (j, n-1-j).
func PINAW(target []float64, pred [][]float64, quantiles []float64) (*Sharpness, error) {
	if err := checkQuantPred(target, pred, quantiles); err != nil {
		return nil, err
	}
	if err := validateQuantiles(quantiles); err != nil {
		return nil, err
	}
	if len(target) == 0 {
		return nil, ErrNoData
	}

	targetRange := floats.Max(target) - floats.Min(target)
	nq := len(quantiles)
	pairs := nq / 2

	s := &Sharpness{
		Intervals: make([]float64, pairs),
		Widths:    make([]float64, pairs),
	}
	for j := 0; j < pairs; j++ {
		width := 0.0
		for i := range target {
			width += pred[i][nq-1-j] - pred[i][j]
		}
		width /= float64(len(target))

		s.Widths[j] = 100.0 * width / targetRange
		s.Intervals[j] = quantiles[nq-1-j] - quantiles[j]
	}
	return s, nil
}
