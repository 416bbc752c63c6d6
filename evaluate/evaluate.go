// Package evaluate provides pure scoring functions for point and
// probabilistic forecasts. Every function checks that prediction and actual
// shapes match and fails fast otherwise. None of them mutate their inputs or
// keep state between calls.
package evaluate

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrShapeMismatch    = errors.New("prediction and actual shapes do not match")
	ErrNoData           = errors.New("no data")
	ErrInvalidQuantiles = errors.New("quantile levels must be strictly increasing within (0, 1)")
	ErrTooFewQuantiles  = errors.New("need at least 2 quantile levels")
	ErrInvalidStep      = errors.New("step must be positive")
	ErrSeriesTooShort   = errors.New("series is shorter than one full trajectory block")
)

// checkQuantPred validates that pred has one row per target observation and
// one column per quantile level.
func checkQuantPred(target []float64, pred [][]float64, quantiles []float64) error {
	if len(pred) != len(target) {
		return fmt.Errorf("%d prediction rows for %d actuals, %w", len(pred), len(target), ErrShapeMismatch)
	}
	for i, row := range pred {
		if len(row) != len(quantiles) {
			return fmt.Errorf("row %d has %d quantile predictions for %d levels, %w",
				i, len(row), len(quantiles), ErrShapeMismatch)
		}
	}
	return nil
}

func validateQuantiles(quantiles []float64) error {
	for i, q := range quantiles {
		if q <= 0 || q >= 1 {
			return fmt.Errorf("level %f at %d, %w", q, i, ErrInvalidQuantiles)
		}
		if i > 0 && q <= quantiles[i-1] {
			return fmt.Errorf("level %f at %d not increasing, %w", q, i, ErrInvalidQuantiles)
		}
	}
	return nil
}

// roundTo rounds to digits decimals. A negative digits leaves v untouched.
func roundTo(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
