package evaluate

import (
	"fmt"
	"math"
)

// PointScores tracks the point forecast error metrics
type PointScores struct {
	MAPE float64 `json:"mean_absolute_percent_error"`
	RMSE float64 `json:"root_mean_squared_error"`
	MAE  float64 `json:"mean_absolute_error"`
}

// NewPointScores calculates MAPE, RMSE and MAE over matching-shape prediction
// and actual slices, rounding to digits decimals unless digits is negative.
// An actual of zero makes MAPE infinite; this is propagated, not guarded.
func NewPointScores(predicted, actual []float64, digits int) (*PointScores, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("%d predictions for %d actuals, %w", len(predicted), len(actual), ErrShapeMismatch)
	}
	if len(actual) == 0 {
		return nil, ErrNoData
	}

	var mape, sse, mae float64
	for i := 0; i < len(actual); i++ {
		diff := predicted[i] - actual[i]
		mape += math.Abs(diff / actual[i])
		sse += diff * diff
		mae += math.Abs(diff)
	}
	n := float64(len(actual))

	return &PointScores{
		MAPE: roundTo(mape/n, digits),
		RMSE: roundTo(math.Sqrt(sse/n), digits),
		MAE:  roundTo(mae/n, digits),
	}, nil
}

// BrierScore computes the mean squared error between probability predictions
// and binary or continuous actual outcomes, rounding to digits decimals
// unless digits is negative.
func BrierScore(predicted, actual []float64, digits int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("%d predictions for %d actuals, %w", len(predicted), len(actual), ErrShapeMismatch)
	}
	if len(actual) == 0 {
		return 0, ErrNoData
	}

	var sse float64
	for i := 0; i < len(actual); i++ {
		diff := predicted[i] - actual[i]
		sse += diff * diff
	}
	return roundTo(sse/float64(len(actual)), digits), nil
}
