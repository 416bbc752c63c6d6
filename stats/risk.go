package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrNoData          = errors.New("no data")
	ErrInvalidQuantile = errors.New("quantile level must be within [0, 1]")
)

// Quantile computes the empirical quantile of data at level q using linear
// interpolation between the two nearest order statistics. The input is not
// mutated.
func Quantile(data []float64, q float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}
	if q < 0 || q > 1 {
		return 0, ErrInvalidQuantile
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower], nil
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower]), nil
}

// VaR estimates the value at risk of a sample at the quant level. Rounds to
// digits decimals unless digits is negative.
func VaR(data []float64, quant float64, digits int) (float64, error) {
	v, err := Quantile(data, quant)
	if err != nil {
		return 0, err
	}
	return roundTo(v, digits), nil
}

// CVaR estimates the conditional value at risk, the mean of all sample values
// at or below the VaR threshold. Rounds to digits decimals unless digits is
// negative.
func CVaR(data []float64, quant float64, digits int) (float64, error) {
	v, err := Quantile(data, quant)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	cnt := 0
	for _, d := range data {
		if d <= v {
			sum += d
			cnt++
		}
	}
	if cnt == 0 {
		return 0, ErrNoData
	}
	return roundTo(sum/float64(cnt), digits), nil
}

func roundTo(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
