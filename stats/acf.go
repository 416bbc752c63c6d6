package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrSeriesTooShort = errors.New("series has too few points for the requested lag")
	ErrZeroVariance   = errors.New("series has zero variance")
	ErrLenMismatch    = errors.New("input series have different lengths")
)

// ACF computes the autocorrelation function of y for lags 0 through maxLag.
func ACF(y []float64, maxLag int) ([]float64, error) {
	n := len(y)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil, ErrSeriesTooShort
	}

	mean := stat.Mean(y, nil)
	variance := 0.0
	for _, v := range y {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil, ErrZeroVariance
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (y[i] - mean) * (y[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf, nil
}

// PACF computes the partial autocorrelation function of y for lags 0 through
// maxLag using the Durbin-Levinson recursion. The value at lag 0 is always 1.
func PACF(y []float64, maxLag int) ([]float64, error) {
	n := len(y)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil, ErrSeriesTooShort
	}

	acf, err := ACF(y, maxLag)
	if err != nil {
		return nil, err
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}
		if den == 0 {
			pacf[k] = 0
			continue
		}

		phi[k][k] = num / den
		pacf[k] = phi[k][k]

		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}
	return pacf, nil
}

// SignificantLags returns the lags greater than startAfter whose absolute
// correlation value exceeds threshold. Lag 0 is always skipped.
func SignificantLags(values []float64, threshold float64, startAfter int) []int {
	var lags []int
	for i := 1; i < len(values); i++ {
		if i <= startAfter {
			continue
		}
		if math.Abs(values[i]) > threshold {
			lags = append(lags, i)
		}
	}
	return lags
}

// ConfBound returns the 95% confidence bound for correlation estimates of a
// series with n observations.
func ConfBound(n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	return 1.96 / math.Sqrt(float64(n))
}

// CrossCorr computes the lagged cross correlation between x and a shifted y
// for lags 0 through maxLag-1. Rows where the shifted series is undefined are
// excluded pairwise.
func CrossCorr(x, y []float64, maxLag int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLenMismatch
	}
	if maxLag > len(x) {
		maxLag = len(x)
	}

	res := make([]float64, 0, maxLag)
	for lag := 0; lag < maxLag; lag++ {
		// y shifted forward by lag overlaps x on [lag, n)
		res = append(res, stat.Correlation(x[lag:], y[:len(y)-lag], nil))
	}
	return res, nil
}
