// Package supervised turns time series into aligned lag/lead learning sets
// for short-term load and price forecasting models.
package supervised

import (
	"errors"
	"fmt"

	"github.com/probcast/go-probcast/array"
)

var (
	ErrNegativeWindow = errors.New("look back and horizon must be non-negative")
	ErrNegativeSplit  = errors.New("split point must be non-negative")
)

// Split holds the aligned train/test lag and lead matrices. Row i of an X
// matrix carries [x_t, x_t-1, ..., x_t-lookBack] and the matching Y row
// carries [x_t+1, ..., x_t+horizon] for the same reference time t. Within
// each half the X and Y row counts always match and no row contains NaN.
type Split struct {
	TrainX *array.Array
	TrainY *array.Array
	TestX  *array.Array
	TestY  *array.Array
}

// CreateSupervised builds a supervised learning set from a single series
// split at splitPoint. With overlap the test half starts at
// splitPoint-lookBack-1 so the trailing lookBack+1 training rows reappear at
// the head of the test half, which simplifies rolling-window reconstruction.
// Without overlap the test half starts exactly at splitPoint, shifting the
// effective temporal split lookBack periods later. Rows losing values to
// shifting are dropped whole. If lookBack or horizon exceeds the series
// length the resulting matrices are empty and the caller must handle that.
func CreateSupervised(y []float64, lookBack, horizon, splitPoint int, overlap bool) (*Split, error) {
	if lookBack < 0 || horizon < 0 {
		return nil, ErrNegativeWindow
	}
	if splitPoint < 0 {
		return nil, ErrNegativeSplit
	}

	x := array.New1D(y)
	for i := 1; i <= lookBack; i++ {
		var err error
		x, err = array.Extend(x, array.New1D(array.Shift(y, i)))
		if err != nil {
			return nil, fmt.Errorf("unable to stack lag column %d, %w", i, err)
		}
	}
	x = x.DropNaNRows()

	yMat, err := leadMatrix(x, horizon)
	if err != nil {
		return nil, err
	}

	// truncate the lag matrix to the lead matrix's surviving rows
	yRows, _ := yMat.Shape()
	x, err = x.HeadRows(yRows)
	if err != nil {
		return nil, fmt.Errorf("unable to align lag matrix, %w", err)
	}

	m, _ := x.Shape()
	trainEnd := splitPoint
	if trainEnd > m {
		trainEnd = m
	}
	testStart := splitPoint
	if overlap {
		testStart = splitPoint - lookBack - 1
	}
	if testStart < 0 {
		testStart = 0
	}
	if testStart > m {
		testStart = m
	}

	s := &Split{}
	if s.TrainX, err = x.SliceRows(0, trainEnd); err != nil {
		return nil, err
	}
	if s.TrainY, err = yMat.SliceRows(0, trainEnd); err != nil {
		return nil, err
	}
	if s.TestX, err = x.SliceRows(testStart, m); err != nil {
		return nil, err
	}
	if s.TestY, err = yMat.SliceRows(testStart, m); err != nil {
		return nil, err
	}
	return s, nil
}

// leadMatrix stacks the strictly future offsets 1..horizon of the lag
// matrix's reference column and drops the trailing rows losing values to the
// shift.
func leadMatrix(x *array.Array, horizon int) (*array.Array, error) {
	rows, _ := x.Shape()
	if horizon == 0 {
		return array.Zeros(rows, 0)
	}

	ref, err := x.GetCol(0)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch reference column, %w", err)
	}

	y := array.New1D(array.Shift(ref, -1))
	for i := 2; i <= horizon; i++ {
		y, err = array.Extend(y, array.New1D(array.Shift(ref, -i)))
		if err != nil {
			return nil, fmt.Errorf("unable to stack lead column %d, %w", i, err)
		}
	}
	return y.DropNaNRows(), nil
}
