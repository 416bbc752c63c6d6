// Package frame provides a small ordered named-column table over float64
// series with an optional time index. Columns keep their insertion order so
// positional conventions like lag offsets survive round trips.
package frame

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/probcast/go-probcast/array"
)

var (
	ErrLabelExists       = errors.New("column already exists in frame")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrMismatchedDataLen = errors.New("input data has different length than frame")
	ErrNonMonotonic      = errors.New("time index is not monotonically non-decreasing")
	ErrTimeLenMismatch   = errors.New("time index has a different length than observations")
	ErrNoTimeIndex       = errors.New("frame has no time index")
	ErrInvalidRowRange   = errors.New("invalid row range")
	ErrCannotInferFreq   = errors.New("cannot infer frequency from time index")
)

// Frame is an ordered collection of named float64 columns of equal length
// with an optional monotonically non-decreasing time index. Duplicate
// timestamps are allowed at construction and resolved by Clean.
type Frame struct {
	t     []time.Time
	names []string
	cols  map[string][]float64
	n     int
}

// New returns an empty frame. The row count is fixed by the first column
// or time index added.
func New() *Frame {
	return &Frame{
		cols: make(map[string][]float64),
		n:    -1,
	}
}

// FromColumns builds a frame from parallel name and column slices preserving
// the given column order.
func FromColumns(names []string, cols [][]float64) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d columns, %w", len(names), len(cols), ErrMismatchedDataLen)
	}
	f := New()
	for i, name := range names {
		if err := f.Add(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// SetTimeIndex attaches a time index to the frame. The index must be
// monotonically non-decreasing and match the frame length.
func (f *Frame) SetTimeIndex(t []time.Time) error {
	if f.n >= 0 && len(t) != f.n {
		return fmt.Errorf("time index has length %d, but frame has %d rows, %w", len(t), f.n, ErrTimeLenMismatch)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Before(t[i-1]) {
			return fmt.Errorf("at index %d, %w", i, ErrNonMonotonic)
		}
	}
	tSeries := make([]time.Time, len(t))
	copy(tSeries, t)
	f.t = tSeries
	if f.n < 0 {
		f.n = len(t)
	}
	return nil
}

// Time returns the time index or nil if the frame has none.
func (f *Frame) Time() []time.Time {
	return f.t
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if f.n < 0 {
		return 0
	}
	return f.n
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Column returns the values stored under name. The returned slice is the
// backing storage and must not be resized by the caller.
func (f *Frame) Column(name string) ([]float64, error) {
	col, exists := f.cols[name]
	if !exists {
		return nil, fmt.Errorf("%s, %w", name, ErrUnknownColumn)
	}
	return col, nil
}

// Add appends a new named column copying the input values.
func (f *Frame) Add(name string, vals []float64) error {
	if _, exists := f.cols[name]; exists {
		return fmt.Errorf("%s, %w", name, ErrLabelExists)
	}
	if f.n >= 0 && len(vals) != f.n {
		return fmt.Errorf("column %s has length %d, but frame has %d rows, %w", name, len(vals), f.n, ErrMismatchedDataLen)
	}

	col := make([]float64, len(vals))
	copy(col, vals)
	f.names = append(f.names, name)
	f.cols[name] = col
	if f.n < 0 {
		f.n = len(vals)
	}
	return nil
}

// Drop removes a named column.
func (f *Frame) Drop(name string) error {
	if _, exists := f.cols[name]; !exists {
		return fmt.Errorf("%s, %w", name, ErrUnknownColumn)
	}
	delete(f.cols, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
	return nil
}

// Select returns a new frame holding only the requested columns in the
// requested order. The time index is carried over.
func (f *Frame) Select(names ...string) (*Frame, error) {
	res := New()
	for _, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if err := res.Add(name, col); err != nil {
			return nil, err
		}
	}
	if f.t != nil {
		if err := res.SetTimeIndex(f.t); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// SliceRows returns a new frame holding rows [from, to) of every column and
// of the time index when present.
func (f *Frame) SliceRows(from, to int) (*Frame, error) {
	if from < 0 || to > f.Len() || from > to {
		return nil, fmt.Errorf("rows [%d, %d) of %d, %w", from, to, f.Len(), ErrInvalidRowRange)
	}
	res := New()
	for _, name := range f.names {
		if err := res.Add(name, f.cols[name][from:to]); err != nil {
			return nil, err
		}
	}
	if f.t != nil {
		if err := res.SetTimeIndex(f.t[from:to]); err != nil {
			return nil, err
		}
	}
	if res.n < 0 {
		res.n = to - from
	}
	return res, nil
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	res := New()
	for _, name := range f.names {
		// Add cannot fail on a well-formed source frame
		_ = res.Add(name, f.cols[name])
	}
	if f.t != nil {
		_ = res.SetTimeIndex(f.t)
	}
	res.n = f.n
	return res
}

// EstimateFreq infers the sampling frequency of the frame as the most common
// spacing between consecutive timestamps preferring the smallest on ties.
func (f *Frame) EstimateFreq() (time.Duration, error) {
	if len(f.t) < 2 {
		return 0, ErrCannotInferFreq
	}

	deltaCnt := make(map[time.Duration]int)
	for i := 1; i < len(f.t); i++ {
		deltaCnt[f.t[i].Sub(f.t[i-1])] += 1
	}

	var maxCnt int
	freq := time.Duration(math.MaxInt64)
	for delta, cnt := range deltaCnt {
		if cnt >= maxCnt && delta < freq {
			maxCnt = cnt
			freq = delta
		}
	}
	return freq, nil
}

// Shifted returns a copy of the named column moved by k rows. Positive k
// produces a lag column and negative k a lead column with NaN padding the
// vacated entries.
func (f *Frame) Shifted(name string, k int) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	return array.Shift(col, k), nil
}
