package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSeriesEqual compares float slices treating NaN entries as equal
func assertSeriesEqual(t *testing.T, expected, actual []float64) {
	t.Helper()
	require.Equal(t, len(expected), len(actual), "length")
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "expected NaN at %d, got %f", i, actual[i])
			continue
		}
		assert.Equal(t, expected[i], actual[i], "at %d", i)
	}
}

func TestNew1D(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		arr []float64
		m   int
	}{
		"nil input": {
			nil,
			[]float64{},
			0,
		},
		"multiple elements": {
			[]float64{1, 2, 3},
			[]float64{1, 2, 3},
			3,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			arr := New1D(td.x)
			assert.Equal(t, td.arr, arr.arr, "array")
			assert.Equal(t, td.m, arr.m, "m")
			assert.Equal(t, 1, arr.n, "n")
		})
	}
}

func TestNew2D(t *testing.T) {
	testData := map[string]struct {
		x   [][]float64
		err error
		arr []float64
		m   int
		n   int
	}{
		"empty input": {
			[][]float64{},
			nil,
			[]float64{},
			0, 0,
		},
		"multiple rows and cols": {
			[][]float64{{1, 2, 3}, {4, 5, 6}},
			nil,
			[]float64{1, 4, 2, 5, 3, 6},
			2, 3,
		},
		"inconsistent cols": {
			[][]float64{{1, 2, 3}, {4, 5}},
			ErrColMismatch,
			nil,
			0, 0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			arr, err := New2D(td.x)
			if td.err != nil {
				require.ErrorAs(t, err, &td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.arr, arr.arr, "array")
			assert.Equal(t, td.m, arr.m, "m")
			assert.Equal(t, td.n, arr.n, "n")
		})
	}
}

func TestShift(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		x        []float64
		k        int
		expected []float64
	}{
		"no shift": {
			[]float64{1, 2, 3},
			0,
			[]float64{1, 2, 3},
		},
		"lag by one": {
			[]float64{1, 2, 3, 4},
			1,
			[]float64{nan, 1, 2, 3},
		},
		"lead by two": {
			[]float64{1, 2, 3, 4},
			-2,
			[]float64{3, 4, nan, nan},
		},
		"shift beyond length": {
			[]float64{1, 2},
			3,
			[]float64{nan, nan},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assertSeriesEqual(t, td.expected, Shift(td.x, td.k))
		})
	}
}

func TestDropNaNRows(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		x        [][]float64
		expected [][]float64
	}{
		"no nans": {
			[][]float64{{1, 2}, {3, 4}},
			[][]float64{{1, 2}, {3, 4}},
		},
		"leading nan row": {
			[][]float64{{1, nan}, {2, 1}, {3, 2}},
			[][]float64{{2, 1}, {3, 2}},
		},
		"interior and trailing nans": {
			[][]float64{{1, 2}, {nan, 3}, {4, 5}, {6, nan}},
			[][]float64{{1, 2}, {4, 5}},
		},
		"all rows dropped": {
			[][]float64{{nan, 1}, {2, nan}},
			[][]float64{},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			arr, err := New2D(td.x)
			require.Nil(t, err)

			res := arr.DropNaNRows()
			m, n := res.Shape()
			assert.Equal(t, len(td.expected), m, "rows")
			if len(td.expected) > 0 {
				assert.Equal(t, len(td.expected[0]), n, "cols")
				assert.Equal(t, td.expected, res.ToSlice())
			}
		})
	}
}

func TestSliceRows(t *testing.T) {
	testData := map[string]struct {
		x        [][]float64
		from, to int
		err      error
		expected [][]float64
	}{
		"full range": {
			[][]float64{{1, 2}, {3, 4}, {5, 6}},
			0, 3,
			nil,
			[][]float64{{1, 2}, {3, 4}, {5, 6}},
		},
		"interior range": {
			[][]float64{{1, 2}, {3, 4}, {5, 6}},
			1, 2,
			nil,
			[][]float64{{3, 4}},
		},
		"empty range": {
			[][]float64{{1, 2}, {3, 4}},
			1, 1,
			nil,
			[][]float64{},
		},
		"negative start": {
			[][]float64{{1, 2}},
			-1, 1,
			ErrInvalidRowRange,
			nil,
		},
		"end beyond rows": {
			[][]float64{{1, 2}},
			0, 2,
			ErrInvalidRowRange,
			nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			arr, err := New2D(td.x)
			require.Nil(t, err)

			res, err := arr.SliceRows(td.from, td.to)
			if td.err != nil {
				require.ErrorAs(t, err, &td.err)
				return
			}
			require.Nil(t, err)
			m, _ := res.Shape()
			assert.Equal(t, len(td.expected), m, "rows")
			if len(td.expected) > 0 {
				assert.Equal(t, td.expected, res.ToSlice())
			}
		})
	}
}

func TestHeadRows(t *testing.T) {
	arr, err := New2D([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Nil(t, err)

	res, err := arr.HeadRows(2)
	require.Nil(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, res.ToSlice())

	res, err = arr.HeadRows(5)
	require.Nil(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, res.ToSlice())

	_, err = arr.HeadRows(-1)
	require.ErrorIs(t, err, ErrNegativeDim)
}

func TestExtend(t *testing.T) {
	testData := map[string]struct {
		a        [][]float64
		b        [][]float64
		err      error
		expected [][]float64
	}{
		"two single columns": {
			[][]float64{{1}, {2}},
			[][]float64{{3}, {4}},
			nil,
			[][]float64{{1, 3}, {2, 4}},
		},
		"row mismatch": {
			[][]float64{{1}, {2}},
			[][]float64{{3}},
			ErrRowMismatch,
			nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			a, err := New2D(td.a)
			require.Nil(t, err)
			b, err := New2D(td.b)
			require.Nil(t, err)

			res, err := Extend(a, b)
			if td.err != nil {
				require.ErrorAs(t, err, &td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, res.ToSlice())
		})
	}
}
