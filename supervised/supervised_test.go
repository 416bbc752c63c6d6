package supervised

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSupervised(t *testing.T) {
	testData := map[string]struct {
		y          []float64
		lookBack   int
		horizon    int
		splitPoint int
		overlap    bool
		trainX     [][]float64
		trainY     [][]float64
		testX      [][]float64
		testY      [][]float64
	}{
		"overlapping split": {
			y:          []float64{1, 2, 3, 4, 5, 6},
			lookBack:   1,
			horizon:    1,
			splitPoint: 3,
			overlap:    true,
			trainX:     [][]float64{{2, 1}, {3, 2}, {4, 3}},
			trainY:     [][]float64{{3}, {4}, {5}},
			testX:      [][]float64{{3, 2}, {4, 3}, {5, 4}},
			testY:      [][]float64{{4}, {5}, {6}},
		},
		"non-overlapping split": {
			y:          []float64{1, 2, 3, 4, 5, 6},
			lookBack:   1,
			horizon:    1,
			splitPoint: 3,
			overlap:    false,
			trainX:     [][]float64{{2, 1}, {3, 2}, {4, 3}},
			trainY:     [][]float64{{3}, {4}, {5}},
			testX:      [][]float64{{5, 4}},
			testY:      [][]float64{{6}},
		},
		"two step horizon": {
			y:          []float64{1, 2, 3, 4, 5, 6},
			lookBack:   0,
			horizon:    2,
			splitPoint: 2,
			overlap:    false,
			trainX:     [][]float64{{1}, {2}},
			trainY:     [][]float64{{2, 3}, {3, 4}},
			testX:      [][]float64{{3}, {4}},
			testY:      [][]float64{{4, 5}, {5, 6}},
		},
		"look back exceeds series": {
			y:          []float64{1, 2, 3},
			lookBack:   5,
			horizon:    1,
			splitPoint: 2,
			overlap:    false,
			trainX:     [][]float64{},
			trainY:     [][]float64{},
			testX:      [][]float64{},
			testY:      [][]float64{},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := CreateSupervised(td.y, td.lookBack, td.horizon, td.splitPoint, td.overlap)
			require.Nil(t, err)

			trainXRows, _ := s.TrainX.Shape()
			trainYRows, _ := s.TrainY.Shape()
			testXRows, _ := s.TestX.Shape()
			testYRows, _ := s.TestY.Shape()
			assert.Equal(t, trainXRows, trainYRows, "train rows")
			assert.Equal(t, testXRows, testYRows, "test rows")

			assert.Equal(t, len(td.trainX), trainXRows)
			assert.Equal(t, len(td.testX), testXRows)
			if trainXRows > 0 {
				assert.Equal(t, td.trainX, s.TrainX.ToSlice(), "trainX")
				assert.Equal(t, td.trainY, s.TrainY.ToSlice(), "trainY")
			}
			if testXRows > 0 {
				assert.Equal(t, td.testX, s.TestX.ToSlice(), "testX")
				assert.Equal(t, td.testY, s.TestY.ToSlice(), "testY")
			}
		})
	}
}

func TestCreateSupervisedOverlapRows(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	lookBack := 2
	s, err := CreateSupervised(y, lookBack, 1, 5, true)
	require.Nil(t, err)

	// the first lookBack+1 test rows must equal the trailing training rows
	trainRows, _ := s.TrainX.Shape()
	for i := 0; i <= lookBack; i++ {
		trainRow, err := s.TrainX.GetRow(trainRows - lookBack - 1 + i)
		require.Nil(t, err)
		testRow, err := s.TestX.GetRow(i)
		require.Nil(t, err)
		assert.Equal(t, trainRow, testRow, "row %d", i)
	}
}

func TestCreateSupervisedZeroHorizon(t *testing.T) {
	s, err := CreateSupervised([]float64{1, 2, 3, 4}, 1, 0, 2, false)
	require.Nil(t, err)

	trainXRows, _ := s.TrainX.Shape()
	trainYRows, trainYCols := s.TrainY.Shape()
	assert.Equal(t, trainXRows, trainYRows)
	assert.Equal(t, 0, trainYCols)
}

func TestCreateSupervisedInvalidInput(t *testing.T) {
	_, err := CreateSupervised([]float64{1, 2}, -1, 1, 1, false)
	require.ErrorIs(t, err, ErrNegativeWindow)

	_, err = CreateSupervised([]float64{1, 2}, 1, -1, 1, false)
	require.ErrorIs(t, err, ErrNegativeWindow)

	_, err = CreateSupervised([]float64{1, 2}, 1, 1, -1, false)
	require.ErrorIs(t, err, ErrNegativeSplit)
}
