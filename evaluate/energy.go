package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// EnergyScore scores scenario trajectories against the realized trajectory.
// The series is cut into non-overlapping blocks of step consecutive time
// points and each block scores the mean Euclidean distance between scenario
// and realization minus a pairwise scenario-dispersion correction divided by
// 2*nScenarios^2. Block scores are averaged; trailing samples short of a full
// block are discarded. Scenarios has one row per time point and one column
// per scenario.
func EnergyScore(target []float64, scenarios [][]float64, step int) (float64, error) {
	if step <= 0 {
		return 0, ErrInvalidStep
	}
	if len(scenarios) != len(target) {
		return 0, fmt.Errorf("%d scenario rows for %d actuals, %w", len(scenarios), len(target), ErrShapeMismatch)
	}
	if len(target) == 0 {
		return 0, ErrNoData
	}
	nScen := len(scenarios[0])
	for i, row := range scenarios {
		if len(row) != nScen {
			return 0, fmt.Errorf("scenario row %d has %d columns, expected %d, %w", i, len(row), nScen, ErrShapeMismatch)
		}
	}
	if nScen == 0 {
		return 0, ErrNoData
	}

	var blockScores []float64
	for i := step; i < len(target); i += step {
		dist := 0.0
		for j := 0; j < nScen; j++ {
			sq := 0.0
			for t := i - step; t < i; t++ {
				d := scenarios[t][j] - target[t]
				sq += d * d
			}
			dist += math.Sqrt(sq)
		}
		dist /= float64(nScen)

		corr := 0.0
		for j := 0; j < nScen; j++ {
			for k := 0; k < nScen; k++ {
				sq := 0.0
				for t := i - step; t < i; t++ {
					d := scenarios[t][j] - scenarios[t][k]
					sq += d * d
				}
				corr += math.Sqrt(sq)
			}
		}
		corr /= 2.0 * float64(nScen) * float64(nScen)

		blockScores = append(blockScores, dist-corr)
	}
	if len(blockScores) == 0 {
		return 0, ErrSeriesTooShort
	}
	return stat.Mean(blockScores, nil), nil
}
