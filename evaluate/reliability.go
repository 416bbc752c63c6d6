package evaluate

import (
	"math/rand/v2"
	"sort"
	"time"
)

// DefaultBootstraps is the number of bootstrap resamples used by
// ReliabilityBands when the caller passes a non-positive count.
const DefaultBootstraps = 100

// Reliability holds the observed exceedance proportion per quantile level
// along with bootstrap consistency bands. A calibrated forecast keeps
// Observed between Lower and Upper at every level.
type Reliability struct {
	Quantiles []float64 `json:"quantiles"`
	Observed  []float64 `json:"observed"`
	Lower     []float64 `json:"lower"`
	Upper     []float64 `json:"upper"`
}

// ReliabilityBands bootstraps uniform surrogate draws to build the 5th/95th
// percentile coverage bands per quantile level and compares them against the
// observed proportion of predictions exceeding the target. Pass an explicit
// rand source for reproducible bands; a nil rnd falls back to a time-seeded
// source.
func ReliabilityBands(target []float64, pred [][]float64, quantiles []float64, boot int, rnd *rand.Rand) (*Reliability, error) {
	if err := checkQuantPred(target, pred, quantiles); err != nil {
		return nil, err
	}
	if err := validateQuantiles(quantiles); err != nil {
		return nil, err
	}
	if len(target) == 0 {
		return nil, ErrNoData
	}
	if boot <= 0 {
		boot = DefaultBootstraps
	}
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>32))
	}

	m := len(target)
	nq := len(quantiles)

	cbands := make([][]float64, boot)
	for b := 0; b < boot; b++ {
		coverage := make([]float64, nq)
		for i := 0; i < m; i++ {
			z := rnd.Float64()
			for j, q := range quantiles {
				if z < q {
					coverage[j]++
				}
			}
		}
		for j := range coverage {
			coverage[j] /= float64(m)
		}
		cbands[b] = coverage
	}

	lowIdx := int(0.05 * float64(boot))
	highIdx := int(0.95 * float64(boot))
	if highIdx >= boot {
		highIdx = boot - 1
	}

	res := &Reliability{
		Quantiles: append([]float64(nil), quantiles...),
		Observed:  make([]float64, nq),
		Lower:     make([]float64, nq),
		Upper:     make([]float64, nq),
	}
	col := make([]float64, boot)
	for j := 0; j < nq; j++ {
		for b := 0; b < boot; b++ {
			col[b] = cbands[b][j]
		}
		sort.Float64s(col)
		res.Lower[j] = col[lowIdx]
		res.Upper[j] = col[highIdx]

		exceed := 0.0
		for i := 0; i < m; i++ {
			if pred[i][j] > target[i] {
				exceed++
			}
		}
		res.Observed[j] = exceed / float64(m)
	}
	return res, nil
}
