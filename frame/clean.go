package frame

import (
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// CleanOptions controls how Clean repairs missing values and duplicated
// timestamps in market data feeds. Freq is the number of rows making up one
// seasonal step, e.g. 1 for hourly data or 4 for 15-minute data, and is the
// offset used when back-filling missing values.
type CleanOptions struct {
	Freq   int
	Impute bool
}

func NewDefaultCleanOptions() *CleanOptions {
	return &CleanOptions{
		Freq: 1,
	}
}

// Clean returns a copy of the frame with missing values filled and duplicated
// timestamps collapsed. Without imputation missing values are replaced by the
// value Freq rows earlier and the first of each duplicate pair is kept. With
// imputation interior NaN runs are linearly interpolated between their
// neighbors and duplicate rows are averaged. Not needed when the feed is
// already in UTC with a complete index.
func (f *Frame) Clean(opt *CleanOptions) (*Frame, error) {
	if opt == nil {
		opt = NewDefaultCleanOptions()
	}
	freq := opt.Freq
	if freq < 1 {
		freq = 1
	}

	res := f.Copy()
	for _, name := range res.names {
		col := res.cols[name]
		nanIdx := make([]int, 0)
		for i, v := range col {
			if math.IsNaN(v) {
				nanIdx = append(nanIdx, i)
			}
		}
		if len(nanIdx) == 0 {
			continue
		}
		slog.Info("missing values detected", "column", name, "indices", nanIdx)

		if !opt.Impute {
			for _, i := range nanIdx {
				if i-freq >= 0 {
					col[i] = col[i-freq]
				}
			}
			continue
		}
		imputeRuns(col, nanIdx)
	}

	if res.t == nil {
		return res, nil
	}

	dupIdx := make([]int, 0)
	for i := 1; i < len(res.t); i++ {
		if res.t[i].Equal(res.t[i-1]) {
			dupIdx = append(dupIdx, i)
		}
	}
	if len(dupIdx) == 0 {
		return res, nil
	}
	slog.Info("duplicated timestamps detected", "indices", dupIdx)

	if opt.Impute {
		// average each duplicate into the surviving row
		for _, i := range dupIdx {
			for _, name := range res.names {
				col := res.cols[name]
				col[i-1] = (col[i-1] + col[i]) / 2.0
			}
		}
	}

	dupSet := make(map[int]struct{}, len(dupIdx))
	for _, i := range dupIdx {
		dupSet[i] = struct{}{}
	}
	keep := make([]int, 0, res.Len()-len(dupIdx))
	for i := 0; i < res.Len(); i++ {
		if _, exists := dupSet[i]; exists {
			continue
		}
		keep = append(keep, i)
	}
	return res.takeRows(keep)
}

// imputeRuns linearly interpolates each contiguous NaN run between its
// non-missing neighbors. Runs touching either boundary are left as-is since
// there is no anchor to interpolate from.
func imputeRuns(col []float64, nanIdx []int) {
	for i := 0; i < len(nanIdx); {
		j := i
		for j+1 < len(nanIdx) && nanIdx[j+1] == nanIdx[j]+1 {
			j++
		}
		start, end := nanIdx[i], nanIdx[j]
		if start-1 >= 0 && end+1 < len(col) {
			span := make([]float64, end-start+3)
			floats.Span(span, col[start-1], col[end+1])
			copy(col[start:end+1], span[1:len(span)-1])
		} else {
			slog.Warn("missing run touches series boundary, left unimputed", "start", start, "end", end)
		}
		i = j + 1
	}
}

func (f *Frame) takeRows(keep []int) (*Frame, error) {
	res := New()
	for _, name := range f.names {
		src := f.cols[name]
		col := make([]float64, 0, len(keep))
		for _, i := range keep {
			col = append(col, src[i])
		}
		if err := res.Add(name, col); err != nil {
			return nil, err
		}
	}
	if f.t != nil {
		t := make([]time.Time, 0, len(keep))
		for _, i := range keep {
			t = append(t, f.t[i])
		}
		if err := res.SetTimeIndex(t); err != nil {
			return nil, err
		}
	}
	return res, nil
}
