package supervised

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/probcast/go-probcast/array"
	"github.com/probcast/go-probcast/frame"
	"github.com/probcast/go-probcast/stats"
)

// Options controls partial-autocorrelation driven lag selection. Freq is the
// number of observations per hour, e.g. 1 for hourly data and 4 for 15-minute
// data. DayAhead models batch day-ahead auction forecasting where no same-day
// observation is usable, pushing the first admissible lag out one full day.
type Options struct {
	Freq           float64
	MaxLag         int
	OperationalLag int
	Threshold      float64
	DayAhead       bool
}

func NewDefaultOptions() *Options {
	return &Options{
		Freq:      1,
		MaxLag:    200,
		Threshold: 0.05,
		DayAhead:  true,
	}
}

// StartingPoint returns the first lag index past which selected lags are
// admissible. In day-ahead mode no lag on the same delivery day is usable.
func (o *Options) StartingPoint() int {
	if o.DayAhead {
		return int(math.Ceil(24*o.Freq)) - 1 + o.OperationalLag
	}
	return o.OperationalLag
}

// LaggedPredictors computes the partial autocorrelation function of the named
// column, selects the admissible lags whose absolute PACF value exceeds the
// threshold, and appends one shifted predictor column per selected lag named
// {column}_{lag}. The frame is updated in place. Returns the new column names
// and the PACF curve so callers can render diagnostics.
func LaggedPredictors(f *frame.Frame, column string, opt *Options) ([]string, []float64, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	target, err := f.Column(column)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to fetch target column, %w", err)
	}

	pacf, err := stats.PACF(target, opt.MaxLag)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to compute pacf, %w", err)
	}

	lags := stats.SignificantLags(pacf, opt.Threshold, opt.StartingPoint())
	slog.Info("selected lags", "column", column, "lags", lags)

	names := make([]string, 0, len(lags))
	for _, lag := range lags {
		name := fmt.Sprintf("%s_%d", column, lag)
		if err := f.Add(name, array.Shift(target, lag)); err != nil {
			return nil, nil, fmt.Errorf("unable to add lag column %s, %w", name, err)
		}
		names = append(names, name)
	}
	return names, pacf, nil
}
