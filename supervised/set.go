package supervised

import (
	"fmt"

	"github.com/probcast/go-probcast/array"
	"github.com/probcast/go-probcast/frame"
)

// Set builds a row-aligned lag and lead frame for rolling horizon forecasts
// such as intraday load updates. The lag frame holds the current value plus
// lag historical shifts named {column}_lag_{k}, and the lead frame holds lead
// future shifts named {column}_lead_{k} with the current-value column
// dropped. Both are trimmed to the rows where every shift is defined,
// removing the first lag and last lead rows. An operationalLag greater than
// zero drops that many leading lag columns, modeling a real-time publication
// delay that makes the most recent values unavailable at prediction time.
func Set(f *frame.Frame, column string, lag, lead, operationalLag int) (*frame.Frame, *frame.Frame, error) {
	if lag < 0 || lead < 0 || operationalLag < 0 {
		return nil, nil, ErrNegativeWindow
	}
	target, err := f.Column(column)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to fetch target column, %w", err)
	}
	n := f.Len()

	lagFrame := frame.New()
	if err := lagFrame.Add(column, target); err != nil {
		return nil, nil, err
	}
	for k := 1; k <= lag; k++ {
		name := fmt.Sprintf("%s_lag_%d", column, k)
		if err := lagFrame.Add(name, array.Shift(target, k)); err != nil {
			return nil, nil, err
		}
	}

	leadFrame := frame.New()
	for k := 1; k <= lead; k++ {
		name := fmt.Sprintf("%s_lead_%d", column, k)
		if err := leadFrame.Add(name, array.Shift(target, -k)); err != nil {
			return nil, nil, err
		}
	}

	if t := f.Time(); t != nil {
		if err := lagFrame.SetTimeIndex(t); err != nil {
			return nil, nil, err
		}
		if lead > 0 {
			if err := leadFrame.SetTimeIndex(t); err != nil {
				return nil, nil, err
			}
		}
	}

	start := lag
	end := n - lead
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if lagFrame, err = lagFrame.SliceRows(start, end); err != nil {
		return nil, nil, err
	}
	if lead > 0 {
		if leadFrame, err = leadFrame.SliceRows(start, end); err != nil {
			return nil, nil, err
		}
	}

	if operationalLag > 0 {
		names := lagFrame.Columns()
		if operationalLag > len(names) {
			operationalLag = len(names)
		}
		if lagFrame, err = lagFrame.Select(names[operationalLag:]...); err != nil {
			return nil, nil, err
		}
	}
	return lagFrame, leadFrame, nil
}
