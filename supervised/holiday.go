package supervised

import (
	"fmt"
	"strings"
	"time"

	"github.com/probcast/go-probcast/frame"
	"github.com/rickar/cal/v2"
)

// HolidayPredictors appends one binary indicator column per holiday marking
// the observed day in the frame's time index. Day-ahead load and price models
// use these alongside lagged predictors since demand patterns break on
// holidays. The frame is updated in place and the new column names returned.
func HolidayPredictors(f *frame.Frame, hols []*cal.Holiday) ([]string, error) {
	t := f.Time()
	if t == nil {
		return nil, frame.ErrNoTimeIndex
	}
	if len(t) == 0 {
		return nil, nil
	}
	loc := t[0].Location()

	names := make([]string, 0, len(hols))
	for _, hol := range hols {
		col := make([]float64, len(t))
		for year := t[0].Year(); year <= t[len(t)-1].Year(); year++ {
			_, observed := hol.Calc(year)
			dayStart := time.Date(observed.Year(), observed.Month(), observed.Day(), 0, 0, 0, 0, loc)
			dayEnd := dayStart.Add(24 * time.Hour)
			for i, ti := range t {
				if !ti.Before(dayStart) && ti.Before(dayEnd) {
					col[i] = 1.0
				}
			}
		}

		name := strings.ReplaceAll(strings.ToLower(hol.Name), " ", "_")
		if err := f.Add(name, col); err != nil {
			return nil, fmt.Errorf("unable to add holiday column %s, %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}
