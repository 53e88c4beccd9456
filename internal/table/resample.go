package table

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Freq is a resampling period
type Freq int

// Resampling periods
const (
	Daily Freq = iota
	Monthly
)

// dateLayouts are tried in order when parsing date columns
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// ParseDate parses the date formats found in the datasets
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// Dates parses a column of dates
func (t *Table) Dates(col string) ([]time.Time, error) {
	raw, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(raw))
	for i, r := range raw {
		d, err := ParseDate(r)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, col, err)
		}
		out[i] = d
	}
	return out, nil
}

// TimePoint is one resampled period. Time is the start of the period.
type TimePoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

func truncate(d time.Time, freq Freq) time.Time {
	y, m, day := d.Date()
	if freq == Monthly {
		day = 1
	}
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Resample buckets valueCol by the period of dateCol and reduces each bucket.
// Periods without rows are skipped. Points are in time order.
func (t *Table) Resample(dateCol, valueCol string, freq Freq, agg AggFunc) ([]TimePoint, error) {
	dates, err := t.Dates(dateCol)
	if err != nil {
		return nil, err
	}
	vals, err := t.Col(valueCol)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time][]float64)
	for i, d := range dates {
		k := truncate(d, freq)
		buckets[k] = append(buckets[k], vals[i])
	}

	out := make([]TimePoint, 0, len(buckets))
	for k, vs := range buckets {
		v, err := agg.Apply(vs)
		if err != nil {
			return nil, err
		}
		out = append(out, TimePoint{Time: k, Value: v})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Time.Before(out[b].Time) })
	return out, nil
}
