// Package theme derives the dashboard's daily focus from the calendar.
// Everything here is a pure function over static configuration: no I/O,
// no dependencies, deterministic, total over all inputs.
package theme

import (
	"sort"
	"time"
)

// Theme is the weekday-derived label plus the ordered metric codes relevant
// that day. Metrics is empty on weekend days, which signals "show the
// weekly reflection instead".
type Theme struct {
	Name    string
	Weekday int
	Metrics []Metric
}

var (
	byWeekday map[int][]Metric
	byCode    map[string]Metric
)

func init() {
	byWeekday = make(map[int][]Metric)
	byCode = make(map[string]Metric, len(metrics))
	for _, m := range metrics {
		byWeekday[m.Weekday] = append(byWeekday[m.Weekday], m)
		byCode[m.Code] = m
	}
	for d := range byWeekday {
		sort.Slice(byWeekday[d], func(i, j int) bool {
			return byWeekday[d][i].Order < byWeekday[d][j].Order
		})
	}
}

// weekdayOf converts time.Weekday (Sunday=0) to the 0=Monday convention.
func weekdayOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ForWeekday returns the theme for a 0=Monday weekday. Out-of-range input
// falls back to the default overview theme rather than failing.
func ForWeekday(d int) Theme {
	name, ok := themes[d]
	if !ok {
		return Theme{Name: DefaultThemeName, Weekday: d}
	}
	return Theme{Name: name, Weekday: d, Metrics: metricsForWeekday(d)}
}

// For returns the theme for the given date.
func For(t time.Time) Theme {
	return ForWeekday(weekdayOf(t))
}

func metricsForWeekday(d int) []Metric {
	src := byWeekday[d]
	out := make([]Metric, len(src))
	copy(out, src)
	return out
}

// MetricsForWeekday returns the ordered metric codes configured for a
// 0=Monday weekday. Weekends and unmapped input yield an empty sequence.
func MetricsForWeekday(d int) []string {
	src := byWeekday[d]
	codes := make([]string, 0, len(src))
	for _, m := range src {
		codes = append(codes, m.Code)
	}
	return codes
}

// MetricsFor returns the ordered metric codes for the given date.
func MetricsFor(t time.Time) []string {
	return MetricsForWeekday(weekdayOf(t))
}

// IsBigFive reports whether code belongs to the fixed set of core metrics
// shown regardless of weekday.
func IsBigFive(code string) bool {
	_, ok := bigFive[code]
	return ok
}

// Metadata returns the static configuration for a metric code.
func Metadata(code string) (Metric, bool) {
	m, ok := byCode[code]
	return m, ok
}
