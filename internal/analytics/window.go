package analytics

import "time"

// MetricWindow is a [Start, End) aggregation range always ending at "now".
type MetricWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}

// NewMetricWindow builds the window ending at now spanning days days.
// Callers are expected to have validated days > 0.
func NewMetricWindow(now time.Time, days int) MetricWindow {
	return MetricWindow{
		Start: now.AddDate(0, 0, -days),
		End:   now,
		Days:  days,
	}
}

// Previous returns the immediately preceding equal-length window, used for
// growth-rate comparisons.
func (w MetricWindow) Previous() MetricWindow {
	return MetricWindow{
		Start: w.Start.AddDate(0, 0, -w.Days),
		End:   w.Start,
		Days:  w.Days,
	}
}
