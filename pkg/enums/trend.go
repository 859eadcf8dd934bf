package enums

import "fmt"

// TrendDirection classifies category momentum between two adjacent windows.
type TrendDirection string

const (
	TrendDirectionUp     TrendDirection = "up"
	TrendDirectionDown   TrendDirection = "down"
	TrendDirectionStable TrendDirection = "stable"
)

// String implements fmt.Stringer.
func (d TrendDirection) String() string {
	return string(d)
}

// InsightPeriod names the comparison windows for revenue insights.
type InsightPeriod string

const (
	InsightPeriodWeekly    InsightPeriod = "weekly"
	InsightPeriodMonthly   InsightPeriod = "monthly"
	InsightPeriodQuarterly InsightPeriod = "quarterly"
)

var validInsightPeriods = []InsightPeriod{
	InsightPeriodWeekly,
	InsightPeriodMonthly,
	InsightPeriodQuarterly,
}

// String implements fmt.Stringer.
func (p InsightPeriod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known InsightPeriod.
func (p InsightPeriod) IsValid() bool {
	for _, candidate := range validInsightPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// Days returns the number of days the period spans.
func (p InsightPeriod) Days() int {
	switch p {
	case InsightPeriodWeekly:
		return 7
	case InsightPeriodMonthly:
		return 30
	case InsightPeriodQuarterly:
		return 90
	default:
		return 0
	}
}

// ParseInsightPeriod converts raw input into an InsightPeriod.
func ParseInsightPeriod(value string) (InsightPeriod, error) {
	for _, candidate := range validInsightPeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid insight period %q", value)
}
