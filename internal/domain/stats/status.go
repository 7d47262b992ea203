// Package stats computes attendance percentages and daily breakdowns from
// cleaned attendance events. Every function is pure: callers pass the
// snapshot they loaded for the current request.
package stats

// Status buckets an attendance percentage.
type Status string

const (
	Excellent Status = "excellent"
	Regular   Status = "regular"
	Low       Status = "low"
)

// Thresholds: above 85 is excellent, 65 up to and including 85 is regular.
const (
	excellentAbove = 85.0
	regularFrom    = 65.0
)

// StatusOf classifies a percentage.
func StatusOf(pct float64) Status {
	switch {
	case pct > excellentAbove:
		return Excellent
	case pct >= regularFrom:
		return Regular
	default:
		return Low
	}
}

// Emoji is the traffic-light marker shown next to a percentage.
func (s Status) Emoji() string {
	switch s {
	case Excellent:
		return "🟢"
	case Regular:
		return "🟡"
	default:
		return "🔴"
	}
}

// percent returns n/d as a percentage, 0 when d is 0.
func percent(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}
