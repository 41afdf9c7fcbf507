package scheduling

import "time"

// Interval is a half-open time range [Start, End). Two intervals that only
// touch at an endpoint do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the interval has strictly positive duration.
func (iv Interval) IsValid() bool {
	return iv.Start.Before(iv.End)
}

// Overlaps reports whether the two intervals share at least one instant.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
