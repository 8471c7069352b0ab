package model

// TimeWindow is a half-open interval [Start, End) in minutes since midnight
// on a given calendar date.
type TimeWindow struct {
	Date  string
	Start int
	End   int
}

// Overlaps reports whether two windows intersect under the half-open rule:
// intervals that merely touch at a boundary do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return !(other.End <= w.Start || other.Start >= w.End)
}
