package enclosures

import "math"

// OccupancyPercent is round(current/capacity*100), defined as 0 for a
// non-positive capacity and clamped at 100 for display even when the
// enclosure holds more animals than it should.
func OccupancyPercent(current, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	if current < 0 {
		current = 0
	}
	pct := int(math.Round(float64(current) / float64(capacity) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
