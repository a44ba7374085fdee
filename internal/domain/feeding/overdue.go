package feeding

import "time"

// IsOverdue reports whether the schedule's next expected feeding has passed:
// more time than the frequency interval elapsed since lastFed, or since
// creation when the schedule has never been fed. Inactive schedules are
// never overdue. The server is the single source of truth for this flag;
// it is computed on every read and never stored.
func IsOverdue(s Schedule, now time.Time) bool {
	if !s.IsActive {
		return false
	}
	ref := s.CreatedAt
	if s.LastFed != nil {
		ref = *s.LastFed
	}
	return now.Sub(ref) > s.Frequency.Interval()
}
