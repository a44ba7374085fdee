package feeding

import (
	"testing"
	"time"
)

func TestFrequencyInterval(t *testing.T) {
	cases := []struct {
		freq Frequency
		want time.Duration
	}{
		{FrequencyDaily, 24 * time.Hour},
		{FrequencyTwiceDaily, 12 * time.Hour},
		{FrequencyEvery2Days, 48 * time.Hour},
		{FrequencyWeekly, 7 * 24 * time.Hour},
		{Frequency("unknown"), 24 * time.Hour}, // defaults to daily
	}
	for _, tc := range cases {
		if got := tc.freq.Interval(); got != tc.want {
			t.Errorf("%s.Interval() = %v, want %v", tc.freq, got, tc.want)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fedLongAgo := now.Add(-30 * time.Hour)
	fedRecently := now.Add(-2 * time.Hour)
	fedExactly := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		s    Schedule
		want bool
	}{
		{
			"fed past the interval",
			Schedule{IsActive: true, Frequency: FrequencyDaily, LastFed: &fedLongAgo},
			true,
		},
		{
			"fed recently",
			Schedule{IsActive: true, Frequency: FrequencyDaily, LastFed: &fedRecently},
			false,
		},
		{
			"exactly at interval is not overdue",
			Schedule{IsActive: true, Frequency: FrequencyDaily, LastFed: &fedExactly},
			false,
		},
		{
			"inactive never overdue",
			Schedule{IsActive: false, Frequency: FrequencyDaily, LastFed: &fedLongAgo},
			false,
		},
		{
			"never fed falls back to createdAt",
			Schedule{IsActive: true, Frequency: FrequencyDaily, CreatedAt: fedLongAgo},
			true,
		},
		{
			"never fed, created recently",
			Schedule{IsActive: true, Frequency: FrequencyDaily, CreatedAt: fedRecently},
			false,
		},
		{
			"twice daily tightens the window",
			Schedule{IsActive: true, Frequency: FrequencyTwiceDaily, LastFed: &fedExactly},
			true,
		},
		{
			"weekly loosens the window",
			Schedule{IsActive: true, Frequency: FrequencyWeekly, LastFed: &fedLongAgo},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOverdue(tc.s, now); got != tc.want {
				t.Errorf("IsOverdue = %v, want %v", got, tc.want)
			}
		})
	}
}
