package feeding

import "time"

// Frequency is how often a schedule fires.
// @Enum daily, twice_daily, every_2_days, weekly
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyTwiceDaily Frequency = "twice_daily"
	FrequencyEvery2Days Frequency = "every_2_days"
	FrequencyWeekly     Frequency = "weekly"
)

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyTwiceDaily, FrequencyEvery2Days, FrequencyWeekly:
		return true
	}
	return false
}

// Interval is the elapsed time after which a feeding is due again.
func (f Frequency) Interval() time.Duration {
	switch f {
	case FrequencyTwiceDaily:
		return 12 * time.Hour
	case FrequencyEvery2Days:
		return 48 * time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

type Schedule struct {
	ID       string
	AnimalID string
	ItemID   string // inventory item reference
	FoodType string

	Quantity  float64
	Unit      string
	Frequency Frequency
	Time      string // HH:MM, the preferred feeding time of day

	CaretakerID string
	LastFed     *time.Time
	IsActive    bool
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
