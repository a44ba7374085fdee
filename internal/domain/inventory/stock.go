package inventory

import "time"

// StockStatus partitions an item's quantity against its thresholds. Exactly
// one status holds for any item.
// @Enum low, normal, overstocked
type StockStatus string

const (
	StockLow         StockStatus = "low"
	StockNormal      StockStatus = "normal"
	StockOverstocked StockStatus = "overstocked"
)

// DefaultMinThreshold applies when an item has no configured minimum.
const DefaultMinThreshold = 10

// ExpirySoonWindow is how far ahead an expiry date counts as "expiring soon".
const ExpirySoonWindow = 30 * 24 * time.Hour

// Classify returns the item's stock status. The boundary is inclusive on the
// low side: quantity == minThreshold is low, not normal.
func Classify(it Item) StockStatus {
	min := it.MinThreshold
	if min <= 0 {
		min = DefaultMinThreshold
	}
	if it.Quantity <= min {
		return StockLow
	}
	if it.MaxThreshold > 0 && it.Quantity > it.MaxThreshold {
		return StockOverstocked
	}
	return StockNormal
}

func IsLowStock(it Item) bool {
	return Classify(it) == StockLow
}

// ExpiringSoon reports whether the expiry date is less than 30 days away
// (strict). Already-expired items satisfy it too; there is no separate
// "expired" state here, callers compare against now themselves if they need
// that distinction.
func ExpiringSoon(it Item, now time.Time) bool {
	if it.ExpiryDate == nil {
		return false
	}
	return it.ExpiryDate.Sub(now) < ExpirySoonWindow
}

// Expired reports a past expiry date.
func Expired(it Item, now time.Time) bool {
	return it.ExpiryDate != nil && it.ExpiryDate.Before(now)
}
