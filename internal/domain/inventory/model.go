package inventory

import "time"

// Category of a stocked item.
// @Enum food, medicine, supplies, equipment
type Category string

const (
	CategoryFood      Category = "food"
	CategoryMedicine  Category = "medicine"
	CategorySupplies  Category = "supplies"
	CategoryEquipment Category = "equipment"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryFood, CategoryMedicine, CategorySupplies, CategoryEquipment:
		return true
	}
	return false
}

type Item struct {
	ID       string
	Name     string
	Category Category

	Quantity int // >= 0
	Unit     string

	// min < max, enforced on writes. MinThreshold 0 means "not configured";
	// stock classification then falls back to DefaultMinThreshold.
	MinThreshold int
	MaxThreshold int

	Cost     float64 // >= 0
	Supplier string

	ExpiryDate    *time.Time
	LastRestocked *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
