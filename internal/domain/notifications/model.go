package notifications

import "time"

// Type of a notification.
// @Enum low_inventory, medical_checkup, feeding_due, alert, health_alert, maintenance, general, system
type Type string

const (
	TypeLowInventory   Type = "low_inventory"
	TypeMedicalCheckup Type = "medical_checkup"
	TypeFeedingDue     Type = "feeding_due"
	TypeAlert          Type = "alert"
	TypeHealthAlert    Type = "health_alert"
	TypeMaintenance    Type = "maintenance"
	TypeGeneral        Type = "general"
	TypeSystem         Type = "system"
)

func ValidType(t Type) bool {
	switch t {
	case TypeLowInventory, TypeMedicalCheckup, TypeFeedingDue, TypeAlert,
		TypeHealthAlert, TypeMaintenance, TypeGeneral, TypeSystem:
		return true
	}
	return false
}

// Priority of a notification.
// @Enum low, medium, high, critical
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Notification struct {
	ID       string
	Type     Type
	Title    string
	Message  string
	Priority Priority
	Read     bool

	// Optional target user; empty means broadcast.
	UserID string
	// Optional id of the entity this is about.
	RelatedID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
