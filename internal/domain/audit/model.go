package audit

import (
	"encoding/json"
	"time"
)

// Action is the mutation kind recorded in the trail.
// @Enum CREATE, UPDATE, DELETE
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entry is one audit trail record. OldData/NewData are opaque snapshots of
// the entity before and after the mutation.
type Entry struct {
	ID         string
	UserID     string
	Action     Action
	Resource   string
	ResourceID string
	OldData    json.RawMessage
	NewData    json.RawMessage
	Timestamp  time.Time
	IPAddress  string
}
