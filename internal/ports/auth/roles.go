package auth

import "strings"

// Role is one of the three staff roles. There is no hierarchy: a check for
// doctor does not pass for admin unless admin is listed too, so every call
// site enumerates its role set explicitly.
// @Enum admin, doctor, caretaker
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleCaretaker Role = "caretaker"
)

// ParseRole normalizes a raw role string. Unknown values come back as ""
// so they never satisfy a role check.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleDoctor:
		return RoleDoctor
	case RoleCaretaker:
		return RoleCaretaker
	default:
		return ""
	}
}

// HasRole reports whether the claims carry one of the required roles.
// Anonymous (empty UserID) never passes, regardless of the set.
func HasRole(c Claims, roles ...Role) bool {
	if strings.TrimSpace(c.UserID) == "" {
		return false
	}
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}
