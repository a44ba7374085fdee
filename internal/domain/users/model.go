package users

import (
	"time"

	"zoo-ops/internal/ports/auth"
)

type User struct {
	ID    string
	Name  string
	Email string
	Role  auth.Role
	Phone string

	// Doctor specialization or caretaker section, free text.
	Specialty string

	CreatedAt time.Time
	UpdatedAt time.Time
}
