package auth

// Claims is the information extracted from a verified session.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}
