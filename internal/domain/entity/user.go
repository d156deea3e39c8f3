package entity

import "time"

// Valid roles for User. Role is a closed set validated at the trust boundary;
// anything else in a token is rejected by the auth middleware.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// User is a system account. Viewer may read but never mutate stock-affecting
// resources; user management is admin-only.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext once persisted
	Role         string
	CreatedAt    time.Time
}
