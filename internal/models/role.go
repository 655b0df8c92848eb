package models

import "fmt"

// Role is the closed set of roles a user can hold. Policy code compares
// against these constants only; the raw string form exists solely at the
// persistence and wire boundaries.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a wire/storage string into a Role. An empty string
// defaults to RoleUser, matching registration defaults.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
