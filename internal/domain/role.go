package domain

import "fmt"

// Role determines which routes a verified identity may invoke. There is no
// hierarchy between roles; route access is flat set membership.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) String() string { return string(r) }

// ParseRole maps a stored or transmitted role string onto the enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
