package domain

import "fmt"

// Role identifies which of the three account classes an identity belongs to.
// Exactly one role is assigned per identity and it never changes afterwards.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOffice      Role = "office"
	RoleStakeholder Role = "stakeholder"
)

// ParseRole converts a raw metadata value into a Role. Values outside the
// closed set are rejected; callers must never fall back to a default role.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleOffice, RoleStakeholder:
		return Role(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, value)
	}
}

// Provisionable reports whether accounts of this role are created through the
// provisioning saga. The admin role is configuration-backed and has neither an
// identity nor a profile row.
func (r Role) Provisionable() bool {
	return r == RoleOffice || r == RoleStakeholder
}

// LandingPath returns the dashboard path users of this role are sent to after
// a successful login.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleOffice:
		return "/office/dashboard"
	case RoleStakeholder:
		return "/stakeholder/dashboard"
	default:
		return "/auth/login"
	}
}
