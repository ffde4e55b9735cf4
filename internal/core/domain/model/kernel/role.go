package kernel

import (
	"fmt"
	"strings"

	"livehaul/internal/pkg/errs"
)

// Role is the marketplace role an actor acts under. Authentication happens
// upstream; requests arrive already carrying an actor id and role.
type Role string

const (
	RoleShipper Role = "shipper"
	RoleCarrier Role = "carrier"
	RoleDriver  Role = "driver"
	RoleAdmin   Role = "admin"
)

// RoleFromString normalizes and validates a role string.
func RoleFromString(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the role against the known values.
func (r Role) Validate() error {
	switch r {
	case RoleShipper, RoleCarrier, RoleDriver, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// IsAdmin reports whether the role carries marketplace-operator privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
