package domain

import "fmt"

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleFinanceOfficer Role = "petugas_keuangan"
	RoleAdmin          Role = "admin"
)

// Roles lists every known role.
var Roles = []Role{RoleFinanceOfficer, RoleAdmin}

// ParseRole converts a raw label into a Role. Unknown labels are rejected.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleFinanceOfficer, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

func (r Role) String() string { return string(r) }
