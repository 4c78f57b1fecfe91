package domain

// Claims is the identity carried by an access token.
type Claims struct {
	UserID string
	Role   Role
}

// HasRole reports whether the claims hold exactly the required role.
// There is no hierarchy: admin does not satisfy petugas_keuangan.
func (c Claims) HasRole(required Role) bool {
	return c.Role == required
}
