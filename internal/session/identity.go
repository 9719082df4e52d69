package session

// Role constants used when checking authorisation boundaries.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Identity is the authenticated principal consumed by the wizard reset policy
// and route guards.
type Identity struct {
	ID   string
	Role string
}

// Elevated reports whether the identity belongs to the administrative class
// exempted from wizard state reset.
func (i Identity) Elevated() bool {
	return i.Role == RoleAdmin
}
