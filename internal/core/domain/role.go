package domain

// Role is the persona category of a demo identity. The set is closed;
// adding a role means adding a constant here and a fixture for it.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// AllRoles lists every role in a stable order.
func AllRoles() []Role {
	return []Role{RoleCustomer, RolePartner, RoleDriver, RoleAdmin}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RolePartner, RoleDriver, RoleAdmin:
		return true
	}
	return false
}
