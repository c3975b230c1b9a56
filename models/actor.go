package models

type Role string

const (
	RoleViewer     Role = "viewer"
	RoleEditor     Role = "editor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var roleLevels = map[Role]int{
	RoleViewer:     1,
	RoleEditor:     2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
// Unknown roles never satisfy any requirement.
func (r Role) AtLeast(min Role) bool {
	rl, ok := roleLevels[r]
	if !ok {
		return false
	}
	ml, ok := roleLevels[min]
	if !ok {
		return false
	}
	return rl >= ml
}

// Actor is the authenticated identity attached to a request. It is resolved
// once by the auth middleware and passed explicitly into every action
// invocation; a nil *Actor means the request is anonymous.
type Actor struct {
	ID     uint `json:"id"`
	Role   Role `json:"role"`
	Active bool `json:"active"`
}
