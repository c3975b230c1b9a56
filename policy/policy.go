// Package policy holds the static role policy table and the content status
// rules. Everything here is pure; the action wrapper and the services consult
// it but it never touches storage.
package policy

import "backoffice-api/models"

// Class is a category of operation with an associated minimum role.
type Class string

const (
	ClassPublic     Class = "public"
	ClassRead       Class = "read"
	ClassWrite      Class = "write"
	ClassDelete     Class = "delete"
	ClassAdmin      Class = "admin"
	ClassSuperAdmin Class = "super_admin"
)

// minimumRole maps each protected class to the least privileged role allowed
// to invoke it. ClassPublic is absent: it requires no actor at all.
var minimumRole = map[Class]models.Role{
	ClassRead:       models.RoleViewer,
	ClassWrite:      models.RoleEditor,
	ClassDelete:     models.RoleAdmin,
	ClassAdmin:      models.RoleAdmin,
	ClassSuperAdmin: models.RoleSuperAdmin,
}

// Permits reports whether role may invoke actions of the given class.
func Permits(role models.Role, class Class) bool {
	if class == ClassPublic {
		return true
	}
	min, ok := minimumRole[class]
	if !ok {
		return false
	}
	return role.AtLeast(min)
}

// EnforceStatus applies the draft rule: editors may only persist content as
// draft, whatever status they requested. Every other role passes through
// unchanged. The rule is total and side-effect free; posts, events and job
// offers all route their requested status through here before persisting.
func EnforceStatus(role models.Role, requested models.ContentStatus) models.ContentStatus {
	if role == models.RoleEditor {
		return models.StatusDraft
	}
	return requested
}
