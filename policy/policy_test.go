package policy

import (
	"testing"

	"backoffice-api/models"

	"github.com/stretchr/testify/assert"
)

func TestPermitsMatrix(t *testing.T) {
	cases := []struct {
		role    models.Role
		class   Class
		allowed bool
	}{
		{models.RoleViewer, ClassRead, true},
		{models.RoleViewer, ClassWrite, false},
		{models.RoleViewer, ClassDelete, false},
		{models.RoleViewer, ClassAdmin, false},
		{models.RoleViewer, ClassSuperAdmin, false},

		{models.RoleEditor, ClassRead, true},
		{models.RoleEditor, ClassWrite, true},
		{models.RoleEditor, ClassDelete, false},
		{models.RoleEditor, ClassAdmin, false},
		{models.RoleEditor, ClassSuperAdmin, false},

		{models.RoleAdmin, ClassRead, true},
		{models.RoleAdmin, ClassWrite, true},
		{models.RoleAdmin, ClassDelete, true},
		{models.RoleAdmin, ClassAdmin, true},
		{models.RoleAdmin, ClassSuperAdmin, false},

		{models.RoleSuperAdmin, ClassRead, true},
		{models.RoleSuperAdmin, ClassWrite, true},
		{models.RoleSuperAdmin, ClassDelete, true},
		{models.RoleSuperAdmin, ClassAdmin, true},
		{models.RoleSuperAdmin, ClassSuperAdmin, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, Permits(tc.role, tc.class),
			"role=%s class=%s", tc.role, tc.class)
	}
}

func TestPermitsPublic(t *testing.T) {
	for _, role := range []models.Role{models.RoleViewer, models.RoleEditor, models.RoleAdmin, models.RoleSuperAdmin, models.Role("")} {
		assert.True(t, Permits(role, ClassPublic))
	}
}

func TestPermitsUnknownRole(t *testing.T) {
	assert.False(t, Permits(models.Role("owner"), ClassRead))
	assert.False(t, Permits(models.Role(""), ClassWrite))
}

func TestEnforceStatusEditorAlwaysDraft(t *testing.T) {
	for _, requested := range []models.ContentStatus{models.StatusDraft, models.StatusPublished, models.StatusArchived} {
		got := EnforceStatus(models.RoleEditor, requested)
		assert.Equal(t, models.StatusDraft, got, "requested=%s", requested)
		// Idempotent under repeated application.
		assert.Equal(t, models.StatusDraft, EnforceStatus(models.RoleEditor, got))
	}
}

func TestEnforceStatusPassThrough(t *testing.T) {
	for _, role := range []models.Role{models.RoleViewer, models.RoleAdmin, models.RoleSuperAdmin} {
		for _, requested := range []models.ContentStatus{models.StatusDraft, models.StatusPublished, models.StatusArchived} {
			assert.Equal(t, requested, EnforceStatus(role, requested), "role=%s requested=%s", role, requested)
		}
	}
}
