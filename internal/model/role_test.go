package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The update path can never touch a role's authority level.
func TestRoleUpdateChanges(t *testing.T) {
	name := "Auditor"
	desc := "Read-only oversight"
	inactive := false

	t.Run("all fields supplied", func(t *testing.T) {
		u := RoleUpdate{Name: &name, Description: &desc, IsActive: &inactive}
		changes := u.Changes()
		assert.Equal(t, map[string]interface{}{
			"name":        "Auditor",
			"description": "Read-only oversight",
			"is_active":   false,
		}, changes)
		assert.NotContains(t, changes, "level")
	})

	t.Run("nothing supplied", func(t *testing.T) {
		u := RoleUpdate{}
		assert.Empty(t, u.Changes())
	})

	t.Run("explicit false is a change", func(t *testing.T) {
		u := RoleUpdate{IsActive: &inactive}
		changes := u.Changes()
		assert.Len(t, changes, 1)
		assert.Equal(t, false, changes["is_active"])
	})
}
