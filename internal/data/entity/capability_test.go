package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	all := []Capability{
		CapabilityManageBookings,
		CapabilityDriverTasks,
		CapabilityManageEquipment,
		CapabilityManageUsers,
		CapabilityManageSEO,
	}

	for _, c := range all {
		assert.True(t, RoleAdmin.Can(c), "admin should have %s", c)
	}

	assert.True(t, RoleDriver.Can(CapabilityDriverTasks))
	assert.False(t, RoleDriver.Can(CapabilityManageBookings))
	assert.False(t, RoleDriver.Can(CapabilityManageUsers))

	for _, c := range all {
		assert.False(t, RoleCustomer.Can(c), "customer should not have %s", c)
	}

	// Unknown role grants nothing.
	assert.False(t, UserRole("superadmin").Can(CapabilityManageBookings))
}
