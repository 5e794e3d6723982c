package entity

// Capability is a typed permission checked at the HTTP boundary before a
// service operation runs. Roles map to capabilities in one static table
// instead of string-keyed per-screen lookups.
type Capability string

const (
	CapabilityManageBookings  Capability = "manage_bookings"
	CapabilityDriverTasks     Capability = "driver_tasks"
	CapabilityManageEquipment Capability = "manage_equipment"
	CapabilityManageUsers     Capability = "manage_users"
	CapabilityManageSEO       Capability = "manage_seo"
)

var roleCapabilities = map[UserRole][]Capability{
	RoleAdmin: {
		CapabilityManageBookings,
		CapabilityDriverTasks,
		CapabilityManageEquipment,
		CapabilityManageUsers,
		CapabilityManageSEO,
	},
	RoleDriver: {
		CapabilityDriverTasks,
	},
	RoleCustomer: {},
}

// Can reports whether the role grants the capability.
func (r UserRole) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}
