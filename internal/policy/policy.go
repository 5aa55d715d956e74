package policy

import (
	"errors"
	"fmt"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
)

// Capability names one thing a signed-in user may do. Menu rendering and
// command gating consult the table below instead of checking roles inline.
type Capability string

const (
	CapManageUsers        Capability = "users:manage"
	CapViewBookings       Capability = "bookings:view"
	CapManageBookings     Capability = "bookings:manage"
	CapViewRooms          Capability = "rooms:view"
	CapManageRooms        Capability = "rooms:manage"
	CapManageHousekeeping Capability = "housekeeping:manage"
	CapWorkHousekeeping   Capability = "housekeeping:work"
	CapManageServices     Capability = "services:manage"
	CapServeOrders        Capability = "orders:serve"
	CapManageFolios       Capability = "folios:manage"
	CapViewFeedback       Capability = "feedback:view"
	CapOwnBookings        Capability = "bookings:own"
	CapOwnRequests        Capability = "requests:own"
	CapOwnFeedback        Capability = "feedback:own"
)

var grants = map[domain.Role][]Capability{
	domain.RoleAdmin: {
		CapManageUsers, CapViewBookings, CapManageBookings, CapViewRooms,
		CapManageRooms, CapManageHousekeeping, CapManageServices,
		CapManageFolios, CapViewFeedback,
	},
	domain.RoleReceptionist: {
		CapViewBookings, CapManageBookings, CapViewRooms,
		CapManageFolios, CapViewFeedback,
	},
	domain.RoleHousekeeping: {CapViewRooms, CapWorkHousekeeping},
	domain.RoleMaintenance:  {CapViewRooms},
	domain.RoleSecurity:     {CapViewRooms, CapViewBookings},
	domain.RoleWaiter:       {CapServeOrders},
	domain.RoleChef:         {CapServeOrders},
	domain.RolePOSService:   {CapServeOrders, CapManageFolios},
	domain.RoleCustomer:     {CapOwnBookings, CapOwnRequests, CapOwnFeedback},
}

func Can(role domain.Role, cap Capability) bool {
	for _, c := range grants[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// Capabilities returns the full grant set for a role, in table order, for
// menu rendering.
func Capabilities(role domain.Role) []Capability {
	caps := make([]Capability, len(grants[role]))
	copy(caps, grants[role])
	return caps
}

var ErrRoleNotAdmitted = errors.New("role not admitted")

// Admission is the per-application login gate: the staff dashboard rejects
// CUSTOMER logins, the customer site rejects everything else.
type Admission struct {
	App   string
	allow func(domain.Role) bool
}

func (a Admission) Admit(role domain.Role) error {
	if a.allow(role) {
		return nil
	}
	return fmt.Errorf("%w: access denied for role %s on %s", ErrRoleNotAdmitted, role, a.App)
}

var (
	StaffAdmission = Admission{
		App:   "hoteldesk",
		allow: func(r domain.Role) bool { return r.IsStaff() },
	}
	CustomerAdmission = Admission{
		App:   "hotelguest",
		allow: func(r domain.Role) bool { return r == domain.RoleCustomer },
	}
)
