package domain

import "strings"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleHousekeeping Role = "HOUSEKEEPING"
	RoleMaintenance  Role = "MAINTENANCE"
	RoleSecurity     Role = "SECURITY"
	RoleWaiter       Role = "WAITER"
	RoleChef         Role = "CHEF"
	RolePOSService   Role = "POS_SERVICE"
	RoleCustomer     Role = "CUSTOMER"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin, RoleReceptionist, RoleHousekeeping, RoleMaintenance,
		RoleSecurity, RoleWaiter, RoleChef, RolePOSService, RoleCustomer:
		return Role(strings.ToUpper(strings.TrimSpace(s))), true
	default:
		return "", false
	}
}

// IsStaff reports whether the role belongs to hotel personnel rather than a
// guest account.
func (r Role) IsStaff() bool {
	return r != RoleCustomer && r != ""
}

type UserProfile struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
	Active      bool   `json:"active"`
}
