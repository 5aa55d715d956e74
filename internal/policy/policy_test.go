package policy_test

import (
	"errors"
	"testing"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
)

func TestStaffAdmission(t *testing.T) {
	staffRoles := []domain.Role{
		domain.RoleAdmin, domain.RoleReceptionist, domain.RoleHousekeeping,
		domain.RoleMaintenance, domain.RoleSecurity, domain.RoleWaiter,
		domain.RoleChef, domain.RolePOSService,
	}
	for _, r := range staffRoles {
		if err := policy.StaffAdmission.Admit(r); err != nil {
			t.Errorf("staff app rejected %s: %v", r, err)
		}
	}

	if err := policy.StaffAdmission.Admit(domain.RoleCustomer); !errors.Is(err, policy.ErrRoleNotAdmitted) {
		t.Errorf("staff app admitted CUSTOMER: %v", err)
	}
}

func TestCustomerAdmission(t *testing.T) {
	if err := policy.CustomerAdmission.Admit(domain.RoleCustomer); err != nil {
		t.Errorf("customer app rejected CUSTOMER: %v", err)
	}
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleReceptionist, domain.RoleChef} {
		if err := policy.CustomerAdmission.Admit(r); !errors.Is(err, policy.ErrRoleNotAdmitted) {
			t.Errorf("customer app admitted %s: %v", r, err)
		}
	}
}

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		role domain.Role
		cap  policy.Capability
		want bool
	}{
		{domain.RoleAdmin, policy.CapManageUsers, true},
		{domain.RoleAdmin, policy.CapManageRooms, true},
		{domain.RoleReceptionist, policy.CapManageBookings, true},
		{domain.RoleReceptionist, policy.CapManageUsers, false},
		{domain.RoleHousekeeping, policy.CapWorkHousekeeping, true},
		{domain.RoleHousekeeping, policy.CapManageFolios, false},
		{domain.RoleCustomer, policy.CapOwnBookings, true},
		{domain.RoleCustomer, policy.CapViewBookings, false},
		{domain.RolePOSService, policy.CapManageFolios, true},
	}
	for _, tc := range cases {
		if got := policy.Can(tc.role, tc.cap); got != tc.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tc.role, tc.cap, got, tc.want)
		}
	}
}

func TestUnknownRoleHasNoGrants(t *testing.T) {
	if policy.Can(domain.Role("INTRUDER"), policy.CapViewBookings) {
		t.Error("unknown role granted a capability")
	}
	if caps := policy.Capabilities(domain.Role("INTRUDER")); len(caps) != 0 {
		t.Errorf("unknown role has capabilities: %v", caps)
	}
}
