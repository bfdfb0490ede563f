package entity

import "testing"

func TestRoleLevels(t *testing.T) {
	if !(RoleDirector.Level() > RoleManager.Level() &&
		RoleManager.Level() > RoleEmployee.Level() &&
		RoleEmployee.Level() > RoleWarehouse.Level()) {
		t.Fatalf("role hierarchy out of order: director=%d manager=%d employee=%d warehouse=%d",
			RoleDirector.Level(), RoleManager.Level(), RoleEmployee.Level(), RoleWarehouse.Level())
	}
	if RoleWarehouse.Level() < 1 {
		t.Fatalf("warehouse must rank above unknown roles")
	}
}

func TestRoleLevelUnknown(t *testing.T) {
	if got := Role("intern").Level(); got != 0 {
		t.Fatalf("unknown role level = %d, want 0", got)
	}
	if got := Role("").Level(); got != 0 {
		t.Fatalf("empty role level = %d, want 0", got)
	}
}

func TestParseRoleAdminAlias(t *testing.T) {
	if got := ParseRole("admin"); got != RoleDirector {
		t.Fatalf("ParseRole(admin) = %q, want director", got)
	}
	if got := ParseRole("manager"); got != RoleManager {
		t.Fatalf("ParseRole(manager) = %q", got)
	}
	// unknown values pass through so they stay visible in logs
	if got := ParseRole("intern"); got != Role("intern") {
		t.Fatalf("ParseRole(intern) = %q", got)
	}
}
