package roles

import "testing"

func TestMeetsMinimumReflexive(t *testing.T) {
	for _, r := range []Role{Guest, User, Admin, Owner} {
		if !MeetsMinimum(r, r) {
			t.Errorf("MeetsMinimum(%s, %s) should be true", r, r)
		}
	}
}

func TestOwnerMeetsEverything(t *testing.T) {
	for _, required := range []Role{Guest, User, Admin, Owner} {
		if !MeetsMinimum(Owner, required) {
			t.Errorf("OWNER should meet minimum %s", required)
		}
	}
}

func TestHierarchyOrder(t *testing.T) {
	cases := []struct {
		actual   Role
		required Role
		want     bool
	}{
		{Guest, Admin, false},
		{Guest, User, false},
		{User, Guest, true},
		{User, Admin, false},
		{Admin, User, true},
		{Admin, Owner, false},
		{Owner, Admin, true},
	}

	for _, c := range cases {
		if got := MeetsMinimum(c.actual, c.required); got != c.want {
			t.Errorf("MeetsMinimum(%s, %s) = %v, want %v", c.actual, c.required, got, c.want)
		}
	}
}

func TestUnknownActualRoleNeverMeets(t *testing.T) {
	if MeetsMinimum(Role("INTERN"), Guest) {
		t.Error("unknown actual role should not meet any minimum")
	}
}

func TestUnknownRequiredRolePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown required role")
		}
	}()
	MeetsMinimum(Owner, Role("SUPERUSER"))
}

func TestParse(t *testing.T) {
	if r, err := Parse("ADMIN"); err != nil || r != Admin {
		t.Errorf("Parse(ADMIN) = %v, %v", r, err)
	}
	if _, err := Parse("admin"); err == nil {
		t.Error("Parse should reject lowercase role names")
	}
	if _, err := Parse("NOPE"); err == nil {
		t.Error("Parse should reject unknown role names")
	}
}
