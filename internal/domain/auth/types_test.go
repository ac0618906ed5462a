package auth

import "testing"

func TestRole_ZeroValueIsNone(t *testing.T) {
	var r Role
	if r != RoleNone {
		t.Fatalf("zero value should be RoleNone, got %q", r)
	}
	if !r.Valid() {
		t.Fatalf("RoleNone should be a valid role value")
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{" Volunteer ", RoleVolunteer, true},
		{"DONOR", RoleDonor, true},
		{"", RoleNone, false},
		{"owner", RoleNone, false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if Role("owner").Valid() {
		t.Fatalf("unknown role should not be valid")
	}
	if !RoleAdmin.Valid() {
		t.Fatalf("admin should be valid")
	}
}
