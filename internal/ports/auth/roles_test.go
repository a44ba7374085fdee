package auth

import "testing"

func TestHasRole_AnonymousNeverPasses(t *testing.T) {
	anon := Claims{}
	if HasRole(anon) {
		t.Fatal("anonymous passed empty role set")
	}
	if HasRole(anon, RoleAdmin, RoleDoctor, RoleCaretaker) {
		t.Fatal("anonymous passed full role set")
	}
}

func TestHasRole_NoHierarchy(t *testing.T) {
	admin := Claims{UserID: "u1", Role: RoleAdmin}

	// admin is not implicitly a doctor
	if HasRole(admin, RoleDoctor) {
		t.Fatal("admin satisfied a doctor-only check")
	}
	if !HasRole(admin, RoleAdmin, RoleDoctor) {
		t.Fatal("admin rejected by a set that lists admin")
	}
}

func TestHasRole_AllCombinations(t *testing.T) {
	all := []Role{RoleAdmin, RoleDoctor, RoleCaretaker}

	for _, have := range all {
		c := Claims{UserID: "u1", Role: have}
		for _, want := range all {
			got := HasRole(c, want)
			if got != (have == want) {
				t.Fatalf("HasRole(%s, %s) = %v", have, want, got)
			}
		}
		if !HasRole(c, all...) {
			t.Fatalf("role %s rejected by full set", have)
		}
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":     RoleAdmin,
		" Doctor ":  RoleDoctor,
		"CARETAKER": RoleCaretaker,
		"visitor":   "",
		"":          "",
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}
