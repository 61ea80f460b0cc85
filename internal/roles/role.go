package roles

import (
	"fmt"
)

type Role string

const (
	Guest Role = "GUEST"
	User  Role = "USER"
	Admin Role = "ADMIN"
	Owner Role = "OWNER"
)

// hierarchy fixes the total order used by MeetsMinimum. Comparison is
// by index into this slice, never by the storage representation.
var hierarchy = []Role{Guest, User, Admin, Owner}

func index(r Role) int {
	for i, h := range hierarchy {
		if h == r {
			return i
		}
	}
	return -1
}

// MeetsMinimum reports whether actual satisfies a required role floor.
// An unknown required role is a programmer error: route declarations
// are the only place role floors come from, so this panics rather than
// returning a user-facing error.
func MeetsMinimum(actual, required Role) bool {
	ri := index(required)
	if ri < 0 {
		panic(fmt.Sprintf("roles: unknown required role %q", required))
	}

	ai := index(actual)
	if ai < 0 {
		return false
	}

	return ai >= ri
}

// Parse validates a client-supplied role name.
func Parse(s string) (Role, error) {
	r := Role(s)
	if index(r) < 0 {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
