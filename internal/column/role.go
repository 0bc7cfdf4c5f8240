package column

import (
	"strings"

	"column-mapper/internal/match"
)

//go:generate go tool stringer -type=Role -linecomment -output=role_string.go

// Role is one of the semantic columns the analysis pipeline needs.
type Role int

const (
	_ Role = iota // zero value is an invalid Role

	RoleID   // id_col
	RoleTime // time_col
	RoleFlux // flux_col
	RoleErr  // err_col
	RoleBand // band_col

	// RoleTotal is the number of valid roles.
	RoleTotal = int(iota) - 1
)

// Roles returns every valid role in declaration order.
func Roles() []Role {
	return []Role{RoleID, RoleTime, RoleFlux, RoleErr, RoleBand}
}

// IsValid reports whether r is one of the declared roles.
func (r Role) IsValid() bool {
	return r >= RoleID && r <= RoleBand
}

func (r Role) index() int {
	return int(r) - 1
}

// ParseRole resolves a role key as written by a human.
// Canonical names ("time_col") and their spelling variants
// ("timeCol", "TIME-COL") are accepted, as are bare names ("time").
func ParseRole(s string) (Role, bool) {
	key := match.NormalizeIdent(strings.TrimSpace(s))
	if key == "" {
		return 0, false
	}

	for _, r := range Roles() {
		canonical := match.NormalizeIdent(r.String())
		if key == canonical || key+"col" == canonical {
			return r, true
		}
	}

	return 0, false
}
