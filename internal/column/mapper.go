package column

import (
	"fmt"
	"strings"
)

// Mapper tracks which dataset column plays each role.
//
// Every role is always present as a key; a role is either assigned a
// non-empty column name or absent. The zero value is not usable, create
// mappers with New or from a Preset.
type Mapper struct {
	columns  [RoleTotal]string
	required [RoleTotal]bool
	mapID    string
}

// New returns a Mapper seeded with the supplied columns.
// Roles left empty in cols are absent. All roles are required.
func New(cols Columns) *Mapper {
	m := &Mapper{}
	for i := range m.required {
		m.required[i] = true
	}

	return m.Assign(cols)
}

// Assign overwrites the roles supplied in cols and leaves the others
// untouched. It returns m so calls can be chained.
func (m *Mapper) Assign(cols Columns) *Mapper {
	for _, r := range Roles() {
		if name := cols.Get(r); name != "" {
			m.columns[r.index()] = name
		}
	}

	return m
}

// IsReady reports whether every required role is assigned.
func (m *Mapper) IsReady() bool {
	ready, _ := m.Readiness()
	return ready
}

// Readiness reports whether every required role is assigned, along with
// the required roles still missing in declaration order.
func (m *Mapper) Readiness() (bool, []Role) {
	var needed []Role

	for _, r := range Roles() {
		if m.required[r.index()] && m.columns[r.index()] == "" {
			needed = append(needed, r)
		}
	}

	return len(needed) == 0, needed
}

// UseKnownMap returns a new Mapper preset for the known source id.
// m itself is never modified.
func (m *Mapper) UseKnownMap(id string) (*Mapper, error) {
	return UseKnownMap(id)
}

// MapID returns the identifier of the preset m was built from,
// or "" for a mapper assembled by hand.
func (m *Mapper) MapID() string {
	return m.mapID
}

// Column returns the column assigned to r.
func (m *Mapper) Column(r Role) (string, bool) {
	if !r.IsValid() {
		return "", false
	}

	name := m.columns[r.index()]

	return name, name != ""
}

// Columns returns a snapshot of the current assignments.
func (m *Mapper) Columns() Columns {
	var cols Columns
	for _, r := range Roles() {
		cols = cols.With(r, m.columns[r.index()])
	}

	return cols
}

// Map returns the assigned columns keyed by canonical role name.
// Absent roles are omitted.
func (m *Mapper) Map() map[string]string {
	out := make(map[string]string, RoleTotal)

	for _, r := range Roles() {
		if name := m.columns[r.index()]; name != "" {
			out[r.String()] = name
		}
	}

	return out
}

// SetRequired changes whether r must be assigned for the mapper to be ready.
func (m *Mapper) SetRequired(r Role, required bool) *Mapper {
	if r.IsValid() {
		m.required[r.index()] = required
	}

	return m
}

// IsRequired reports whether r must be assigned for the mapper to be ready.
func (m *Mapper) IsRequired(r Role) bool {
	return r.IsValid() && m.required[r.index()]
}

// Clone returns an independent copy of m.
func (m *Mapper) Clone() *Mapper {
	c := *m
	return &c
}

// String returns a compact, human-readable form such as
// "ZTF{id_col=ps1_objid time_col=midPointTai ...}".
func (m *Mapper) String() string {
	parts := make([]string, 0, RoleTotal)

	for _, r := range Roles() {
		name := m.columns[r.index()]
		if name == "" {
			name = "<unset>"
		}

		parts = append(parts, fmt.Sprintf("%s=%s", r, name))
	}

	return m.mapID + "{" + strings.Join(parts, " ") + "}"
}
