package column

// Columns names one dataset column per role.
// An empty string means the role is not supplied.
type Columns struct {
	ID   string `yaml:"id_col,omitempty" toml:"id_col,omitempty" json:"id_col,omitempty"`
	Time string `yaml:"time_col,omitempty" toml:"time_col,omitempty" json:"time_col,omitempty"`
	Flux string `yaml:"flux_col,omitempty" toml:"flux_col,omitempty" json:"flux_col,omitempty"`
	Err  string `yaml:"err_col,omitempty" toml:"err_col,omitempty" json:"err_col,omitempty"`
	Band string `yaml:"band_col,omitempty" toml:"band_col,omitempty" json:"band_col,omitempty"`
}

// Get returns the column supplied for r, or "" when r is absent or invalid.
func (c Columns) Get(r Role) string {
	switch r {
	case RoleID:
		return c.ID
	case RoleTime:
		return c.Time
	case RoleFlux:
		return c.Flux
	case RoleErr:
		return c.Err
	case RoleBand:
		return c.Band
	default:
		return ""
	}
}

// With returns a copy of c with the column for r replaced.
// Invalid roles leave c unchanged.
func (c Columns) With(r Role, name string) Columns {
	switch r {
	case RoleID:
		c.ID = name
	case RoleTime:
		c.Time = name
	case RoleFlux:
		c.Flux = name
	case RoleErr:
		c.Err = name
	case RoleBand:
		c.Band = name
	}

	return c
}

// IsComplete reports whether every role has a column.
func (c Columns) IsComplete() bool {
	return len(c.Missing()) == 0
}

// Missing lists the roles without a column, in declaration order.
func (c Columns) Missing() []Role {
	var missing []Role

	for _, r := range Roles() {
		if c.Get(r) == "" {
			missing = append(missing, r)
		}
	}

	return missing
}
