package mapping

import (
	"fmt"
	"maps"
	"slices"

	"column-mapper/internal/column"
	"column-mapper/internal/diagnostic"
	"column-mapper/internal/match"
)

const (
	sectionColumns  = "columns"
	sectionOptional = "optional"
	sectionPreset   = "preset"
)

// compiled is a mapping file resolved against a preset registry.
type compiled struct {
	registry *column.Registry
	preset   string
	columns  column.Columns
	optional []column.Role
}

// Validate checks a mapping file against the base registry (the built-in
// presets when nil). Problems that prevent building a mapper are errors;
// a mapper that would build but is not ready yields a "not_ready" warning.
func Validate(f *File, base *column.Registry) *diagnostic.Diagnostics {
	c, res := compile(f, base)
	if !res.IsValid() {
		return res
	}

	if ready, needed := c.mapper().Readiness(); !ready {
		res.AddWarning("not_ready", fmt.Sprintf("no column assigned for required roles %v", needed), sectionColumns, "")
	}

	return res
}

func compile(f *File, base *column.Registry) (*compiled, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return nil, res
	}

	if base == nil {
		base = column.DefaultRegistry()
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "version", "")
	}

	c := &compiled{preset: f.Preset}
	c.registry = compilePresets(res, f.Presets, base)
	c.columns = resolveColumns(res, sectionColumns, f.Columns)

	for _, key := range f.Optional {
		role, ok := parseRole(res, sectionOptional, key)
		if ok {
			c.optional = append(c.optional, role)
		}
	}

	if f.Preset != "" && c.registry != nil {
		if _, ok := c.registry.Lookup(f.Preset); !ok {
			ids := c.registry.IDs()
			res.AddError("unknown_preset", fmt.Sprintf("unknown preset %q", f.Preset), sectionPreset, f.Preset,
				match.Suggest(f.Preset, ids, match.DefaultMinScore)...)
		}
	}

	return c, res
}

// compilePresets extends base with the file's preset definitions.
// It returns nil when any definition is invalid.
func compilePresets(res *diagnostic.Diagnostics, defs []PresetDef, base *column.Registry) *column.Registry {
	var (
		presets []column.Preset
		failed  bool
	)

	seen := map[string]struct{}{}
	for _, id := range base.IDs() {
		seen[id] = struct{}{}
	}

	for i, def := range defs {
		section := fmt.Sprintf("presets[%d]", i)
		if def.ID == "" {
			res.AddError("empty_preset_id", "preset has no id", section, "")
			failed = true

			continue
		}

		section = fmt.Sprintf("presets[%s]", def.ID)
		if _, ok := seen[def.ID]; ok {
			res.AddError("duplicate_preset", fmt.Sprintf("duplicate preset %q", def.ID), section, def.ID)
			failed = true

			continue
		}

		seen[def.ID] = struct{}{}

		errCount := len(res.Errors)
		cols := resolveColumns(res, section, def.Columns)

		if missing := cols.Missing(); len(missing) > 0 {
			res.AddError("incomplete_preset", fmt.Sprintf("preset %q has no column for %v", def.ID, missing), section, def.ID)
		}

		if len(res.Errors) > errCount {
			failed = true
			continue
		}

		presets = append(presets, column.Preset{ID: def.ID, Columns: cols})
	}

	if failed {
		return nil
	}

	reg, err := base.Extend(presets...)
	if err != nil {
		res.AddError("invalid_presets", err.Error(), "presets", "")
		return nil
	}

	return reg
}

// resolveColumns turns a role-key table into Columns, reporting unknown
// keys, keys naming the same role twice and empty column names.
func resolveColumns(res *diagnostic.Diagnostics, section string, raw map[string]string) column.Columns {
	var (
		cols   column.Columns
		keyFor = map[column.Role]string{}
	)

	// sorted for deterministic diagnostics
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		role, ok := parseRole(res, section, key)
		if !ok {
			continue
		}

		if prev, dup := keyFor[role]; dup {
			res.AddError("duplicate_role", fmt.Sprintf("%q and %q both name role %s", prev, key, role), section, key)
			continue
		}

		keyFor[role] = key

		name := raw[key]
		if name == "" {
			res.AddError("empty_column", fmt.Sprintf("empty column name for role %s", role), section, key)
			continue
		}

		cols = cols.With(role, name)
	}

	return cols
}

func parseRole(res *diagnostic.Diagnostics, section, key string) (column.Role, bool) {
	role, ok := column.ParseRole(key)
	if !ok {
		res.AddError("unknown_role", fmt.Sprintf("unknown role %q", key), section, key,
			match.Suggest(key, roleNames(), match.DefaultMinScore)...)
	}

	return role, ok
}

func roleNames() []string {
	names := make([]string, 0, column.RoleTotal)
	for _, r := range column.Roles() {
		names = append(names, r.String())
	}

	return names
}
