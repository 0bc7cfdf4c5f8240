package mapping

import (
	"github.com/cockroachdb/errors"

	"column-mapper/internal/column"
	"column-mapper/internal/diagnostic"
)

// Build turns a mapping file into a Mapper. The mapper starts from the
// file's preset (if any), then the file's columns are assigned over it and
// the optional roles are marked as not required.
//
// Build fails when Validate reports errors; an unready mapper is not an
// error, callers check IsReady themselves.
func Build(f *File, base *column.Registry) (*column.Mapper, error) {
	c, res := compile(f, base)
	if err := res.Error(); err != nil {
		return nil, errors.Wrap(err, "invalid mapping file")
	}

	return c.mapper(), nil
}

func (c *compiled) mapper() *column.Mapper {
	m := column.New(column.Columns{})
	if c.preset != "" {
		if p, ok := c.registry.Lookup(c.preset); ok {
			m = p.Mapper()
		}
	}

	m.Assign(c.columns)

	for _, r := range c.optional {
		m.SetRequired(r, false)
	}

	return m
}

// FromMapper describes m as a mapping file. Columns already supplied by
// m's preset are left out, so the result round-trips through Build.
func FromMapper(m *column.Mapper) *File {
	f := &File{
		Version: CurrentVersion,
		Preset:  m.MapID(),
	}

	var base column.Columns
	if p, ok := column.KnownMap(f.Preset); ok {
		base = p.Columns
	} else {
		f.Preset = ""
	}

	for _, r := range column.Roles() {
		name, ok := m.Column(r)
		if ok && name != base.Get(r) {
			if f.Columns == nil {
				f.Columns = map[string]string{}
			}

			f.Columns[r.String()] = name
		}

		if !m.IsRequired(r) {
			f.Optional = append(f.Optional, r.String())
		}
	}

	return f
}

// Registry returns base (the built-in presets when nil) extended with the
// presets declared in f. The file's own preset and columns are ignored.
func Registry(f *File, base *column.Registry) (*column.Registry, error) {
	if f == nil {
		return nil, errors.New("mapping file is nil")
	}

	if base == nil {
		base = column.DefaultRegistry()
	}

	res := &diagnostic.Diagnostics{}

	reg := compilePresets(res, f.Presets, base)
	if err := res.Error(); err != nil {
		return nil, errors.Wrap(err, "invalid presets")
	}

	return reg, nil
}
