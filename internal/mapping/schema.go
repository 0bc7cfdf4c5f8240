package mapping

// CurrentVersion is the only mapping file version understood.
const CurrentVersion = "1"

// File is the on-disk description of a column mapper.
type File struct {
	// Version of the file format, defaults to CurrentVersion.
	Version string `yaml:"version" toml:"version" json:"version"`
	// Preset optionally names a known mapping to start from.
	Preset string `yaml:"preset,omitempty" toml:"preset,omitempty" json:"preset,omitempty"`
	// Columns maps role keys to dataset column names. Keys are matched
	// loosely, so "time_col", "timeCol" and "time" name the same role.
	Columns map[string]string `yaml:"columns,omitempty" toml:"columns,omitempty" json:"columns,omitempty"`
	// Optional lists roles that need not be assigned for readiness.
	Optional StringOrArray `yaml:"optional,omitempty" toml:"optional,omitempty" json:"optional,omitempty"`
	// Presets declares additional known mappings, usable by Preset.
	Presets []PresetDef `yaml:"presets,omitempty" toml:"presets,omitempty" json:"presets,omitempty"`
}

// PresetDef declares a named, complete column layout.
type PresetDef struct {
	ID      string            `yaml:"id" toml:"id" json:"id"`
	Columns map[string]string `yaml:"columns" toml:"columns" json:"columns"`
}
