package column

import (
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
)

// Preset is the fixed column layout of a known data source.
type Preset struct {
	ID      string  `yaml:"id" toml:"id" json:"id"`
	Columns Columns `yaml:"columns" toml:"columns" json:"columns"`
}

// ZTF is the column layout of Zwicky Transient Facility catalog data.
var ZTF = Preset{
	ID: "ZTF",
	Columns: Columns{
		ID:   "ps1_objid",
		Time: "midPointTai",
		Flux: "psFlux",
		Err:  "psFluxErr",
		Band: "filterName",
	},
}

// MapID returns the identifier the preset is registered under.
func (p Preset) MapID() string {
	return p.ID
}

// Mapper returns a new Mapper with every role taken from the preset.
func (p Preset) Mapper() *Mapper {
	m := New(p.Columns)
	m.mapID = p.ID

	return m
}

// Registry is a read-only table of presets keyed by identifier.
// It is safe for concurrent use.
type Registry struct {
	presets map[string]Preset
}

var knownMaps = mustRegistry(ZTF)

// NewRegistry builds a registry from the given presets.
// Presets must have a unique, non-empty ID and a column for every role.
func NewRegistry(presets ...Preset) (*Registry, error) {
	r := &Registry{presets: make(map[string]Preset, len(presets))}

	for _, p := range presets {
		if p.ID == "" {
			return nil, errors.New("preset has an empty id")
		}

		if _, ok := r.presets[p.ID]; ok {
			return nil, errors.Newf("duplicate preset %q", p.ID)
		}

		if missing := p.Columns.Missing(); len(missing) > 0 {
			return nil, errors.Newf("preset %q has no column for %v", p.ID, missing)
		}

		r.presets[p.ID] = p
	}

	return r, nil
}

func mustRegistry(presets ...Preset) *Registry {
	r, err := NewRegistry(presets...)
	if err != nil {
		panic(err)
	}

	return r
}

// DefaultRegistry returns the registry of built-in presets.
func DefaultRegistry() *Registry {
	return knownMaps
}

// Extend returns a new registry holding r's presets followed by extra.
func (r *Registry) Extend(extra ...Preset) (*Registry, error) {
	all := make([]Preset, 0, len(r.presets)+len(extra))
	for _, id := range r.IDs() {
		all = append(all, r.presets[id])
	}

	return NewRegistry(append(all, extra...)...)
}

// Lookup returns the preset registered under id.
func (r *Registry) Lookup(id string) (Preset, bool) {
	p, ok := r.presets[id]
	return p, ok
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.presets))
}

// Presets returns the registered presets sorted by identifier.
func (r *Registry) Presets() []Preset {
	out := make([]Preset, 0, len(r.presets))
	for _, id := range r.IDs() {
		out = append(out, r.presets[id])
	}

	return out
}

// UseKnownMap returns a new Mapper preset for id, or an
// *UnknownMappingError when id is not registered.
func (r *Registry) UseKnownMap(id string) (*Mapper, error) {
	p, ok := r.Lookup(id)
	if !ok {
		return nil, unknownMapping(id, r.IDs())
	}

	return p.Mapper(), nil
}

// KnownMap returns the built-in preset registered under id.
func KnownMap(id string) (Preset, bool) {
	return knownMaps.Lookup(id)
}

// KnownMapIDs returns the identifiers of the built-in presets.
func KnownMapIDs() []string {
	return knownMaps.IDs()
}

// UseKnownMap returns a new Mapper preset for the built-in source id.
func UseKnownMap(id string) (*Mapper, error) {
	return knownMaps.UseKnownMap(id)
}
