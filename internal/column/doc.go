// Package column maps dataset column names onto the semantic roles
// consumed by the time-series analysis pipeline.
//
// A Mapper holds one column name per Role (id, time, flux, error, band)
// and reports when every required role has been assigned:
//
//	m := column.New(column.Columns{ID: "objectId", Time: "mjd"})
//	m.Assign(column.Columns{Flux: "flux", Err: "fluxErr", Band: "band"})
//	ready, needed := m.Readiness()
//
// Known data sources are available as presets, looked up by identifier:
//
//	ztf, err := column.UseKnownMap("ZTF")
//
// Presets are plain data; a Registry maps identifiers to them and is
// read-only once built.
package column
