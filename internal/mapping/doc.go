// Package mapping reads, validates and builds column mapping files.
//
// A mapping file describes a column.Mapper declaratively, in YAML or TOML:
//
//	version: "1"
//	preset: ZTF            # optional starting point
//	columns:               # role -> dataset column, applied over the preset
//	  time_col: mjd
//	  fluxCol: flux        # role keys are matched loosely
//	optional: band_col     # a role or list of roles not needed for readiness
//	presets:               # extra known mappings, usable by "preset"
//	  - id: LSST
//	    columns:
//	      id_col: diaObjectId
//	      time_col: midpointMjdTai
//	      flux_col: psfFlux
//	      err_col: psfFluxErr
//	      band_col: band
//
// The TOML form uses the same keys. The decoder is chosen by file
// extension: ".toml" is TOML, anything else YAML.
//
// # Validation
//
// Validate reports problems as diagnostic codes:
//
//   - unsupported_version: version other than "1"
//   - unknown_role: a role key that matches no role (with suggestions)
//   - duplicate_role: two keys naming the same role
//   - empty_column: a role mapped to ""
//   - empty_preset_id, duplicate_preset, incomplete_preset: bad preset definitions
//   - unknown_preset: "preset" names nothing registered (with suggestions)
//   - not_ready (warning): required roles left without a column
package mapping
