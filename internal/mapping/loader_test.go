package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
preset: ZTF
columns:
  time_col: mjd
  fluxCol: flux
optional:
  - band_col
  - err_col
presets:
  - id: LSST
    columns:
      id_col: diaObjectId
      time_col: midpointMjdTai
      flux_col: psfFlux
      err_col: psfFluxErr
      band_col: band
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "ZTF", f.Preset)
	assert.Equal(t, map[string]string{"time_col": "mjd", "fluxCol": "flux"}, f.Columns)
	assert.Equal(t, StringOrArray{"band_col", "err_col"}, f.Optional)

	require.Len(t, f.Presets, 1)
	assert.Equal(t, "LSST", f.Presets[0].ID)
	assert.Equal(t, "diaObjectId", f.Presets[0].Columns["id_col"])
	assert.Len(t, f.Presets[0].Columns, 5)
}

func TestParseMinimal(t *testing.T) {
	f, err := Parse([]byte("preset: ZTF\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version) // Default version
	assert.Equal(t, "ZTF", f.Preset)
	assert.Empty(t, f.Columns)
	assert.True(t, f.Optional.IsEmpty())
}

func TestParseOptionalStringOrArray(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected StringOrArray
	}{
		{name: "single string", yaml: "optional: band_col\n", expected: StringOrArray{"band_col"}},
		{name: "array", yaml: "optional: [band_col, err_col]\n", expected: StringOrArray{"band_col", "err_col"}},
		{name: "empty string", yaml: "optional: \"\"\n", expected: StringOrArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Optional)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("columns: [not, a, table]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping YAML")

	_, err = Parse([]byte("optional: {band_col: true}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestParseTOML(t *testing.T) {
	data := `
version = "1"
preset = "ZTF"
optional = ["band_col"]

[columns]
time_col = "mjd"

[[presets]]
id = "LSST"

[presets.columns]
id_col = "diaObjectId"
time_col = "midpointMjdTai"
flux_col = "psfFlux"
err_col = "psfFluxErr"
band_col = "band"
`

	f, err := ParseTOML([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "ZTF", f.Preset)
	assert.Equal(t, map[string]string{"time_col": "mjd"}, f.Columns)
	assert.Equal(t, StringOrArray{"band_col"}, f.Optional)
	require.Len(t, f.Presets, 1)
	assert.Equal(t, "psfFlux", f.Presets[0].Columns["flux_col"])

	_, err = ParseTOML([]byte("preset = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping TOML")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("map.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("/a/b/MAP.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("map.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("map"))

	for name, want := range map[string]Format{"yaml": FormatYAML, "YML": FormatYAML, "": FormatYAML, "toml": FormatTOML} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("json")
	require.Error(t, err)
}

func TestWriteAndLoadFile(t *testing.T) {
	original := &File{
		Version:  CurrentVersion,
		Preset:   "ZTF",
		Columns:  map[string]string{"time_col": "mjd"},
		Optional: StringOrArray{"band_col"},
	}

	for _, ext := range []string{".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mapping"+ext)

			require.NoError(t, WriteFile(original, path))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, original, loaded)
		})
	}
}

func TestMarshal_SingleOptionalAsScalar(t *testing.T) {
	data, err := Marshal(&File{Version: "1", Optional: StringOrArray{"band_col"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "optional: band_col\n")
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}
