package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"id_col", "idcol"},
		{"idCol", "idcol"},
		{"ID-COL", "idcol"},
		{"Id Col", "idcol"},
		{"band.col", "bandcol"},

		{"psFluxErr", "psfluxerr"},
		{"ps_flux_err", "psfluxerr"},
		{"PS-FLUX-ERR", "psfluxerr"},
		{"midPointTai", "midpointtai"},
		{"ps1_objid", "ps1objid"},

		{"", ""},
		{"_", ""},
		{"a", "a"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"midPointTai", []string{"mid", "Point", "Tai"}},
		{"filterName", []string{"filter", "Name"}},
		{"MJDObs", []string{"MJD", "Obs"}},
		{"ps1_objid", []string{"ps1", "objid"}},
		{"diaObjectId", []string{"dia", "Object", "Id"}},
		{"FLUX", []string{"FLUX"}},
		{"flux", []string{"flux"}},
		{"__flux__err", []string{"flux", "err"}},
		{"AbC", []string{"Ab", "C"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"ps", "flux", "err"}, TokenizeIdent("psFluxErr"))
	assert.Equal(t, []string{"time", "col"}, TokenizeIdent("TIME_col"))
	assert.Nil(t, TokenizeIdent(""))
}
