package column

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReadyIffAllColumnsSet(t *testing.T) {
	t.Parallel()

	// every subset of the five roles
	for mask := range 1 << RoleTotal {
		var cols Columns
		for i, r := range Roles() {
			if mask&(1<<i) != 0 {
				cols = cols.With(r, "c_"+r.String())
			}
		}

		m := New(cols)
		assert.Equal(t, mask == 1<<RoleTotal-1, m.IsReady(), spew.Sdump(cols))
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	m := New(Columns{})

	ready, needed := m.Readiness()
	assert.False(t, ready)
	assert.Equal(t, []Role{RoleID, RoleTime, RoleFlux, RoleErr, RoleBand}, needed)
	assert.Empty(t, m.Map())
	assert.Empty(t, m.MapID())

	names := make([]string, 0, len(needed))
	for _, r := range needed {
		names = append(names, r.String())
	}

	assert.Equal(t, []string{"id_col", "time_col", "flux_col", "err_col", "band_col"}, names)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("no columns is a no-op", func(t *testing.T) {
		t.Parallel()

		m := New(Columns{ID: "obj", Flux: "flux"})
		before := m.Columns()

		got := m.Assign(Columns{})
		assert.Same(t, m, got)
		assert.Equal(t, before, m.Columns())
	})

	t.Run("last value wins", func(t *testing.T) {
		t.Parallel()

		m := New(Columns{ID: "obj"})
		m.Assign(Columns{Time: "t1"}).Assign(Columns{Time: "t2"})

		col, ok := m.Column(RoleTime)
		require.True(t, ok)
		assert.Equal(t, "t2", col)
		assert.Equal(t, Columns{ID: "obj", Time: "t2"}, m.Columns())
	})

	t.Run("fills remaining roles", func(t *testing.T) {
		t.Parallel()

		m := New(Columns{ID: "obj", Time: "mjd"})
		ready, needed := m.Readiness()
		assert.False(t, ready)
		assert.Equal(t, []Role{RoleFlux, RoleErr, RoleBand}, needed)

		m.Assign(Columns{Flux: "flux", Err: "flux_err", Band: "band"})
		ready, needed = m.Readiness()
		assert.True(t, ready)
		assert.Empty(t, needed)
	})
}

func TestReadiness_OptionalRoles(t *testing.T) {
	t.Parallel()

	m := New(Columns{ID: "obj", Time: "mjd", Flux: "flux", Err: "err"})
	assert.False(t, m.IsReady())

	m.SetRequired(RoleBand, false)
	assert.False(t, m.IsRequired(RoleBand))
	assert.True(t, m.IsRequired(RoleID))
	assert.True(t, m.IsReady())

	m.SetRequired(RoleBand, true)
	ready, needed := m.Readiness()
	assert.False(t, ready)
	assert.Equal(t, []Role{RoleBand}, needed)

	// invalid roles are ignored
	m.SetRequired(Role(0), false)
	assert.False(t, m.IsRequired(Role(0)))
}

func TestMapper_ColumnAndMap(t *testing.T) {
	t.Parallel()

	m := New(Columns{ID: "obj", Band: "filter"})

	col, ok := m.Column(RoleID)
	assert.True(t, ok)
	assert.Equal(t, "obj", col)

	_, ok = m.Column(RoleErr)
	assert.False(t, ok)

	_, ok = m.Column(Role(42))
	assert.False(t, ok)

	assert.Equal(t, map[string]string{"id_col": "obj", "band_col": "filter"}, m.Map())
}

func TestMapper_Clone(t *testing.T) {
	t.Parallel()

	m := New(Columns{ID: "obj"})
	c := m.Clone()
	c.Assign(Columns{ID: "other"}).SetRequired(RoleTime, false)

	col, _ := m.Column(RoleID)
	assert.Equal(t, "obj", col)
	assert.True(t, m.IsRequired(RoleTime))
}

func TestMapper_String(t *testing.T) {
	t.Parallel()

	m := New(Columns{ID: "obj", Time: "mjd"})
	assert.Equal(t, "{id_col=obj time_col=mjd flux_col=<unset> err_col=<unset> band_col=<unset>}", m.String())

	ztf := ZTF.Mapper()
	assert.Equal(t,
		"ZTF{id_col=ps1_objid time_col=midPointTai flux_col=psFlux err_col=psFluxErr band_col=filterName}",
		ztf.String())
}
