package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/pkg/params"
)

func TestSortColumnsResolve(t *testing.T) {
	sc := newSortColumns(nurseSource, userSource, addressSource)

	tests := []struct {
		column string
		want   string
	}{
		{"1", `n."id"`},
		{"id", `n."id"`},
		{"minutes_per_week", `n."minutes_per_week"`},
		{"lname", `u."lname"`},
		{"users.id", `u."id"`},
		{"city_name", `a."city_name"`},
		{"addresses.id", `a."id"`},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, err := sc.resolve(params.Sort{Column: tt.column, Direction: params.Asc})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortColumnsHideSecrets(t *testing.T) {
	sc := newSortColumns(userSource)
	for _, col := range []string{"password", "token", "token_gentime", "users.password"} {
		_, err := sc.resolve(params.Sort{Column: col})
		assert.Error(t, err, col)
	}
}

func TestNewSortColumnsUnknownTable(t *testing.T) {
	assert.Panics(t, func() { newSortColumns(source{"nope", "x"}) })
}

func TestProjectionNestsAddress(t *testing.T) {
	assert.Contains(t, nurseColumns, `a."id" AS "address.id"`)
	assert.Contains(t, nurseColumns, `z."id_center"`)
	assert.NotContains(t, nurseColumns, "password")

	cols := missionColumns("mission")
	assert.Contains(t, cols, `m."id" AS "mission.id"`)
	assert.Contains(t, cols, `mt."name" AS "mission.mission_type.name"`)
	assert.Contains(t, cols, `u."fname" AS "mission.patient.fname"`)
	assert.Contains(t, cols, `a."city_name" AS "mission.patient.address.city_name"`)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"desc"`, quote("desc"))
	assert.Equal(t, `"a""b"`, quote(`a"b`))
}

func TestCatalogueHasNoDuplicates(t *testing.T) {
	for table, cols := range tables {
		seen := map[string]bool{}
		for _, col := range cols {
			assert.False(t, seen[col], "%s.%s listed twice", table, col)
			seen[col] = true
			assert.Equal(t, strings.ToLower(col), col)
		}
	}
}
