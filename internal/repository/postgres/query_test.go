package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/model"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

func listParams(page, perPage int, search string, sort params.Sort) params.List {
	return params.List{
		Pagination: params.Pagination{Page: page, PerPage: perPage},
		Search:     params.Search{Raw: search},
		Sort:       sort,
	}
}

func TestListDefaults(t *testing.T) {
	built, err := skillList.build(listParams(1, 15, "", params.DefaultSort()))
	require.NoError(t, err)

	assert.Equal(t, `SELECT s."id", s."name" FROM skills s ORDER BY s."id" ASC LIMIT $1 OFFSET $2`, built.query)
	assert.Equal(t, []interface{}{15, 0}, built.args)
	assert.Equal(t, `SELECT COUNT(*) FROM skills s`, built.countQuery)
	assert.Empty(t, built.countArgs)
}

func TestListSpecSearchAndSort(t *testing.T) {
	built, err := centerList.build(listParams(3, 10, "north", params.Sort{Column: "name", Direction: params.Desc}))
	require.NoError(t, err)

	assert.Contains(t, built.query, `WHERE (c."name" ILIKE $1 OR c."desc" ILIKE $2)`)
	assert.Contains(t, built.query, `ORDER BY c."name" DESC, c."id" LIMIT $3 OFFSET $4`)
	assert.Equal(t, []interface{}{"%north%", "%north%", 10, 20}, built.args)
	assert.Equal(t, `SELECT COUNT(*) FROM centers c WHERE (c."name" ILIKE $1 OR c."desc" ILIKE $2)`, built.countQuery)
	assert.Equal(t, []interface{}{"%north%", "%north%"}, built.countArgs)
}

func TestListSpecFixedFilterFirst(t *testing.T) {
	spec := availabilityList
	spec.where = []string{`av."id_nurse" = ?`}
	spec.args = []interface{}{int64(7)}

	built, err := spec.build(pageOnly(params.Pagination{Page: 2, PerPage: 5}))
	require.NoError(t, err)

	assert.Contains(t, built.query, `WHERE av."id_nurse" = $1 ORDER BY av."id" ASC LIMIT $2 OFFSET $3`)
	assert.Equal(t, []interface{}{int64(7), 5, 5}, built.args)
	assert.Equal(t, []interface{}{int64(7)}, built.countArgs)
	assert.Empty(t, availabilityList.where, "the shared listSpec is not modified")
}

func TestListSpecUnknownSortColumn(t *testing.T) {
	_, err := nurseList.build(listParams(1, 15, "", params.Sort{Column: "password", Direction: params.Asc}))
	assert.ErrorIs(t, err, apperrors.BadRequestError)

	_, err = nurseList.build(listParams(1, 15, "", params.Sort{Column: `id"; DROP TABLE users; --`, Direction: params.Asc}))
	assert.ErrorIs(t, err, apperrors.BadRequestError)
}

func TestSearchIsBound(t *testing.T) {
	built, err := nurseList.build(listParams(1, 15, "o'neil%", params.DefaultSort()))
	require.NoError(t, err)

	assert.NotContains(t, built.query, "o'neil")
	assert.Equal(t, "%o'neil%%", built.args[0])
}

func TestSetListBuild(t *testing.T) {
	number := int32(12)
	update := model.UpdateAddress{
		Number:     model.NewNullable(number),
		Complement: model.Null[string](),
	}
	city := "Lyon"
	update.CityName = &city

	set := &setList{}
	setNullable(set, "number", update.Number)
	setIf(set, "street_name", update.StreetName)
	setIf(set, "city_name", update.CityName)
	setNullable(set, "complement", update.Complement)

	query, args := set.build("addresses", 4)
	assert.Equal(t, `UPDATE "addresses" SET "number" = $1, "city_name" = $2, "complement" = $3 WHERE "id" = $4`, query)
	assert.Equal(t, []interface{}{int32(12), "Lyon", nil, int64(4)}, args)
}

func TestUpdateRejectsEmptySet(t *testing.T) {
	r := &BaseRepository{}
	err := r.update(context.Background(), "skills", "skill", 1, &setList{})
	assert.ErrorIs(t, err, apperrors.BadRequestError)
}
