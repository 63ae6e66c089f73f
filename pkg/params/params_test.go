package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

func query(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return q
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Pagination
		wantErr bool
	}{
		{name: "defaults", query: "", want: Pagination{Page: 1, PerPage: 15}},
		{name: "explicit", query: "page=3&per_page=20", want: Pagination{Page: 3, PerPage: 20}},
		{name: "camel case alias", query: "perPage=5", want: Pagination{Page: 1, PerPage: 5}},
		{name: "upper bound", query: "per_page=255", want: Pagination{Page: 1, PerPage: 255}},
		{name: "zero page", query: "page=0", wantErr: true},
		{name: "negative per page", query: "per_page=-1", wantErr: true},
		{name: "not a number", query: "page=abc", wantErr: true},
		{name: "above bound", query: "per_page=256", wantErr: true},
		{name: "page at bound", query: "page=4294967295&per_page=255", want: Pagination{Page: 4294967295, PerPage: 255}},
		{name: "page above bound", query: "page=700000000000000000&per_page=15", wantErr: true},
		{name: "page overflows int", query: "page=99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePagination(query(t, tt.query))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.BadRequestError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginationOffsetLimit(t *testing.T) {
	p := Pagination{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
	assert.Equal(t, 15, p.Limit())

	assert.Equal(t, 0, DefaultPagination().Offset())

	last := Pagination{Page: int(MaxPage), PerPage: MaxPerPage}
	assert.Positive(t, last.Offset())
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%%", ParseSearch(query(t, "")).Pattern())
	assert.Equal(t, "%ann%", ParseSearch(query(t, "search=ann")).Pattern())
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Sort
		wantErr bool
	}{
		{name: "absent", query: "", want: Sort{Column: "1", Direction: Asc}},
		{name: "column only", query: "sort=name", want: Sort{Column: "name", Direction: Asc}},
		{name: "column and direction", query: "sort=name:desc", want: Sort{Column: "name", Direction: Desc}},
		{name: "direction is case insensitive", query: "sort=name:DESC", want: Sort{Column: "name", Direction: Desc}},
		{name: "empty value", query: "sort=", wantErr: true},
		{name: "empty column", query: "sort=:asc", wantErr: true},
		{name: "bogus direction", query: "sort=name:bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(query(t, tt.query))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.BadRequestError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionSQL(t *testing.T) {
	assert.Equal(t, "ASC", Asc.SQL())
	assert.Equal(t, "DESC", Desc.SQL())
}

func TestParseList(t *testing.T) {
	list, err := ParseList(query(t, "page=2&per_page=10&search=bob&sort=mail:desc"))
	require.NoError(t, err)

	assert.Equal(t, 10, list.Offset())
	assert.Equal(t, "%bob%", list.Search.Pattern())
	assert.Equal(t, Sort{Column: "mail", Direction: Desc}, list.Sort)

	_, err = ParseList(query(t, "sort=name:up"))
	assert.Error(t, err)
}
