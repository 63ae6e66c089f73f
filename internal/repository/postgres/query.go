package postgres

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

// listSpec describes a collection query. where and search hold "?"
// placeholders; the built statement is rebound for postgres.
type listSpec struct {
	resource string
	columns  string
	from     string
	where    []string
	args     []interface{}
	search   []string
	sort     sortColumns
}

type builtQuery struct {
	query      string
	args       []interface{}
	countQuery string
	countArgs  []interface{}
}

func (s listSpec) build(q params.List) (builtQuery, error) {
	order, err := s.sort.resolve(q.Sort)
	if err != nil {
		return builtQuery{}, err
	}

	where := append([]string{}, s.where...)
	args := append([]interface{}{}, s.args...)
	if q.Search.Raw != "" && len(s.search) > 0 {
		preds := make([]string, len(s.search))
		for i, col := range s.search {
			preds[i] = col + " ILIKE ?"
			args = append(args, q.Search.Pattern())
		}
		where = append(where, "("+strings.Join(preds, " OR ")+")")
	}

	filter := ""
	if len(where) > 0 {
		filter = " WHERE " + strings.Join(where, " AND ")
	}

	orderBy := fmt.Sprintf("%s %s", order, q.Sort.Direction.SQL())
	if order != s.sort.pk {
		orderBy += ", " + s.sort.pk
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT ? OFFSET ?", s.columns, s.from, filter, orderBy)
	count := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", s.from, filter)

	return builtQuery{
		query:      sqlx.Rebind(sqlx.DOLLAR, query),
		args:       append(append([]interface{}{}, args...), q.Limit(), q.Offset()),
		countQuery: sqlx.Rebind(sqlx.DOLLAR, count),
		countArgs:  args,
	}, nil
}

// pageOnly lists in primary key order without search.
func pageOnly(p params.Pagination) params.List {
	return params.List{Pagination: p, Sort: params.DefaultSort()}
}

// setList collects the assignments of a partial update.
type setList struct {
	cols []string
	args []interface{}
}

func (s *setList) add(col string, value interface{}) {
	s.cols = append(s.cols, col)
	s.args = append(s.args, value)
}

func (s *setList) empty() bool {
	return len(s.cols) == 0
}

// build renders UPDATE table SET ... WHERE id = $n.
func (s *setList) build(table string, id int64) (string, []interface{}) {
	assignments := make([]string, len(s.cols))
	for i, col := range s.cols {
		assignments[i] = fmt.Sprintf("%s = $%d", quote(col), i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE \"id\" = $%d",
		quote(table), strings.Join(assignments, ", "), len(s.cols)+1)
	return query, append(append([]interface{}{}, s.args...), id)
}

func setIf[T any](s *setList, col string, v *T) {
	if v != nil {
		s.add(col, *v)
	}
}

func setNullable[T any](s *setList, col string, v model.Nullable[T]) {
	if v.Set {
		s.add(col, v.Arg())
	}
}
