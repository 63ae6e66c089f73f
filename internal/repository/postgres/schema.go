package postgres

import (
	"fmt"
	"strings"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

// tables lists the columns of every table. It is the only source of
// identifiers that may be spliced into a statement.
var tables = map[string][]string{
	"addresses":         {"id", "number", "street_name", "postcode", "city_name", "complement", "id_zone"},
	"availabilities":    {"id", "start", "end", "recurrent", "id_nurse"},
	"centers":           {"id", "name", "desc", "workday_start", "workday_end", "range_km", "id_address"},
	"l_missions_skills": {"id_mission_type", "id_skill", "preferred"},
	"l_nurses_skills":   {"id_nurse", "id_skill"},
	"l_visits_nurses":   {"id_visit", "id_nurse", "report"},
	"managers":          {"id", "id_user", "id_center"},
	"mission_types":     {"id", "name", "people_required", "minutes_duration"},
	"missions":          {"id", "desc", "start", "end", "recurrence_days", "people_required", "id_mission_type", "id_patient"},
	"nurses":            {"id", "minutes_per_week", "id_user", "id_address"},
	"patients":          {"id", "id_user", "id_address"},
	"skills":            {"id", "name"},
	"users":             {"id", "fname", "lname", "mail", "phone", "password", "token", "token_gentime", "id_center"},
	"visits":            {"id", "start", "end", "id_mission"},
	"zones":             {"id", "name", "id_center"},
}

// hidden columns are never selected nor sortable.
var hidden = map[string]bool{
	"password":      true,
	"token":         true,
	"token_gentime": true,
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// source is a table as it appears in a FROM clause.
type source struct {
	table string
	alias string
}

func (s source) column(name string) string {
	return s.alias + "." + quote(name)
}

// sortColumns resolves public sort names to qualified column expressions.
type sortColumns struct {
	pk      string
	columns map[string]string
}

// newSortColumns accepts every visible column of the given sources, both
// as "col" and as "table.col". On a name clash the first source wins. The
// first source's id is the primary key.
func newSortColumns(sources ...source) sortColumns {
	sc := sortColumns{columns: make(map[string]string)}
	for i, src := range sources {
		cols, ok := tables[src.table]
		if !ok {
			panic(fmt.Sprintf("postgres: unknown table %q", src.table))
		}
		for _, col := range cols {
			if hidden[col] {
				continue
			}
			expr := src.column(col)
			if _, taken := sc.columns[col]; !taken {
				sc.columns[col] = expr
			}
			sc.columns[src.table+"."+col] = expr
		}
		if i == 0 {
			sc.pk = src.column("id")
		}
	}
	return sc
}

// resolve returns the ORDER BY expression for a sort. Unknown columns are a
// client error.
func (sc sortColumns) resolve(s params.Sort) (string, error) {
	if s.IsDefault() {
		return sc.pk, nil
	}
	expr, ok := sc.columns[s.Column]
	if !ok {
		return "", apperrors.NewBadRequest(fmt.Sprintf("unknown sort column '%s'", s.Column), nil)
	}
	return expr, nil
}

// pick projects columns of one source. With a prefix, each column is
// aliased so sqlx scans it into the nested struct of that name.
func pick(src source, prefix string, cols ...string) string {
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		if prefix == "" {
			parts = append(parts, src.column(col))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s AS %s", src.column(col), quote(prefix+"."+col)))
	}
	return strings.Join(parts, ", ")
}

// visible returns the selectable columns of a table.
func visible(table string) []string {
	var cols []string
	for _, col := range tables[table] {
		if !hidden[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

func projection(parts ...string) string {
	return strings.Join(parts, ", ")
}

// Fixed aliases shared by every joined statement.
var (
	userSource    = source{"users", "u"}
	addressSource = source{"addresses", "a"}
	// zones joined through an address, giving the tenant of a person.
	addressZoneSource = source{"zones", "z"}
)

func nested(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// personColumns projects a person record flattened with its user profile,
// its center and its nested address.
func personColumns(record source, prefix string, recordCols ...string) string {
	return projection(
		pick(record, prefix, recordCols...),
		pick(userSource, prefix, "fname", "lname", "mail", "phone"),
		pick(addressZoneSource, prefix, "id_center"),
		pick(addressSource, nested(prefix, "address"), visible("addresses")...),
	)
}

// personJoins joins the user, address and zone of a person record.
func personJoins(record source) string {
	return `JOIN users u ON u."id" = ` + record.column("id_user") + `
		JOIN addresses a ON a."id" = ` + record.column("id_address") + `
		JOIN zones z ON z."id" = a."id_zone"`
}
