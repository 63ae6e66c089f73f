package params

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc or desc in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", fmt.Errorf("invalid direction '%s', expected 'asc' or 'desc'", s)
}

// SQL returns the keyword used in an ORDER BY clause.
func (d Direction) SQL() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// DefaultColumn sorts on the primary key of the listed resource.
const DefaultColumn = "1"

// Sort is a single column and direction. Column is a public name that
// still has to be resolved against the resource's allow-list.
type Sort struct {
	Column    string
	Direction Direction
}

func DefaultSort() Sort {
	return Sort{Column: DefaultColumn, Direction: Asc}
}

// ParseSort reads sort=<column>[:asc|desc]. An absent key gives the
// default order, an empty column is an error.
func ParseSort(q url.Values) (Sort, error) {
	raw, ok := lookup(q, "sort")
	if !ok {
		return DefaultSort(), nil
	}

	col, dir, hasDir := strings.Cut(raw, ":")
	if col == "" {
		return Sort{}, apperrors.NewBadRequest("sort column is empty", nil)
	}

	s := Sort{Column: col, Direction: Asc}
	if hasDir {
		d, err := ParseDirection(dir)
		if err != nil {
			return Sort{}, apperrors.NewBadRequest(err.Error(), err)
		}
		s.Direction = d
	}
	return s, nil
}

func (s Sort) IsDefault() bool {
	return s.Column == DefaultColumn
}
