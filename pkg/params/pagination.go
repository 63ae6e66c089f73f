package params

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
	MaxPerPage     = 255

	// MaxPage keeps PerPage*(Page-1) within int64.
	MaxPage int64 = math.MaxUint32
)

// Pagination selects one page of a collection.
type Pagination struct {
	Page    int
	PerPage int
}

func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, PerPage: DefaultPerPage}
}

// ParsePagination reads page and per_page (or perPage) from the query
// string. Missing values fall back to the defaults.
func ParsePagination(q url.Values) (Pagination, error) {
	p := DefaultPagination()

	if raw, ok := lookup(q, "page"); ok {
		page, err := positive("page", raw)
		if err != nil {
			return p, err
		}
		if int64(page) > MaxPage {
			return p, apperrors.NewBadRequest(fmt.Sprintf("page must be at most %d", MaxPage), nil)
		}
		p.Page = page
	}

	if raw, ok := lookup(q, "per_page", "perPage"); ok {
		perPage, err := positive("per_page", raw)
		if err != nil {
			return p, err
		}
		if perPage > MaxPerPage {
			return p, apperrors.NewBadRequest(fmt.Sprintf("per_page must be at most %d", MaxPerPage), nil)
		}
		p.PerPage = perPage
	}

	return p, nil
}

func (p Pagination) Offset() int {
	return p.PerPage * (p.Page - 1)
}

func (p Pagination) Limit() int {
	return p.PerPage
}

func lookup(q url.Values, keys ...string) (string, bool) {
	for _, key := range keys {
		if values, ok := q[key]; ok && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

func positive(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewBadRequest(fmt.Sprintf("%s must be an integer", name), err)
	}
	if n < 1 {
		return 0, apperrors.NewBadRequest(fmt.Sprintf("%s must be greater than zero", name), nil)
	}
	return n, nil
}
