// Package params parses the query parameters shared by every collection
// endpoint: pagination, free-text search and sort.
package params

import "net/url"

// List groups the three parameter sets of a collection request.
type List struct {
	Pagination
	Search Search
	Sort   Sort
}

// ParseList parses pagination, search and sort from q.
func ParseList(q url.Values) (List, error) {
	pagination, err := ParsePagination(q)
	if err != nil {
		return List{}, err
	}
	sort, err := ParseSort(q)
	if err != nil {
		return List{}, err
	}
	return List{
		Pagination: pagination,
		Search:     ParseSearch(q),
		Sort:       sort,
	}, nil
}
