package params

import "net/url"

// Search is a case-insensitive substring filter. The empty value matches
// every row.
type Search struct {
	Raw string
}

func ParseSearch(q url.Values) Search {
	return Search{Raw: q.Get("search")}
}

// Pattern wraps the raw value for use as a bound ILIKE argument.
func (s Search) Pattern() string {
	return "%" + s.Raw + "%"
}
