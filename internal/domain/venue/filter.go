package venue

import "strings"

// Filter selects venues for the customer directory.
type Filter struct {
	Category Category
	Query    string
}

func NewFilter(category, query string) (Filter, error) {
	c, err := ParseCategoryFilter(category)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Category: c, Query: strings.TrimSpace(query)}, nil
}

func (f Filter) IsAllCategories() bool {
	return f.Category == CategoryAll || f.Category == ""
}

// Match reports whether a listing passes the category narrowing and the
// case-insensitive substring query over name, location and category.
func (f Filter) Match(name, location string, category Category) bool {
	if !f.IsAllCategories() && category != f.Category {
		return false
	}
	return MatchesQuery(f.Query, name, location, category.String())
}

// MatchesQuery is true for an empty query or when any field contains it.
func MatchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
