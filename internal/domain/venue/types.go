package venue

import (
	"errors"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid venue category")

type Category string

const (
	CategoryFootball   Category = "Football"
	CategoryCricket    Category = "Cricket"
	CategoryBadminton  Category = "Badminton"
	CategoryTennis     Category = "Tennis"
	CategoryBasketball Category = "Basketball"
	CategorySwimming   Category = "Swimming"
	CategoryEventHall  Category = "Event Hall"
)

// CategoryAll is accepted by listing filters only; no venue carries it.
const CategoryAll Category = "All"

var categories = []Category{
	CategoryFootball,
	CategoryCricket,
	CategoryBadminton,
	CategoryTennis,
	CategoryBasketball,
	CategorySwimming,
	CategoryEventHall,
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// NewCategory matches case-insensitively and returns the canonical spelling.
func NewCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range categories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}

// ParseCategoryFilter maps "" and "All" to CategoryAll.
func ParseCategoryFilter(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	return NewCategory(s)
}
