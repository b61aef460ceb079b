// Package view computes the derived list views shown on resource pages:
// tab partition, text search, categorical filter and locale-aware sort.
// Every function is pure and leaves its input untouched.
package view

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Tab string

const (
	TabAll      Tab = "all"
	TabActive   Tab = "active"
	TabInactive Tab = "inactive"
)

// ParseTab falls back to the active tab for unknown values.
func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabAll:
		return TabAll
	case TabInactive:
		return TabInactive
	default:
		return TabActive
	}
}

type Order string

const (
	OrderNone Order = ""
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func ParseOrder(s string) Order {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case OrderAsc:
		return OrderAsc
	case OrderDesc:
		return OrderDesc
	default:
		return OrderNone
	}
}

// Toggle flips the direction. An unsorted view becomes ascending.
func (o Order) Toggle() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// Predicate is an extra filter stage. Nil predicates are skipped.
type Predicate[T any] func(T) bool

type Query[T any] struct {
	Tab      Tab
	Search   string
	Category string
	Order    Order
	Extra    []Predicate[T]
}

// Spec describes how one resource kind is searched, filtered and sorted.
type Spec[T any] struct {
	Searchable func(T) []string
	Category   func(T) string
	SortKey    func(T) string
	// Active is nil for kinds without a lifecycle; every tab then shows all items.
	Active func(T) bool
	Locale language.Tag
}

type Counts struct {
	All      int `json:"all"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type Result[T any] struct {
	Items      []T      `json:"items"`
	Counts     Counts   `json:"counts"`
	Categories []string `json:"categories"`
}

// Filter runs partition, search, category and extra predicates in order.
func Filter[T any](items []T, spec Spec[T], q Query[T]) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !inTab(item, spec, q.Tab) {
			continue
		}
		if term != "" && !matches(item, spec, term) {
			continue
		}
		if category != "" && (spec.Category == nil || spec.Category(item) != category) {
			continue
		}
		if !passes(item, q.Extra) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func inTab[T any](item T, spec Spec[T], tab Tab) bool {
	if spec.Active == nil || tab == TabAll || tab == "" {
		return true
	}
	return spec.Active(item) == (tab == TabActive)
}

func matches[T any](item T, spec Spec[T], term string) bool {
	if spec.Searchable == nil {
		return false
	}
	for _, field := range spec.Searchable(item) {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func passes[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Sort returns a sorted copy. OrderNone returns an unsorted copy.
func Sort[T any](items []T, spec Spec[T], order Order) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	if order == OrderNone || spec.SortKey == nil {
		return out
	}

	// collate.Collator keeps internal buffers, one per call
	col := collate.New(spec.locale())
	cmp := func(a, b T) int {
		return col.CompareString(spec.SortKey(a), spec.SortKey(b))
	}
	if order == OrderDesc {
		asc := cmp
		cmp = func(a, b T) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, cmp)
	return out
}

func (s Spec[T]) locale() language.Tag {
	if s.Locale == language.Und {
		return language.BrazilianPortuguese
	}
	return s.Locale
}

// Apply filters then sorts.
func Apply[T any](items []T, spec Spec[T], q Query[T]) []T {
	return Sort(Filter(items, spec, q), spec, q.Order)
}

// Build applies q and collects the tab counts and filter options of the full list.
func Build[T any](items []T, spec Spec[T], q Query[T]) Result[T] {
	return Result[T]{
		Items:      Apply(items, spec, q),
		Counts:     Count(items, spec),
		Categories: Categories(items, spec),
	}
}

func Count[T any](items []T, spec Spec[T]) Counts {
	c := Counts{All: len(items)}
	for _, item := range items {
		if spec.Active == nil || spec.Active(item) {
			c.Active++
		} else {
			c.Inactive++
		}
	}
	return c
}

// Categories lists distinct non-empty category values in first-seen order.
func Categories[T any](items []T, spec Spec[T]) []string {
	out := []string{}
	if spec.Category == nil {
		return out
	}
	seen := make(map[string]struct{})
	for _, item := range items {
		v := spec.Category(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Page slices items for the given 1-based page. Out of range pages are empty.
func Page[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
