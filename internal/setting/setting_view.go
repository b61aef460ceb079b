package setting

import (
	"strings"

	"github.com/vbasilioo/workly-web/internal/export"
	"github.com/vbasilioo/workly-web/internal/view"

	"golang.org/x/text/language"
)

type Visibility string

const (
	VisibilityAll     Visibility = "all"
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func ParseVisibility(s string) Visibility {
	switch Visibility(strings.ToLower(strings.TrimSpace(s))) {
	case VisibilityPublic:
		return VisibilityPublic
	case VisibilityPrivate:
		return VisibilityPrivate
	default:
		return VisibilityAll
	}
}

// Predicate is nil for VisibilityAll.
func (v Visibility) Predicate() view.Predicate[Setting] {
	switch v {
	case VisibilityPublic:
		return func(s Setting) bool { return s.IsPublic }
	case VisibilityPrivate:
		return func(s Setting) bool { return !s.IsPublic }
	default:
		return nil
	}
}

// ViewSpec searches key, description and the value as text, filters by group
// and sorts by key.
func ViewSpec(locale language.Tag) view.Spec[Setting] {
	return view.Spec[Setting]{
		Searchable: func(s Setting) []string { return []string{s.Key, s.Description, Text(s.Value)} },
		Category:   func(s Setting) string { return s.Group },
		SortKey:    func(s Setting) string { return s.Key },
		Active:     func(s Setting) bool { return s.IsActive },
		Locale:     locale,
	}
}

func ExportTable(items []Setting) export.Table {
	t := export.Table{
		Title:   "Settings",
		Headers: []string{"Key", "Value", "Group", "Description", "Visibility", "Status"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, s := range items {
		visibility, status := "Private", "Active"
		if s.IsPublic {
			visibility = "Public"
		}
		if !s.IsActive {
			status = "Inactive"
		}
		t.Rows = append(t.Rows, []string{s.Key, Text(s.Value), s.Group, s.Description, visibility, status})
	}
	return t
}
