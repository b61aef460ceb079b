package address

import (
	"github.com/vbasilioo/workly-web/internal/export"
	"github.com/vbasilioo/workly-web/internal/view"

	"golang.org/x/text/language"
)

func ViewSpec(locale language.Tag) view.Spec[Address] {
	return view.Spec[Address]{
		Searchable: func(a Address) []string { return []string{a.Street, a.City, a.State, a.ZipCode} },
		Category:   func(a Address) string { return a.Type },
		SortKey:    func(a Address) string { return a.City },
		Active:     func(a Address) bool { return a.IsActive },
		Locale:     locale,
	}
}

func ExportTable(items []Address) export.Table {
	t := export.Table{
		Title:   "Addresses",
		Headers: []string{"Street", "Number", "Neighborhood", "City", "State", "Zip code", "Type", "Status"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, a := range items {
		status := "Active"
		if !a.IsActive {
			status = "Inactive"
		}
		t.Rows = append(t.Rows, []string{a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode, a.Type, status})
	}
	return t
}
