package employee

import (
	"github.com/vbasilioo/workly-web/internal/export"
	"github.com/vbasilioo/workly-web/internal/view"

	"golang.org/x/text/language"
)

// ViewSpec searches name, email, CPF and position, filters by department and
// sorts by name.
func ViewSpec(locale language.Tag) view.Spec[Employee] {
	return view.Spec[Employee]{
		Searchable: func(e Employee) []string { return []string{e.Name, e.Email, e.CPF, e.Position} },
		Category:   func(e Employee) string { return e.Department },
		SortKey:    func(e Employee) string { return e.Name },
		Active:     func(e Employee) bool { return e.IsActive },
		Locale:     locale,
	}
}

func ExportTable(items []Employee) export.Table {
	t := export.Table{
		Title:   "Employees",
		Headers: []string{"Name", "Email", "Phone", "Position", "Department", "Hire date", "Salary", "Status"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, e := range items {
		status := "Active"
		if !e.IsActive {
			status = "Inactive"
		}
		t.Rows = append(t.Rows, []string{
			e.Name, e.Email, e.Phone, e.Position, e.Department, e.HireDate, e.Salary.StringFixed(2), status,
		})
	}
	return t
}
