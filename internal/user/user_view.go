package user

import (
	"github.com/vbasilioo/workly-web/internal/export"
	"github.com/vbasilioo/workly-web/internal/view"

	"golang.org/x/text/language"
)

// ViewSpec has no Active func: users are deleted, never deactivated.
func ViewSpec(locale language.Tag) view.Spec[User] {
	return view.Spec[User]{
		Searchable: func(u User) []string { return []string{u.Name, u.Email} },
		Category:   func(u User) string { return u.Role },
		SortKey:    func(u User) string { return u.Name },
		Locale:     locale,
	}
}

func ExportTable(items []User) export.Table {
	t := export.Table{
		Title:   "Users",
		Headers: []string{"Name", "Email", "Role", "Created at"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, u := range items {
		t.Rows = append(t.Rows, []string{u.Name, u.Email, u.Role, u.CreatedAt.Format("2006-01-02")})
	}
	return t
}
