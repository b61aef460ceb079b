package listing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vbasilioo/workly-web/internal/export"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/listing"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Active bool   `json:"active"`
}

var spec = view.Spec[row]{
	Searchable: func(r row) []string { return []string{r.Name} },
	Category:   func(r row) string { return r.Group },
	SortKey:    func(r row) string { return r.Name },
	Active:     func(r row) bool { return r.Active },
}

var rows = []row{
	{Name: "c", Group: "x", Active: true},
	{Name: "a", Group: "y", Active: true},
	{Name: "b", Group: "x", Active: false},
}

type envelope struct {
	Ok   bool                 `json:"ok"`
	Data listing.Payload[row] `json:"data"`
	Meta map[string]any       `json:"meta"`
	Err  map[string]any       `json:"error"`
}

func serve(t *testing.T, target string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/rows", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRespond(t *testing.T) {
	t.Run("paginates the derived view", func(t *testing.T) {
		w := serve(t, "/rows?tab=active&order=asc&page=1&page_size=1", func(c *gin.Context) {
			p := listing.ParseParams(c, "group")
			listing.Respond(c, rows, nil, store.State{}, spec, p, listing.Query[row](p))
		})

		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, []row{{Name: "a", Group: "y", Active: true}}, env.Data.Items)
		assert.Equal(t, view.Counts{All: 3, Active: 2, Inactive: 1}, env.Data.Counts)
		assert.Equal(t, float64(2), env.Meta["total"])
		assert.Equal(t, float64(2), env.Meta["totalPages"])
	})

	t.Run("stale list answers with a warning", func(t *testing.T) {
		w := serve(t, "/rows?tab=inactive", func(c *gin.Context) {
			p := listing.ParseParams(c, "group")
			listing.Respond(c, rows, apperror.ErrNetwork, store.State{Stale: true}, spec, p, listing.Query[row](p))
		})

		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Len(t, env.Data.Items, 1)
		assert.True(t, env.Data.State.Stale)
		assert.Equal(t, apperror.ErrNetwork.Message, env.Data.Warning)
	})

	t.Run("failure without a list is an error", func(t *testing.T) {
		w := serve(t, "/rows", func(c *gin.Context) {
			p := listing.ParseParams(c, "")
			listing.Respond[row](c, nil, apperror.ErrUnauthorized, store.State{}, spec, p, listing.Query[row](p))
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestParseParams(t *testing.T) {
	serve(t, "/rows?page=-1&page_size=1000&q=%20ana%20&group=TI&tab=all&order=desc", func(c *gin.Context) {
		p := listing.ParseParams(c, "group")

		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 100, p.PageSize)
		assert.Equal(t, " ana ", p.Search)
		assert.Equal(t, "TI", p.Category)
		assert.Equal(t, view.TabAll, p.Tab)
		assert.Equal(t, view.OrderDesc, p.Order)
	})
}

func TestExport(t *testing.T) {
	toTable := func(items []row) export.Table {
		t := export.Table{Headers: []string{"Name"}}
		for _, r := range items {
			t.Rows = append(t.Rows, []string{r.Name})
		}
		return t
	}

	t.Run("csv", func(t *testing.T) {
		w := serve(t, "/rows?tab=active&order=asc", func(c *gin.Context) {
			p := listing.ParseParams(c, "")
			listing.Export(c, rows, spec, listing.Query[row](p), "rows", toTable)
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "rows-")
		assert.Equal(t, "Name\na\nc\n", w.Body.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		w := serve(t, "/rows?format=xlsx", func(c *gin.Context) {
			p := listing.ParseParams(c, "")
			listing.Export(c, rows, spec, listing.Query[row](p), "rows", toTable)
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
