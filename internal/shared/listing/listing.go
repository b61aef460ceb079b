// Package listing turns list query strings into derived views and writes
// them in the response envelope. Shared by every resource handler.
package listing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vbasilioo/workly-web/internal/export"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/response"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/view"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Params struct {
	Tab      view.Tab
	Search   string
	Category string
	Order    view.Order
	Page     int
	PageSize int
}

// ParseParams reads tab, q, order, page, page_size and the category under categoryParam.
func ParseParams(c *gin.Context, categoryParam string) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	p := Params{
		Tab:      view.ParseTab(c.DefaultQuery("tab", string(view.TabActive))),
		Search:   c.Query("q"),
		Order:    view.ParseOrder(c.Query("order")),
		Page:     page,
		PageSize: pageSize,
	}
	if categoryParam != "" {
		p.Category = c.Query(categoryParam)
	}
	return p
}

func Query[T any](p Params, extra ...view.Predicate[T]) view.Query[T] {
	return view.Query[T]{
		Tab:      p.Tab,
		Search:   p.Search,
		Category: p.Category,
		Order:    p.Order,
		Extra:    extra,
	}
}

type Payload[T any] struct {
	Items      []T         `json:"items"`
	Counts     view.Counts `json:"counts"`
	Categories []string    `json:"categories"`
	State      store.State `json:"state"`
	// Warning is set when the list is the last loaded one because a refresh failed.
	Warning string `json:"warning,omitempty"`
}

// Respond writes one page of the derived view. A load error with a previous
// list still answers 200 with a warning; without one it is written as an error.
func Respond[T any](c *gin.Context, items []T, loadErr error, state store.State, spec view.Spec[T], p Params, q view.Query[T]) {
	if loadErr != nil && items == nil {
		response.FromError(c, loadErr)
		return
	}

	res := view.Build(items, spec, q)
	payload := Payload[T]{
		Items:      view.Page(res.Items, p.Page, p.PageSize),
		Counts:     res.Counts,
		Categories: res.Categories,
		State:      state,
	}
	if loadErr != nil {
		payload.Warning = apperror.ToHTTP(loadErr).Message
	}

	meta := response.NewPaginationMeta(int64(len(res.Items)), p.Page, p.PageSize)
	response.Success(c, http.StatusOK, payload, &meta)
}

// Export writes the full derived view, unpaginated, as a downloadable file.
func Export[T any](c *gin.Context, items []T, spec view.Spec[T], q view.Query[T], base string, toTable func([]T) export.Table) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.FromError(c, apperror.InvalidField("format"))
		return
	}

	table := toTable(view.Apply(items, spec, q))
	c.Header("Content-Disposition", `attachment; filename="`+format.Filename(base, time.Now())+`"`)
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, table); err != nil {
		_ = c.Error(err)
	}
}
