package workspace_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/apiclient"
	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userCtx(userID, token string) context.Context {
	ctx := contextutil.WithUserID(context.Background(), userID)
	return contextutil.WithBearerToken(ctx, token)
}

func TestRegistry_IsolatesUsers(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		list := []employee.Employee{{ID: "1", Name: "Ana Lima", IsActive: true}}
		if r.Header.Get("Authorization") == "Bearer tok-b" {
			list = append(list, employee.Employee{ID: "2", Name: "Bruno", IsActive: true})
		}
		_ = json.NewEncoder(w).Encode(list)
	}))
	t.Cleanup(srv.Close)

	api := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: time.Second}, session.ContextTokenSource{})
	reg := workspace.NewRegistry(workspace.Config{
		API:      api,
		Cache:    store.NewMemoryCache(),
		TTL:      time.Minute,
		Notifier: &notify.Recorder{},
	})

	ctxA, ctxB := userCtx("a", "tok-a"), userCtx("b", "tok-b")

	svcA, err := reg.Employees(ctxA)
	require.NoError(t, err)
	listA, err := svcA.List(ctxA)
	require.NoError(t, err)
	assert.Len(t, listA, 1)

	svcB, err := reg.Employees(ctxB)
	require.NoError(t, err)
	listB, err := svcB.List(ctxB)
	require.NoError(t, err)
	assert.Len(t, listB, 2)

	again, err := reg.Employees(ctxA)
	require.NoError(t, err)
	assert.Same(t, svcA, again)

	_, err = again.List(ctxA)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_RequiresUser(t *testing.T) {
	reg := workspace.NewRegistry(workspace.Config{
		API: apiclient.New(apiclient.Config{BaseURL: "http://127.0.0.1:1"}, session.ContextTokenSource{}),
	})

	_, err := reg.Settings(context.Background())
	assert.True(t, apperror.IsAuth(err))
	assert.Equal(t, 0, reg.Len())
}
