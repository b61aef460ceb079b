package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/apiclient"
	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

func newClient(t *testing.T, h http.HandlerFunc, tokens session.TokenSource) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Config{
		BaseURL: srv.URL + "/",
		Timeout: time.Second,
		Breaker: apiclient.BreakerConfig{FailureThreshold: 2, OpenTimeout: time.Hour},
	}, tokens)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestResource_CRUD(t *testing.T) {
	var seen []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		seen = append(seen, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/widgets":
			writeJSON(w, http.StatusOK, []widget{{ID: "1", Name: "a", IsActive: true}, {ID: "2", Name: "b"}})
		case r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, widget{ID: "1", Name: "a", IsActive: true})
		case r.Method == http.MethodPost:
			var in widget
			_ = json.NewDecoder(r.Body).Decode(&in)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			in.ID, in.IsActive = "3", true
			writeJSON(w, http.StatusCreated, in)
		case r.Method == http.MethodPut:
			writeJSON(w, http.StatusOK, widget{ID: "1", Name: "renamed", IsActive: true})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}, session.StaticTokenSource("tok"))

	res := apiclient.NewResource[widget](c, "/api/widgets")
	ctx := context.Background()

	list, err := res.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := res.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	created, err := res.Create(ctx, widget{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)

	updated, err := res.Update(ctx, "1", map[string]string{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	require.NoError(t, res.Delete(ctx, "1"))
	require.NoError(t, res.Restore(ctx, "1"))

	assert.Equal(t, []string{
		"GET /api/widgets",
		"GET /api/widgets/1",
		"POST /api/widgets",
		"PUT /api/widgets/1",
		"DELETE /api/widgets/1",
		"PATCH /api/widgets/1/restore",
	}, seen)
}

func TestClient_MissingToken(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}, session.ContextTokenSource{})

	_, err := apiclient.NewResource[widget](c, "/api/widgets").List(context.Background())

	assert.True(t, apperror.IsAuth(err))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		kind    apperror.Kind
		message string
	}{
		{"bad request with list", http.StatusBadRequest, map[string]any{"message": []string{"email must be an email", "name should not be empty"}}, apperror.KindValidation, "email must be an email; name should not be empty"},
		{"conflict", http.StatusConflict, map[string]any{"message": "Key already exists"}, apperror.KindValidation, "Key already exists"},
		{"unprocessable", http.StatusUnprocessableEntity, nil, apperror.KindValidation, apperror.ErrInvalidInput.Message},
		{"unauthorized", http.StatusUnauthorized, map[string]any{"message": "Unauthorized"}, apperror.KindAuth, "Unauthorized"},
		{"forbidden", http.StatusForbidden, nil, apperror.KindAuth, apperror.ErrForbidden.Message},
		{"not found", http.StatusNotFound, map[string]any{"message": "Employee not found"}, apperror.KindNotFound, "Employee not found"},
		{"server", http.StatusInternalServerError, map[string]any{"message": "boom"}, apperror.KindServer, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, tt.body)
			}, session.StaticTokenSource("tok"))

			_, err := apiclient.NewResource[widget](c, "/api/widgets").Get(context.Background(), "1")

			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
			assert.Equal(t, tt.message, apperror.ToHTTP(err).Message)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := apiclient.New(apiclient.Config{BaseURL: url, Timeout: time.Second}, session.StaticTokenSource("tok"))

	err := apiclient.NewResource[widget](c, "/api/widgets").Delete(context.Background(), "1")

	assert.True(t, apperror.IsNetwork(err))
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var calls int32
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}, session.StaticTokenSource("tok"))
	res := apiclient.NewResource[widget](c, "/api/widgets")
	ctx := context.Background()

	_, err := res.List(ctx)
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))
	_, _ = res.List(ctx)
	assert.Equal(t, apiclient.BreakerOpen, c.BreakerState())

	_, err = res.List(ctx)

	assert.True(t, apperror.IsNetwork(err))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, session.StaticTokenSource("tok"))
	res := apiclient.NewResource[widget](c, "/api/widgets")

	for i := 0; i < 5; i++ {
		_, err := res.Get(context.Background(), "missing")
		assert.True(t, apperror.IsNotFound(err))
	}
	assert.Equal(t, apiclient.BreakerClosed, c.BreakerState())
}

func TestClient_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-r.Context().Done():
		}
		writeJSON(w, http.StatusOK, []widget{{ID: "1", Name: "a", IsActive: true}})
	}, session.StaticTokenSource("tok"))
	res := apiclient.NewResource[widget](c, "/api/widgets")

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		_, err := res.List(ctx)
		cancel()
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
	assert.Equal(t, apiclient.BreakerClosed, c.BreakerState())

	list, err := res.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
