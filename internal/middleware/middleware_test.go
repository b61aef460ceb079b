package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/middleware"
	"github.com/vbasilioo/workly-web/internal/rbac"
	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "test-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware(t *testing.T) {
	token, err := session.Issue(secret, "u-1", "Ana", "ana@x.com", session.RoleUser, time.Hour)
	require.NoError(t, err)

	r := setupRouter()
	r.GET("/me", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    contextutil.GetRole(ctx),
			"token":   contextutil.GetBearerToken(ctx),
		})
	})

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
		assert.Contains(t, w.Body.String(), `"role":"user"`)
		assert.Contains(t, w.Body.String(), token)
	})

	t.Run("padded bearer header is forwarded trimmed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer  "+token+"  ")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"`+token+`"`)
	})

	t.Run("cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("bad token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeRBAC struct {
	allowed bool
	err     error
	got     rbac.EnforceRequest
}

func (f *fakeRBAC) Enforce(req rbac.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func TestRBACAuthorize(t *testing.T) {
	run := func(svc middleware.RBACService, role string) *httptest.ResponseRecorder {
		r := setupRouter()
		r.DELETE("/users/:id", func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
			c.Next()
		}, middleware.RBACAuthorize(svc, "user", "delete"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}

		w := run(svc, "administrator")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, rbac.EnforceRequest{Role: "administrator", Resource: "user", Action: "delete"}, svc.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := run(&fakeRBAC{}, "user")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "user:delete")
	})

	t.Run("no role", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run(&fakeRBAC{allowed: true}, "").Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, run(&fakeRBAC{err: errors.New("boom")}, "user").Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := setupRouter()
	r.POST("/things", func(c *gin.Context) {
		c.Set("user_id", c.Query("u"))
		c.Next()
	}, middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(user string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/things?u="+user, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send("a"))
	assert.Equal(t, http.StatusTooManyRequests, send("a"))
	assert.Equal(t, http.StatusCreated, send("b"))
	assert.Equal(t, http.StatusCreated, send(""))
	assert.Equal(t, http.StatusCreated, send(""))
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-1", w.Body.String())
	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 65))
	r.ServeHTTP(w, req)
	assert.Len(t, w.Body.String(), 36)
}

func TestIdempotency(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := setupRouter()
	r.POST("/things", middleware.Idempotency(rdb, time.Hour, zap.NewNop()), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"id": "1"})
	})

	send := func(key string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/things", nil)
		if key != "" {
			req.Header.Set(middleware.IdempotencyHeader, key)
		}
		r.ServeHTTP(w, req)
		return w
	}

	cacheKey := "idemp:/things::k1"
	lockKey := cacheKey + ":lock"

	t.Run("first request runs and is stored", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"id":"1"}}`), time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := send("k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retry is replayed", func(t *testing.T) {
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"id":"1"}}`)

		w := send("k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 1, calls)
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := send("k1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("redis down lets the request through", func(t *testing.T) {
		mock.ExpectGet(cacheKey).SetErr(errors.New("redis down"))

		w := send("k1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 2, calls)
	})

	t.Run("no key", func(t *testing.T) {
		send("")
		assert.Equal(t, 3, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
