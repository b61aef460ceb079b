package notify_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubDrainer struct {
	items  []notify.Notification
	err    error
	userID string
}

func (s *stubDrainer) Drain(_ context.Context, userID string) ([]notify.Notification, error) {
	s.userID = userID
	return s.items, s.err
}

func notificationsRouter(queue notify.Drainer, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), userID))
		}
		c.Next()
	})
	r.GET("/notifications", notify.NewHandler(queue).Drain)
	return r
}

func TestHandler_Drain(t *testing.T) {
	t.Run("returns queued toasts", func(t *testing.T) {
		q := &stubDrainer{items: []notify.Notification{{ID: "n1", Level: notify.LevelSuccess, Message: "Employee created successfully"}}}
		w := httptest.NewRecorder()
		notificationsRouter(q, "user-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", q.userID)
		assert.Contains(t, w.Body.String(), "Employee created successfully")
	})

	t.Run("no queue configured", func(t *testing.T) {
		var q notify.Drainer
		w := httptest.NewRecorder()
		notificationsRouter(q, "user-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("queue failure", func(t *testing.T) {
		q := &stubDrainer{err: errors.New("redis down")}
		w := httptest.NewRecorder()
		notificationsRouter(q, "user-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		notificationsRouter(nil, "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
