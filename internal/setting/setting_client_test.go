package setting_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/apiclient"
	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/setting"
	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingClient(t *testing.T, h http.HandlerFunc) setting.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	api := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: time.Second}, session.StaticTokenSource("tok"))
	return setting.NewClient(api)
}

func TestSettingClient_Update_OmitsKey(t *testing.T) {
	c := newSettingClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/settings/s1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "key")
		assert.Equal(t, false, body["value"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(setting.Setting{ID: "s1", Key: "maintenance_mode", Value: false, IsActive: true})
	})

	key := "maintenance_mode"
	s, err := c.Update(context.Background(), "s1", setting.UpdateSettingRequest{Key: &key, Value: false})
	require.NoError(t, err)
	assert.Equal(t, "maintenance_mode", s.Key)
}

func TestSettingClient_Create_Conflict(t *testing.T) {
	c := newSettingClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Key already in use","statusCode":409}`))
	})

	_, err := c.Create(context.Background(), setting.CreateSettingRequest{Key: "smtp_port", Value: 587.0, Group: "email"})
	assert.ErrorIs(t, err, settingerrors.ErrSettingKeyExists)
}
