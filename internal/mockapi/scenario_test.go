package mockapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/setting"
	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/view"
	"github.com/vbasilioo/workly-web/internal/workspace"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func setupWorkspace(t *testing.T) (*workspace.Workspace, *notify.Recorder, context.Context) {
	t.Helper()
	ts := newServer(t)
	toasts := &notify.Recorder{}

	defaults, err := setting.Defaults()
	require.NoError(t, err)

	reg := workspace.NewRegistry(workspace.Config{
		API:             apiFor(t, ts),
		Cache:           store.NewMemoryCache(),
		TTL:             time.Minute,
		Notifier:        toasts,
		SettingDefaults: defaults,
	})

	ctx := contextutil.WithUserID(context.Background(), "4f7d3c1a-2b8e-4a55-9c0d-6e1f2a3b4c5d")
	ws, err := reg.Get(ctx)
	require.NoError(t, err)
	return ws, toasts, ctx
}

func TestScenario_EmployeeDeactivation(t *testing.T) {
	ws, toasts, ctx := setupWorkspace(t)
	spec := employee.ViewSpec(language.BrazilianPortuguese)

	created, err := ws.Employees.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Ana Lima", Email: "ana.lima@workly.com", Position: "Analista", Department: "RH",
		HireDate: "2024-03-01", Salary: decimal.NewFromInt(6000),
	})
	require.NoError(t, err)

	list, err := ws.Employees.List(ctx)
	require.NoError(t, err)
	active := view.Apply(list, spec, view.Query[employee.Employee]{Tab: view.TabActive, Search: "ana"})
	require.Len(t, active, 1)
	assert.Equal(t, "Ana Lima", active[0].Name)

	require.NoError(t, ws.Employees.Deactivate(ctx, created.ID))

	list, err = ws.Employees.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Apply(list, spec, view.Query[employee.Employee]{Tab: view.TabActive, Search: "ana"}))

	inactive := view.Apply(list, spec, view.Query[employee.Employee]{Tab: view.TabInactive, Search: "ana"})
	require.Len(t, inactive, 1)
	assert.Equal(t, created.ID, inactive[0].ID)

	toast, ok := toasts.Last()
	require.True(t, ok)
	assert.Equal(t, "Employee deactivated successfully", toast.Message)
}

func TestScenario_MaintenanceMode(t *testing.T) {
	ws, toasts, ctx := setupWorkspace(t)

	list, err := ws.Settings.List(ctx)
	require.NoError(t, err)

	var maintenance setting.Setting
	for _, s := range list {
		if s.Key == "maintenance_mode" {
			maintenance = s
		}
	}
	require.Equal(t, false, maintenance.Value)

	updated, err := ws.Settings.Update(ctx, maintenance.ID, setting.UpdateSettingRequest{
		Form: &setting.FormValue{Kind: setting.KindBoolean, Raw: "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, true, updated.Value)

	renamed := "maintenance"
	_, err = ws.Settings.Update(ctx, maintenance.ID, setting.UpdateSettingRequest{Key: &renamed})
	assert.ErrorIs(t, err, settingerrors.ErrKeyImmutable)
	assert.True(t, apperror.IsValidation(err))

	list, err = ws.Settings.List(ctx)
	require.NoError(t, err)
	for _, s := range list {
		if s.ID == maintenance.ID {
			assert.Equal(t, "maintenance_mode", s.Key)
			assert.Equal(t, true, s.Value)
		}
	}

	toast, _ := toasts.Last()
	assert.Equal(t, "Setting updated successfully", toast.Message)
}
