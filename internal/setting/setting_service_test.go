package setting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/setting"
	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
	settingMock "github.com/vbasilioo/workly-web/internal/setting/mock"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

type serviceDeps struct {
	service setting.Service
	client  *settingMock.MockClient
	toasts  *notify.Recorder
}

func setupServiceTest(t *testing.T, defaults ...setting.CreateSettingRequest) *serviceDeps {
	ctrl := gomock.NewController(t)
	client := settingMock.NewMockClient(ctrl)
	toasts := &notify.Recorder{}
	svc := setting.NewService(client, store.Options{
		Scope:    "user-1",
		Cache:    store.NewMemoryCache(),
		TTL:      time.Minute,
		Notifier: toasts,
	}, defaults)
	return &serviceDeps{service: svc, client: client, toasts: toasts}
}

// upstream is a tiny in-memory stand-in for the settings API.
type upstream struct {
	items []setting.Setting
}

func (u *upstream) list(context.Context) ([]setting.Setting, error) {
	out := make([]setting.Setting, len(u.items))
	copy(out, u.items)
	return out, nil
}

func (u *upstream) find(id string) *setting.Setting {
	for i := range u.items {
		if u.items[i].ID == id {
			return &u.items[i]
		}
	}
	return nil
}

func TestSettingService_MaintenanceModeScenario(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	api := &upstream{}

	deps.client.EXPECT().List(gomock.Any()).DoAndReturn(api.list).AnyTimes()
	deps.client.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req setting.CreateSettingRequest) (setting.Setting, error) {
			s := setting.Setting{ID: "s1", Key: req.Key, Value: req.Value, Group: req.Group, IsPublic: req.IsPublic, IsActive: true}
			api.items = append(api.items, s)
			return s, nil
		})
	deps.client.EXPECT().GetByID(gomock.Any(), "s1").
		DoAndReturn(func(_ context.Context, id string) (setting.Setting, error) {
			return *api.find(id), nil
		}).Times(2)
	deps.client.EXPECT().Update(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, req setting.UpdateSettingRequest) (setting.Setting, error) {
			s := api.find(id)
			s.Value = req.Value
			return *s, nil
		})
	deps.client.EXPECT().Delete(gomock.Any(), "s1").
		DoAndReturn(func(_ context.Context, id string) error {
			api.find(id).IsActive = false
			return nil
		})
	deps.client.EXPECT().Restore(gomock.Any(), "s1").
		DoAndReturn(func(_ context.Context, id string) error {
			api.find(id).IsActive = true
			return nil
		})

	spec := setting.ViewSpec(language.BrazilianPortuguese)
	visible := func(tab view.Tab) []setting.Setting {
		list, err := deps.service.List(ctx)
		require.NoError(t, err)
		return view.Apply(list, spec, view.Query[setting.Setting]{Tab: tab})
	}

	_, err := deps.service.Create(ctx, setting.CreateSettingRequest{
		Key:      "maintenance_mode",
		Group:    "system",
		IsPublic: true,
		Form:     &setting.FormValue{Kind: setting.KindBoolean, Raw: "false"},
	})
	require.NoError(t, err)
	require.Len(t, visible(view.TabActive), 1)
	assert.Equal(t, false, visible(view.TabActive)[0].Value)

	sameKey := "maintenance_mode"
	updated, err := deps.service.Update(ctx, "s1", setting.UpdateSettingRequest{Key: &sameKey, Value: true})
	require.NoError(t, err)
	assert.Equal(t, true, updated.Value)

	otherKey := "maintenance"
	_, err = deps.service.Update(ctx, "s1", setting.UpdateSettingRequest{Key: &otherKey, Value: false})
	assert.ErrorIs(t, err, settingerrors.ErrKeyImmutable)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, true, visible(view.TabAll)[0].Value)

	require.NoError(t, deps.service.Deactivate(ctx, "s1"))
	assert.Empty(t, visible(view.TabActive))
	require.Len(t, visible(view.TabInactive), 1)

	require.NoError(t, deps.service.Restore(ctx, "s1"))
	require.Len(t, visible(view.TabActive), 1)

	var messages []string
	for _, n := range deps.toasts.All() {
		messages = append(messages, n.Message)
	}
	assert.Equal(t, []string{
		"Setting created successfully",
		"Setting updated successfully",
		"Setting deactivated successfully",
		"Setting restored successfully",
	}, messages)
}

func TestSettingService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  setting.CreateSettingRequest
		want error
	}{
		{"uppercase key", setting.CreateSettingRequest{Key: "Maintenance", Group: "system", Value: true}, settingerrors.ErrInvalidKey},
		{"dashed key", setting.CreateSettingRequest{Key: "smtp-port", Group: "email", Value: 1.0}, settingerrors.ErrInvalidKey},
		{"missing value", setting.CreateSettingRequest{Key: "smtp_port", Group: "email"}, settingerrors.ErrValueRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			_, err := deps.service.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, deps.toasts.All())
		})
	}

	t.Run("bad form number", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, setting.CreateSettingRequest{
			Key:   "smtp_port",
			Group: "email",
			Form:  &setting.FormValue{Kind: setting.KindNumber, Raw: "five"},
		})
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestSettingService_InitializeDefaults(t *testing.T) {
	ctx := context.Background()
	defaults := []setting.CreateSettingRequest{
		{Key: "company_name", Value: "Workly LTDA", Group: "company"},
		{Key: "maintenance_mode", Value: false, Group: "system"},
		{Key: "smtp_port", Value: 587, Group: "email"},
	}

	t.Run("creates missing and restores inactive with one refetch", func(t *testing.T) {
		deps := setupServiceTest(t, defaults...)
		existing := []setting.Setting{
			{ID: "s1", Key: "company_name", IsActive: true},
			{ID: "s2", Key: "maintenance_mode", IsActive: false},
		}

		gomock.InOrder(
			deps.client.EXPECT().List(gomock.Any()).Return(existing, nil),
			deps.client.EXPECT().Restore(gomock.Any(), "s2").Return(nil),
			deps.client.EXPECT().Create(gomock.Any(), defaults[2]).Return(setting.Setting{ID: "s3", Key: "smtp_port", IsActive: true}, nil),
			deps.client.EXPECT().List(gomock.Any()).Return(existing, nil),
		)

		res, err := deps.service.InitializeDefaults(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"smtp_port"}, res.Created)
		assert.Equal(t, []string{"maintenance_mode"}, res.Restored)

		_, err = deps.service.List(ctx)
		require.NoError(t, err)

		msgs := deps.toasts.All()
		require.Len(t, msgs, 1)
		assert.Equal(t, "Default settings initialized successfully", msgs[0].Message)
	})

	t.Run("partial failure still invalidates", func(t *testing.T) {
		deps := setupServiceTest(t, defaults...)

		gomock.InOrder(
			deps.client.EXPECT().List(gomock.Any()).Return(nil, nil),
			deps.client.EXPECT().Create(gomock.Any(), defaults[0]).Return(setting.Setting{ID: "s1"}, nil),
			deps.client.EXPECT().Create(gomock.Any(), defaults[1]).Return(setting.Setting{}, errors.New("boom")),
			deps.client.EXPECT().List(gomock.Any()).Return([]setting.Setting{{ID: "s1", Key: "company_name", IsActive: true}}, nil),
		)

		res, err := deps.service.InitializeDefaults(ctx)
		assert.Error(t, err)
		assert.Equal(t, []string{"company_name"}, res.Created)

		list, err := deps.service.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		toast, _ := deps.toasts.Last()
		assert.Equal(t, notify.LevelError, toast.Level)
	})
}
