package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/user"
	usererrors "github.com/vbasilioo/workly-web/internal/user/errors"
	userMock "github.com/vbasilioo/workly-web/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service user.Service
	client  *userMock.MockClient
	toasts  *notify.Recorder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	client := userMock.NewMockClient(ctrl)
	toasts := &notify.Recorder{}
	svc := user.NewService(client, store.Options{
		Scope:    "admin-1",
		Cache:    store.NewMemoryCache(),
		TTL:      time.Minute,
		Notifier: toasts,
	})
	return &serviceDeps{service: svc, client: client, toasts: toasts}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.client.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req user.CreateUserRequest) (user.User, error) {
				assert.Equal(t, "secret1", req.Password)
				return user.User{ID: "u2", Name: req.Name, Email: req.Email, Role: req.Role}, nil
			})

		u, err := deps.service.Create(ctx, user.CreateUserRequest{
			Name: "Maria Souza", Email: "maria@x.com", Password: "secret1", Role: "user",
		})
		require.NoError(t, err)
		assert.Equal(t, "u2", u.ID)

		toast, _ := deps.toasts.Last()
		assert.Equal(t, "User created successfully", toast.Message)
	})

	t.Run("deprecated role is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, user.CreateUserRequest{
			Name: "Maria Souza", Email: "maria@x.com", Password: "secret1", Role: "management",
		})
		assert.True(t, apperror.IsValidation(err))
		assert.Empty(t, deps.toasts.All())
	})

	t.Run("short password", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, user.CreateUserRequest{
			Name: "Maria Souza", Email: "maria@x.com", Password: "123", Role: "user",
		})
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := contextutil.WithUserID(context.Background(), "admin-1")

	t.Run("requires confirmation", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, "u2", false)
		assert.ErrorIs(t, err, usererrors.ErrDeleteNotConfirmed)
		assert.Empty(t, deps.toasts.All())
	})

	t.Run("cannot delete self", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, "admin-1", true)
		assert.ErrorIs(t, err, usererrors.ErrCannotDeleteSelf)
	})

	t.Run("confirmed delete refetches list", func(t *testing.T) {
		deps := setupServiceTest(t)
		gomock.InOrder(
			deps.client.EXPECT().List(gomock.Any()).Return([]user.User{{ID: "admin-1"}, {ID: "u2"}}, nil),
			deps.client.EXPECT().Delete(gomock.Any(), "u2").Return(nil),
			deps.client.EXPECT().List(gomock.Any()).Return([]user.User{{ID: "admin-1"}}, nil),
		)

		_, err := deps.service.List(ctx)
		require.NoError(t, err)

		require.NoError(t, deps.service.Delete(ctx, "u2", true))

		list, err := deps.service.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		toast, _ := deps.toasts.Last()
		assert.Equal(t, "User deleted successfully", toast.Message)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.client.EXPECT().Delete(gomock.Any(), "u9").Return(usererrors.ErrUserNotFound)

		err := deps.service.Delete(ctx, "u9", true)
		assert.True(t, apperror.IsNotFound(err))

		toast, _ := deps.toasts.Last()
		assert.Equal(t, "Error deleting user: User not found", toast.Message)
	})
}
