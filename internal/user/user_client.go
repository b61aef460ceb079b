package user

import (
	"context"
	"strings"

	"github.com/vbasilioo/workly-web/internal/apiclient"
	usererrors "github.com/vbasilioo/workly-web/internal/user/errors"
)

const BasePath = "/api/users"

//go:generate mockgen -source=user_client.go -destination=mock/user_client_mock.go -package=mock
type Client interface {
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	// Delete removes the account for good.
	Delete(ctx context.Context, id string) error
}

type client struct {
	res apiclient.Resource[User]
}

func NewClient(api *apiclient.Client) Client {
	return &client{res: apiclient.NewResource[User](api, BasePath)}
}

func (c *client) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	u, err := c.res.Create(ctx, req)
	return u, mapClientError(err)
}

func (c *client) List(ctx context.Context) ([]User, error) {
	list, err := c.res.List(ctx)
	return list, mapClientError(err)
}

func (c *client) GetByID(ctx context.Context, id string) (User, error) {
	if err := checkID(id); err != nil {
		return User{}, err
	}
	u, err := c.res.Get(ctx, id)
	return u, mapClientError(err)
}

func (c *client) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	if err := checkID(id); err != nil {
		return User{}, err
	}
	u, err := c.res.Update(ctx, id, req)
	return u, mapClientError(err)
}

func (c *client) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return mapClientError(c.res.Delete(ctx, id))
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return usererrors.ErrInvalidUserID
	}
	return nil
}
