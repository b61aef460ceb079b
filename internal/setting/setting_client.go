package setting

import (
	"context"
	"strings"

	"github.com/vbasilioo/workly-web/internal/apiclient"
	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
)

const BasePath = "/api/settings"

//go:generate mockgen -source=setting_client.go -destination=mock/setting_client_mock.go -package=mock
type Client interface {
	Create(ctx context.Context, req CreateSettingRequest) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
	GetByID(ctx context.Context, id string) (Setting, error)
	// Update never sends the key.
	Update(ctx context.Context, id string, req UpdateSettingRequest) (Setting, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type client struct {
	res apiclient.Resource[Setting]
}

func NewClient(api *apiclient.Client) Client {
	return &client{res: apiclient.NewResource[Setting](api, BasePath)}
}

func (c *client) Create(ctx context.Context, req CreateSettingRequest) (Setting, error) {
	s, err := c.res.Create(ctx, req)
	return s, mapClientError(err)
}

func (c *client) List(ctx context.Context) ([]Setting, error) {
	list, err := c.res.List(ctx)
	return list, mapClientError(err)
}

func (c *client) GetByID(ctx context.Context, id string) (Setting, error) {
	if err := checkID(id); err != nil {
		return Setting{}, err
	}
	s, err := c.res.Get(ctx, id)
	return s, mapClientError(err)
}

func (c *client) Update(ctx context.Context, id string, req UpdateSettingRequest) (Setting, error) {
	if err := checkID(id); err != nil {
		return Setting{}, err
	}
	s, err := c.res.Update(ctx, id, req.body())
	return s, mapClientError(err)
}

func (c *client) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return mapClientError(c.res.Delete(ctx, id))
}

func (c *client) Restore(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return mapClientError(c.res.Restore(ctx, id))
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return settingerrors.ErrInvalidSettingID
	}
	return nil
}
