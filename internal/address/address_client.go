package address

import (
	"context"
	"strings"

	addresserrors "github.com/vbasilioo/workly-web/internal/address/errors"
	"github.com/vbasilioo/workly-web/internal/apiclient"
)

const BasePath = "/addresses"

//go:generate mockgen -source=address_client.go -destination=mock/address_client_mock.go -package=mock
type Client interface {
	Create(ctx context.Context, req CreateAddressRequest) (Address, error)
	CreateWithEmployee(ctx context.Context, req CreateAddressWithEmployeeRequest) (Address, error)
	List(ctx context.Context) ([]Address, error)
	GetByID(ctx context.Context, id string) (Address, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Address, error)
	Update(ctx context.Context, id string, req UpdateAddressRequest) (Address, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type client struct {
	res apiclient.Resource[Address]
}

func NewClient(api *apiclient.Client) Client {
	return &client{res: apiclient.NewResource[Address](api, BasePath)}
}

func (c *client) Create(ctx context.Context, req CreateAddressRequest) (Address, error) {
	a, err := c.res.Create(ctx, req)
	return a, mapClientError(err)
}

func (c *client) CreateWithEmployee(ctx context.Context, req CreateAddressWithEmployeeRequest) (Address, error) {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return Address{}, addresserrors.ErrEmployeeIDRequired
	}
	a, err := c.res.CreateAt(ctx, c.res.Path("with-employee"), req)
	return a, mapClientError(err)
}

func (c *client) List(ctx context.Context) ([]Address, error) {
	list, err := c.res.List(ctx)
	return list, mapClientError(err)
}

func (c *client) GetByID(ctx context.Context, id string) (Address, error) {
	if err := checkID(id); err != nil {
		return Address{}, err
	}
	a, err := c.res.Get(ctx, id)
	return a, mapClientError(err)
}

func (c *client) GetByEmployeeID(ctx context.Context, employeeID string) (Address, error) {
	if strings.TrimSpace(employeeID) == "" {
		return Address{}, addresserrors.ErrEmployeeIDRequired
	}
	a, err := c.res.GetAt(ctx, c.res.Path("employee", employeeID))
	return a, mapClientError(err)
}

func (c *client) Update(ctx context.Context, id string, req UpdateAddressRequest) (Address, error) {
	if err := checkID(id); err != nil {
		return Address{}, err
	}
	a, err := c.res.Update(ctx, id, req)
	return a, mapClientError(err)
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
		return addresserrors.ErrInvalidAddressID
	}
	return nil
}
