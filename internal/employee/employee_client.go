package employee

import (
	"context"
	"strings"

	"github.com/vbasilioo/workly-web/internal/apiclient"
	employeeerrors "github.com/vbasilioo/workly-web/internal/employee/errors"
)

const BasePath = "/api/employees"

//go:generate mockgen -source=employee_client.go -destination=mock/employee_client_mock.go -package=mock
type Client interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	// Delete deactivates; employees are never removed.
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type client struct {
	res apiclient.Resource[Employee]
}

func NewClient(api *apiclient.Client) Client {
	return &client{res: apiclient.NewResource[Employee](api, BasePath)}
}

func (c *client) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	e, err := c.res.Create(ctx, req)
	return e, mapClientError(err)
}

func (c *client) List(ctx context.Context) ([]Employee, error) {
	list, err := c.res.List(ctx)
	return list, mapClientError(err)
}

func (c *client) GetByID(ctx context.Context, id string) (Employee, error) {
	if err := checkID(id); err != nil {
		return Employee{}, err
	}
	e, err := c.res.Get(ctx, id)
	return e, mapClientError(err)
}

func (c *client) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	if err := checkID(id); err != nil {
		return Employee{}, err
	}
	e, err := c.res.Update(ctx, id, req)
	return e, mapClientError(err)
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
		return employeeerrors.ErrInvalidEmployeeID
	}
	return nil
}
