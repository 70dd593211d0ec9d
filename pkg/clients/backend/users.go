package backend

import (
	"context"

	"github.com/marianadoces/console/internal/domain/models"
)

// ListUsers fetches every console account. Admin only on the backend side.
func (c *Client) ListUsers(ctx context.Context) (*models.UsersResponse, error) {
	return doGet[models.UsersResponse](ctx, c, "/users", nil)
}

// GetUser fetches one account by id.
func (c *Client) GetUser(ctx context.Context, id string) (*models.UserResponse, error) {
	return doGet[models.UserResponse](ctx, c, "/users/"+id, nil)
}

// CreateUser registers a new console account.
func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.UserResponse, error) {
	return doPost[models.UserResponse](ctx, c, "/users", req)
}

// UpdateUser patches an account.
func (c *Client) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserResponse, error) {
	return doPut[models.UserResponse](ctx, c, "/users/"+id, req)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doDelete(ctx, "/users/"+id)
}
