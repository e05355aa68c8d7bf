package adminsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListUsers returns every user with their role ids.
// Requires: admin:read scope
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/users", nil, true)
	if err != nil {
		return nil, err
	}

	var out ListUsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateUser creates a user.
// Requires: admin:write scope
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/users", req, true)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusCreated)
}

// UpdateUser replaces the user's fields and role set in one step.
// Requires: admin:write scope
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) error {
	resp, err := c.do(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(id), req, true)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// DeleteUsers deletes users in the given order, stopping at the first
// failure.
// Requires: admin:write scope
func (c *Client) DeleteUsers(ctx context.Context, ids ...string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/v1/users?"+idsQuery("id", ids), nil, true)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}
