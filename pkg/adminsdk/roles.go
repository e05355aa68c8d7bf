package adminsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ListRoles returns every role with its resource ids.
// Requires: admin:read scope
func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/roles", nil, true)
	if err != nil {
		return nil, err
	}

	var out ListRolesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

// CreateRole creates a role and its resource grants.
// Requires: admin:write scope
func (c *Client) CreateRole(ctx context.Context, req CreateRoleRequest) error {
	resp, err := c.do(ctx, http.MethodPost, "/v1/roles", req, true)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusCreated)
}

// SetRoleResources replaces the resources a role grants.
// Requires: admin:write scope
func (c *Client) SetRoleResources(ctx context.Context, roleID string, resourceIDs []string) error {
	path := "/v1/roles/" + url.PathEscape(roleID) + "/resources"
	resp, err := c.do(ctx, http.MethodPut, path, SetRoleResourcesRequest{ResourceIDs: resourceIDs}, true)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// DeleteRoles deletes roles in the given order, stopping at the first
// failure.
// Requires: admin:write scope
func (c *Client) DeleteRoles(ctx context.Context, ids ...string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/v1/roles?"+idsQuery("id", ids), nil, true)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// LookupRoles returns the comma separated names of the roles granted any of
// the resources, given by id or by name.
// Requires: admin:read scope
func (c *Client) LookupRoles(ctx context.Context, resourceIDs, resourceNames []string) (string, error) {
	q := []string{idsQuery("resource_id", resourceIDs), idsQuery("resource", resourceNames)}
	resp, err := c.do(ctx, http.MethodGet, "/v1/roles/lookup?"+strings.Join(q, "&"), nil, true)
	if err != nil {
		return "", err
	}

	var out LookupRolesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Roles, nil
}
