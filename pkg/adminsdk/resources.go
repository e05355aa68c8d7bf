package adminsdk

import (
	"context"
	"net/http"
)

// ListResources returns every resource ordered by name.
// Requires: admin:read scope
func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/resources", nil, true)
	if err != nil {
		return nil, err
	}

	var out ListResourcesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Resources, nil
}
