package teamsdk

import (
	"context"
	"net/http"
)

// Health checks that the admin API is reachable.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp)
}
