package teamsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

var errEmptyID = errors.New("teamsdk: empty id")

// ListUsers returns every user of the admin.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var out ListUsersResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// UpdateUser changes a user's profile fields and returns the updated user.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	if id == "" {
		return nil, errEmptyID
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}

	resp, err := c.doRequest(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	var out DeleteResponse
	if resp.StatusCode == http.StatusNoContent {
		return checkStatus(resp)
	}
	return decodeJSON(resp, &out)
}
