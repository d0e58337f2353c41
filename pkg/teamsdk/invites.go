package teamsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ListInvites returns every pending invite.
func (c *Client) ListInvites(ctx context.Context) ([]Invite, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/admin/invites", nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitesResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

// ResendInvite asks the API to send the invitation email again.
func (c *Client) ResendInvite(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/admin/invites/"+url.PathEscape(id)+"/resend", nil)
	if err != nil {
		return err
	}
	return checkStatus(resp)
}

// CreateInvite invites a new member by email.
func (c *Client) CreateInvite(ctx context.Context, req CreateInviteRequest) error {
	if req.User == "" {
		return errors.New("teamsdk: invite requires an email")
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/admin/invites", req)
	if err != nil {
		return err
	}
	return checkStatus(resp)
}
