package team

import (
	"context"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/pkg/teamsdk"
)

// Remote is the admin API as the view needs it.
type Remote interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListInvites(ctx context.Context) ([]domain.Invite, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUser(ctx context.Context, id, firstName, lastName string) error
	ResendInvite(ctx context.Context, id string) error
	CreateInvite(ctx context.Context, email, role string) error
}

// ActivityRecorder persists the audit trail of mutations.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, a domain.Activity) error
}

// SDKRemote adapts a teamsdk.Client to Remote.
type SDKRemote struct {
	Client *teamsdk.Client
}

func (r SDKRemote) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := r.Client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, domain.User{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			AvatarURL: u.AvatarURL,
			Role:      u.Role,
			APIToken:  u.APIToken,
		})
	}
	return out, nil
}

func (r SDKRemote) ListInvites(ctx context.Context) ([]domain.Invite, error) {
	invites, err := r.Client.ListInvites(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Invite, 0, len(invites))
	for _, i := range invites {
		out = append(out, domain.Invite{
			ID:        i.ID,
			Email:     i.UserEmail,
			Role:      i.Role,
			Accepted:  i.Accepted,
			Token:     i.Token,
			ExpiresAt: i.ExpiresAt,
			CreatedAt: i.CreatedAt,
		})
	}
	return out, nil
}

func (r SDKRemote) DeleteUser(ctx context.Context, id string) error {
	return r.Client.DeleteUser(ctx, id)
}

func (r SDKRemote) UpdateUser(ctx context.Context, id, firstName, lastName string) error {
	_, err := r.Client.UpdateUser(ctx, id, teamsdk.UpdateUserRequest{FirstName: firstName, LastName: lastName})
	return err
}

func (r SDKRemote) ResendInvite(ctx context.Context, id string) error {
	return r.Client.ResendInvite(ctx, id)
}

func (r SDKRemote) CreateInvite(ctx context.Context, email, role string) error {
	return r.Client.CreateInvite(ctx, teamsdk.CreateInviteRequest{User: email, Role: role})
}
