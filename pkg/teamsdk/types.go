package teamsdk

import "time"

// ErrorResponse is the admin API error body.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

// User is a team member with access to the admin.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	APIToken  string    `json:"api_token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUsersResponse is returned by GET /admin/users.
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// UpdateUserRequest is the body of POST /admin/users/{id}.
type UpdateUserRequest struct {
	// Names are always sent: an empty value clears the field.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user"`
}

// DeleteResponse is returned by delete endpoints.
type DeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// ============================================================================
// Invites
// ============================================================================

// Invite is a pending invitation to join the team.
type Invite struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Role      string    `json:"role,omitempty"`
	Accepted  bool      `json:"accepted"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ListInvitesResponse is returned by GET /admin/invites.
type ListInvitesResponse struct {
	Invites []Invite `json:"invites"`
}

// CreateInviteRequest is the body of POST /admin/invites.
type CreateInviteRequest struct {
	User string `json:"user"`
	Role string `json:"role"`
}
