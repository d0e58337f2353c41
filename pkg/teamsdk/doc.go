/*
Package teamsdk is a client for the commerce admin REST API endpoints that back
the team management page: users and invites.

# Overview

Create a Client with the API base URL and an admin API token:

	client := teamsdk.NewClient("https://shop.example.com", token)

	users, err := client.ListUsers(ctx)
	invites, err := client.ListInvites(ctx)

	// Mutations
	err = client.DeleteUser(ctx, userID)
	err = client.ResendInvite(ctx, inviteID)
	user, err := client.UpdateUser(ctx, userID, teamsdk.UpdateUserRequest{FirstName: "Ada"})
	err = client.CreateInvite(ctx, teamsdk.CreateInviteRequest{User: "ada@example.com", Role: "member"})

# Errors

Non-2xx responses are returned as *APIError, carrying the HTTP status and the
server's {type, message} body when present:

	var apiErr *teamsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// gone already
	}

Transport failures are wrapped and can be inspected with errors.Is (for
example context.DeadlineExceeded).

# Tracing

Every request runs inside an OpenTelemetry client span and propagates the
trace context through the globally registered propagator. With no provider
registered the spans are no-ops.
*/
package teamsdk
