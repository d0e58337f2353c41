package team

import (
	"errors"

	"github.com/aussiebroadwan/teamdesk/pkg/teamsdk"
)

var (
	ErrOverlayActive     = errors.New("another overlay is open")
	ErrNoSelection       = errors.New("no user selected")
	ErrUnknownUser       = errors.New("user not found in current list")
	ErrUnknownInvite     = errors.New("invite not found in current list")
	ErrInvalidTransition = errors.New("action not valid in current overlay")
	ErrBusy              = errors.New("a submission is still in flight")
	ErrInvalidInput      = errors.New("invalid input")
	ErrClosed            = errors.New("view closed")
)

// describe turns a remote failure into the message shown on the error banner.
func describe(err error) string {
	switch {
	case teamsdk.IsUnauthorized(err):
		return "the admin API rejected the service token"
	case teamsdk.IsNotFound(err):
		return "the entry no longer exists"
	}

	var apiErr *teamsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
