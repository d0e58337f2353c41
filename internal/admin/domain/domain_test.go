package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user User
		want string
	}{
		{"full name", User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, "Ada Lovelace"},
		{"first only", User{FirstName: "Ada", Email: "ada@example.com"}, "Ada"},
		{"last only", User{LastName: "Lovelace", Email: "ada@example.com"}, "Lovelace"},
		{"email fallback", User{FirstName: "  ", Email: "ada@example.com"}, "ada@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestUserInitials(t *testing.T) {
	t.Parallel()

	require.Equal(t, "AL", User{FirstName: "ada", LastName: "lovelace"}.Initials())
	require.Equal(t, "É", User{FirstName: "élodie"}.Initials())
	require.Equal(t, "B", User{Email: "bob@example.com"}.Initials())
	require.Empty(t, User{}.Initials())
}

func TestUserIsMember(t *testing.T) {
	t.Parallel()

	require.True(t, User{}.IsMember())
	require.False(t, User{APIToken: "sk_123"}.IsMember())
}

func TestInviteIsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, Invite{ExpiresAt: now.Add(-time.Second)}.IsExpired(now))
	require.False(t, Invite{ExpiresAt: now.Add(time.Hour)}.IsExpired(now))
	require.False(t, Invite{ExpiresAt: now}.IsExpired(now))
	require.False(t, Invite{}.IsExpired(now), "no deadline means no expiry")
}
