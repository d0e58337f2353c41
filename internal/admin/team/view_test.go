package team

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T, remote Remote, rec ActivityRecorder) *View {
	t.Helper()

	v := NewView("", Options{
		Remote:   remote,
		Activity: rec,
		Logger:   slogx.Discard(),
		Now:      func() time.Time { return testNow },
	})
	t.Cleanup(v.Close)
	return v
}

func settle(t *testing.T, v *View) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, v.WaitIdle(ctx))
}

func mount(t *testing.T, v *View) {
	t.Helper()
	require.NoError(t, v.Send(context.Background(), Mounted{}))
	settle(t, v)
}

func sampleRemote() *fakeRemote {
	return newFakeRemote(
		[]domain.User{
			{ID: "usr_1", Email: "ada@example.com", FirstName: "Ada"},
			{ID: "usr_2", Email: "bob@example.com"},
			{ID: "usr_3", Email: "ci@example.com", APIToken: "sk_live"},
		},
		[]domain.Invite{
			{ID: "inv_1", Email: "old@example.com", ExpiresAt: testNow.Add(-time.Hour)},
			{ID: "inv_2", Email: "new@example.com", ExpiresAt: testNow.Add(time.Hour)},
		},
	)
}

func TestViewMountLoadsBothCollections(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	v := newTestView(t, remote, nil)
	mount(t, v)

	s := v.Snapshot()
	require.Equal(t, 1, remote.count("ListUsers"))
	require.Equal(t, 1, remote.count("ListInvites"))
	require.Zero(t, s.Pending)

	rows := BuildRows(s.Users, s.Invites, testNow)
	require.Len(t, rows, 5)
	require.Equal(t, 2, MemberCount(s.Users))
	require.True(t, rows[3].Expired)
	require.False(t, rows[4].Expired)
}

func TestViewDeleteThenRefetch(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	rec := &fakeRecorder{}
	v := newTestView(t, remote, rec)
	mount(t, v)

	ctx := context.Background()
	require.NoError(t, v.Send(ctx, RemoveUserSelected{UserID: "usr_2"}))
	require.NoError(t, v.Send(ctx, DeleteConfirmed{}))
	settle(t, v)

	deletes := remote.callsOf("DeleteUser")
	require.Len(t, deletes, 1)
	require.Equal(t, []string{"usr_2"}, deletes[0].Args)

	// One refetch after the initial mount load.
	require.Equal(t, 2, remote.count("ListUsers"))
	require.Equal(t, 2, remote.count("ListInvites"))

	s := v.Snapshot()
	require.Equal(t, OverlayIdle, s.Overlay)
	require.Nil(t, s.SelectedUser)

	acts := rec.list()
	require.Len(t, acts, 1)
	require.Equal(t, domain.ActionDeleteUser, acts[0].Action)
	require.Equal(t, domain.OutcomeOK, acts[0].Outcome)
	require.Equal(t, v.ID(), acts[0].SessionID)
}

func TestViewResendInvite(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	v := newTestView(t, remote, nil)
	mount(t, v)

	require.NoError(t, v.Send(context.Background(), ResendInviteSelected{InviteID: "inv_1"}))
	settle(t, v)

	resends := remote.callsOf("ResendInvite")
	require.Len(t, resends, 1)
	require.Equal(t, []string{"inv_1"}, resends[0].Args)

	s := v.Snapshot()
	require.Len(t, s.Notices, 1)
	require.Equal(t, domain.NoticeSuccess, s.Notices[0].Kind)
	require.Equal(t, 1, remote.count("ListUsers"), "resend must not refetch")
	require.Equal(t, 1, remote.count("ListInvites"))
}

func TestViewCloseEditMakesNoCall(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	v := newTestView(t, remote, nil)
	mount(t, v)
	before := remote.total()

	ctx := context.Background()
	require.NoError(t, v.Send(ctx, EditUserSelected{UserID: "usr_1"}))
	require.NoError(t, v.Send(ctx, OverlayClosed{}))
	settle(t, v)

	require.Equal(t, before, remote.total())
	require.Equal(t, OverlayIdle, v.Snapshot().Overlay)
}

func TestViewRejectsRowActionWhileOverlayOpen(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	v := newTestView(t, remote, nil)
	mount(t, v)

	ctx := context.Background()
	require.NoError(t, v.Send(ctx, EditUserSelected{UserID: "usr_1"}))
	err := v.Send(ctx, RemoveInviteSelected{InviteID: "inv_1"})
	require.ErrorIs(t, err, ErrOverlayActive)

	s := v.Snapshot()
	require.Equal(t, OverlayEditing, s.Overlay)
	require.Equal(t, "usr_1", s.SelectedUser.ID)
	require.Empty(t, s.Notices)
}

func TestViewRemoveInviteSendsNothing(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	rec := &fakeRecorder{}
	v := newTestView(t, remote, rec)
	mount(t, v)
	before := remote.total()

	require.NoError(t, v.Send(context.Background(), RemoveInviteSelected{InviteID: "inv_2"}))
	settle(t, v)

	require.Equal(t, before, remote.total())
	require.Len(t, v.Snapshot().Notices, 1)

	acts := rec.list()
	require.Len(t, acts, 1)
	require.Equal(t, domain.OutcomeUnsupported, acts[0].Outcome)
	require.Equal(t, "inv_2", acts[0].TargetID)
}

func TestViewInviteModalCloseRefetches(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	v := newTestView(t, remote, nil)
	mount(t, v)

	ctx := context.Background()
	require.NoError(t, v.Send(ctx, InviteModalOpened{}))
	require.NoError(t, v.Send(ctx, InviteModalClosed{}))
	settle(t, v)

	require.Equal(t, 2, remote.count("ListUsers"))
	require.Equal(t, 2, remote.count("ListInvites"))
}

func TestViewLoadFailureKeepsData(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	v := newTestView(t, remote, nil)
	mount(t, v)

	remote.setErr("ListUsers", errors.New("upstream down"))
	remote.setUsers(nil)
	require.NoError(t, v.Send(context.Background(), RefetchRequested{}))
	settle(t, v)

	s := v.Snapshot()
	require.Len(t, s.Users, 3)
	require.NotNil(t, s.Failure)
	require.Equal(t, OpListUsers, s.Failure.Op)
}

func TestViewActivityFailureIsNotSurfaced(t *testing.T) {
	t.Parallel()

	remote := sampleRemote()
	rec := &fakeRecorder{err: errors.New("disk full")}
	v := newTestView(t, remote, rec)
	mount(t, v)

	require.NoError(t, v.Send(context.Background(), ResendInviteSelected{InviteID: "inv_1"}))
	settle(t, v)

	s := v.Snapshot()
	require.Nil(t, s.Failure)
	require.Len(t, s.Notices, 1)
}

func TestViewClosed(t *testing.T) {
	t.Parallel()

	v := newTestView(t, sampleRemote(), nil)
	v.Close()
	v.Close()

	require.ErrorIs(t, v.Send(context.Background(), RefetchRequested{}), ErrClosed)
}

func TestSnapshotIsIsolated(t *testing.T) {
	t.Parallel()

	v := newTestView(t, sampleRemote(), nil)
	mount(t, v)

	s := v.Snapshot()
	s.Users[0].Email = "mutated@example.com"
	require.Equal(t, "ada@example.com", v.Snapshot().Users[0].Email)
}
