package team

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
)

type call struct {
	Method string
	Args   []string
}

type fakeRemote struct {
	mu      sync.Mutex
	calls   []call
	users   []domain.User
	invites []domain.Invite
	errs    map[string]error
}

func newFakeRemote(users []domain.User, invites []domain.Invite) *fakeRemote {
	return &fakeRemote{users: users, invites: invites, errs: map[string]error{}}
}

func (f *fakeRemote) record(method string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{Method: method, Args: args})
	return f.errs[method]
}

func (f *fakeRemote) setErr(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

func (f *fakeRemote) setUsers(users []domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = users
}

func (f *fakeRemote) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeRemote) callsOf(method string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeRemote) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeRemote) ListUsers(context.Context) ([]domain.User, error) {
	if err := f.record("ListUsers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeRemote) ListInvites(context.Context) ([]domain.Invite, error) {
	if err := f.record("ListInvites"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Invite(nil), f.invites...), nil
}

func (f *fakeRemote) DeleteUser(_ context.Context, id string) error {
	return f.record("DeleteUser", id)
}

func (f *fakeRemote) UpdateUser(_ context.Context, id, first, last string) error {
	return f.record("UpdateUser", id, first, last)
}

func (f *fakeRemote) ResendInvite(_ context.Context, id string) error {
	return f.record("ResendInvite", id)
}

func (f *fakeRemote) CreateInvite(_ context.Context, email, role string) error {
	return f.record("CreateInvite", email, role)
}

type fakeRecorder struct {
	mu         sync.Mutex
	activities []domain.Activity
	err        error
}

func (f *fakeRecorder) RecordActivity(_ context.Context, a domain.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activities = append(f.activities, a)
	return f.err
}

func (f *fakeRecorder) list() []domain.Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Activity(nil), f.activities...)
}
