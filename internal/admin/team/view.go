package team

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/teamdesk/pkg/idx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aussiebroadwan/teamdesk/internal/admin/team"

// Options configures new views.
type Options struct {
	Remote   Remote
	Activity ActivityRecorder
	Logger   *slog.Logger

	// Limit is the initial page size; DefaultLimit when zero.
	Limit int

	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

type envelope struct {
	ev    Event
	reply chan error
}

// View is one operator's team page. A single goroutine owns the state;
// Send, Snapshot and WaitIdle are safe for concurrent use.
type View struct {
	id       idx.ID
	owner    string
	remote   Remote
	activity ActivityRecorder
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time

	events chan envelope

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu      sync.RWMutex
	snap    State
	changed chan struct{}

	lastUsed atomic.Int64
}

// NewView starts the event loop of a view. The view is not mounted until it
// receives Mounted.
func NewView(id idx.ID, opts Options) *View {
	if id.IsZero() {
		id = idx.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	v := &View{
		id:       id,
		remote:   opts.Remote,
		activity: opts.Activity,
		logger:   logger.With(slog.String("view_id", id.String())),
		tracer:   otel.Tracer(tracerName),
		now:      now,
		events:   make(chan envelope, 16),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		snap:     NewState(opts.Limit),
		changed:  make(chan struct{}),
	}
	v.touch()

	go v.loop()
	return v
}

// ID returns the view session id.
func (v *View) ID() idx.ID { return v.id }

// Owner is the operator the view was opened for; empty without authentication.
func (v *View) Owner() string { return v.owner }

// Send delivers an operator event and waits until it has been applied. A
// rejected event returns one of the package errors and changes nothing.
func (v *View) Send(ctx context.Context, ev Event) error {
	v.touch()

	env := envelope{ev: ev, reply: make(chan error, 1)}
	select {
	case v.events <- env:
	case <-v.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-env.reply:
		return err
	case <-v.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap.Clone()
}

// WaitIdle blocks until no command is in flight or ctx is done.
func (v *View) WaitIdle(ctx context.Context) error {
	for {
		v.mu.RLock()
		pending := v.snap.Pending
		changed := v.changed
		v.mu.RUnlock()

		if pending == 0 {
			return nil
		}

		select {
		case <-changed:
		case <-v.done:
			return ErrClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// LastUsed is the time of the last Send or Touch.
func (v *View) LastUsed() time.Time {
	return time.Unix(0, v.lastUsed.Load())
}

// Touch marks the view as in use.
func (v *View) Touch() { v.touch() }

func (v *View) touch() {
	v.lastUsed.Store(v.now().UnixNano())
}

// Close stops the loop and cancels in-flight calls. It is idempotent.
func (v *View) Close() {
	v.once.Do(func() {
		v.cancel()
		<-v.done
	})
}

func (v *View) loop() {
	defer close(v.done)

	state := v.Snapshot()

	for {
		select {
		case <-v.ctx.Done():
			return
		case env := <-v.events:
			if _, ok := env.ev.(result); ok {
				state.Pending--
			}

			next, cmds, err := Reduce(state, env.ev, v.now())
			if err != nil {
				v.logger.Debug("event rejected",
					slog.String("event", eventName(env.ev)),
					slog.String("overlay", state.Overlay.String()),
					slog.Any("error", err),
				)
				v.publish(state)
				if env.reply != nil {
					env.reply <- err
				}
				continue
			}

			state = next
			for _, cmd := range cmds {
				state.Pending++
				go v.run(cmd)
			}
			v.publish(state)

			if env.reply != nil {
				env.reply <- nil
			}
		}
	}
}

func (v *View) run(cmd Command) {
	res := v.execute(v.ctx, cmd)

	select {
	case v.events <- envelope{ev: res}:
	case <-v.ctx.Done():
	}
}

func (v *View) publish(s State) {
	v.mu.Lock()
	v.snap = s.Clone()
	close(v.changed)
	v.changed = make(chan struct{})
	v.mu.Unlock()
}
