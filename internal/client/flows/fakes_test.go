package flows

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/client/models"
)

// ---- fake API ----

type call struct {
	Method   string
	Username string
	ID       int64
	Creds    models.Credentials
}

// fakeAPI implements client.Client. A non-nil gate makes the next calls
// block until a value is sent on it or the context ends.
type fakeAPI struct {
	mu    sync.Mutex
	calls []call

	RegisterErr error
	GetUserRet  *models.User
	GetUserErr  error
	UpdateErrs  []error
	// UpdateGates[i], when non-nil, holds the i-th PUT like gate does.
	UpdateGates []chan struct{}

	gate chan struct{}
	// started receives one value per call as soon as it is recorded.
	started chan string
}

func (f *fakeAPI) record(c call) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- c.Method
	}
}

func (f *fakeAPI) wait(ctx context.Context) error {
	return waitGate(ctx, f.gate)
}

func waitGate(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeAPI) RegisterUser(ctx context.Context, creds models.Credentials) error {
	f.record(call{Method: "POST", Creds: creds})
	if err := f.wait(ctx); err != nil {
		return err
	}
	return f.RegisterErr
}

func (f *fakeAPI) GetUser(ctx context.Context, username string) (*models.User, error) {
	f.record(call{Method: "GET", Username: username})
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.GetUserErr != nil {
		return nil, f.GetUserErr
	}
	u := *f.GetUserRet
	return &u, nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, id int64, creds models.Credentials) error {
	f.mu.Lock()
	n := 0
	for _, c := range f.calls {
		if c.Method == "PUT" {
			n++
		}
	}
	var ret error
	if n < len(f.UpdateErrs) {
		ret = f.UpdateErrs[n]
	}
	gate := f.gate
	if n < len(f.UpdateGates) {
		gate = f.UpdateGates[n]
	}
	f.mu.Unlock()

	f.record(call{Method: "PUT", ID: id, Creds: creds})
	if err := waitGate(ctx, gate); err != nil {
		return err
	}
	return ret
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) count(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

// ---- fake navigator ----

type fakeNav struct {
	mu       sync.Mutex
	back     int
	popToTop int
}

func (n *fakeNav) GoBack() {
	n.mu.Lock()
	n.back++
	n.mu.Unlock()
}

func (n *fakeNav) PopToTop() {
	n.mu.Lock()
	n.popToTop++
	n.mu.Unlock()
}

func (n *fakeNav) counts() (back, top int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.back, n.popToTop
}

// ---- simulated clock ----

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock fires callbacks synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) stoppedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if t.stopped {
			n++
		}
	}
	return n
}
