package flows

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/client/appctx"
	"github.com/dmitrijs2005/gophaccount/internal/client/client"
	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/dmitrijs2005/gophaccount/internal/client/navigation"
	"github.com/dmitrijs2005/gophaccount/internal/logging"
)

// DefaultNotificationTTL is how long a banner stays up.
const DefaultNotificationTTL = 2 * time.Second

// SettingsView is everything the settings screen renders.
type SettingsView struct {
	Username         string
	UsernameReadOnly bool
	Password         string
	Loaded           bool
	Notification     models.Notification
	Banner           string
	DarkMode         bool
	Theme            models.Theme
}

// Settings is the account-settings controller.
//
// Every Mount starts a new epoch. Results and timers belonging to an older
// epoch, or to a Save that is no longer the newest, are dropped.
type Settings struct {
	api    client.Client
	app    *appctx.Context
	nav    navigation.Navigator
	clock  Clock
	ttl    time.Duration
	logger logging.Logger

	onChange func(SettingsView)

	mu           sync.Mutex
	mounted      bool
	epoch        uint64
	ctx          context.Context
	cancel       context.CancelFunc
	existing     *models.User
	password     string
	notification models.Notification
	saveGen      uint64
	bannerGen    uint64
	timer        Timer
}

// SettingsOption customises a Settings controller.
type SettingsOption func(*Settings)

func WithClock(c Clock) SettingsOption {
	return func(s *Settings) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithNotificationTTL(d time.Duration) SettingsOption {
	return func(s *Settings) {
		if d > 0 {
			s.ttl = d
		}
	}
}

func WithLogger(l logging.Logger) SettingsOption {
	return func(s *Settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOnChange registers a callback that receives the view after every
// state change, including banner expiry on the clock's goroutine.
func WithOnChange(fn func(SettingsView)) SettingsOption {
	return func(s *Settings) {
		s.onChange = fn
	}
}

func NewSettings(api client.Client, app *appctx.Context, nav navigation.Navigator, opts ...SettingsOption) *Settings {
	s := &Settings{
		api:    api,
		app:    app,
		nav:    nav,
		clock:  RealClock,
		ttl:    DefaultNotificationTTL,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("flow", "settings")
	return s
}

// Mount resets the screen state and loads the current user by username.
// A failed load is logged and returned; the screen stays mounted without a
// user record. Mounting an already mounted screen is a no-op.
func (s *Settings) Mount(ctx context.Context) error {
	current := s.app.User()
	if current.Username == "" {
		return ErrNoCurrentUser
	}

	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return nil
	}
	mctx, cancel := context.WithCancel(ctx)
	s.mounted = true
	s.epoch++
	epoch := s.epoch
	s.ctx, s.cancel = mctx, cancel
	s.existing = nil
	s.password = current.Password
	s.notification = models.NotificationNone
	s.mu.Unlock()

	s.changed()

	user, err := s.api.GetUser(mctx, current.Username)

	s.mu.Lock()
	if !s.mounted || s.epoch != epoch {
		s.mu.Unlock()
		return ErrNotMounted
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Error(ctx, "Load user failed", "username", current.Username, "error", err)
		return fmt.Errorf("load user: %w", err)
	}
	s.existing = user
	s.mu.Unlock()

	s.changed()
	return nil
}

// Unmount cancels outstanding requests, stops the banner timer and
// discards any result that arrives afterwards.
func (s *Settings) Unmount() {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = false
	cancel := s.cancel
	s.cancel = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.existing = nil
	s.notification = models.NotificationNone
	s.mu.Unlock()

	cancel()
}

// EditPassword replaces the password field.
func (s *Settings) EditPassword(password string) {
	s.mu.Lock()
	s.password = password
	s.mu.Unlock()

	s.changed()
}

// Save sends the username and the edited password to the loaded user's id.
// Only a 200 answer shows the success banner; anything else shows the
// error banner. Returns ErrSuperseded if a newer Save started meanwhile and
// ErrNotMounted if the screen went away; in both cases state is untouched.
func (s *Settings) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return ErrNotMounted
	}
	epoch := s.epoch
	mctx := s.ctx
	s.saveGen++
	gen := s.saveGen
	existing := s.existing
	creds := models.Credentials{Username: s.app.User().Username, Password: s.password}
	s.mu.Unlock()

	if existing == nil {
		s.logger.Warn(ctx, "Save without loaded user", "username", creds.Username)
		if err := s.finishSave(epoch, gen, models.NotificationError); err != nil {
			return err
		}
		return ErrUserNotLoaded
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(mctx, cancel)
	defer stop()

	err := s.api.UpdateUser(callCtx, existing.ID, creds)

	note := models.NotificationSuccess
	if err != nil {
		note = models.NotificationError
		s.logger.Error(ctx, "Update user failed", "id", existing.ID, "error", err)
	} else {
		s.logger.Info(ctx, "User updated", "id", existing.ID)
	}

	if applyErr := s.finishSave(epoch, gen, note); applyErr != nil {
		return applyErr
	}
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Logout resets navigation to the root screen. It makes no request and
// leaves the screen state alone.
func (s *Settings) Logout() {
	s.nav.PopToTop()
}

// ToggleDarkMode flips the app-wide dark mode.
func (s *Settings) ToggleDarkMode() bool {
	v := s.app.ToggleDarkMode()
	s.changed()
	return v
}

// View returns the current render state.
func (s *Settings) View() SettingsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Notification returns the current banner state.
func (s *Settings) Notification() models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notification
}

// Mounted reports whether the screen is mounted.
func (s *Settings) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

func (s *Settings) viewLocked() SettingsView {
	return SettingsView{
		Username:         s.app.User().Username,
		UsernameReadOnly: true,
		Password:         s.password,
		Loaded:           s.existing != nil,
		Notification:     s.notification,
		Banner:           s.notification.Message(),
		DarkMode:         s.app.IsDarkMode(),
		Theme:            s.app.Theme(),
	}
}

func (s *Settings) finishSave(epoch, gen uint64, note models.Notification) error {
	s.mu.Lock()
	if !s.mounted || s.epoch != epoch {
		s.mu.Unlock()
		return ErrNotMounted
	}
	if s.saveGen != gen {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.showLocked(note)
	s.mu.Unlock()

	s.changed()
	return nil
}

// showLocked sets the banner and arms its expiry, replacing any pending one.
func (s *Settings) showLocked(note models.Notification) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.notification = note
	s.bannerGen++
	epoch, banner := s.epoch, s.bannerGen
	s.timer = s.clock.AfterFunc(s.ttl, func() { s.expire(epoch, banner) })
}

func (s *Settings) expire(epoch, banner uint64) {
	s.mu.Lock()
	if !s.mounted || s.epoch != epoch || s.bannerGen != banner {
		s.mu.Unlock()
		return
	}
	s.notification = models.NotificationNone
	s.timer = nil
	s.mu.Unlock()

	s.changed()
}

func (s *Settings) changed() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.View())
}
