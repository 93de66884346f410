package flows

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophaccount/internal/client/client"
	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/dmitrijs2005/gophaccount/internal/client/navigation"
	"github.com/dmitrijs2005/gophaccount/internal/logging"
)

// Registration creates users from a UserDraft.
type Registration struct {
	api    client.Client
	nav    navigation.Navigator
	logger logging.Logger

	mu         sync.Mutex
	inFlight   bool
	validation models.Validation
	lastErr    error
}

func NewRegistration(api client.Client, nav navigation.Navigator, logger logging.Logger) *Registration {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Registration{
		api:    api,
		nav:    nav,
		logger: logger.With("flow", "registration"),
	}
}

// Submit validates the draft and, when the confirmation matches, sends one
// create request. On success the navigator goes back one screen.
//
// A mismatch returns ErrPasswordMismatch without touching the network. A
// Submit while another is pending returns ErrInFlight.
func (r *Registration) Submit(ctx context.Context, draft models.UserDraft) error {
	v := draft.Validate()

	r.mu.Lock()
	r.validation = v
	if v == models.ValidationMismatch {
		r.lastErr = ErrPasswordMismatch
		r.mu.Unlock()
		r.logger.Info(ctx, "Passwords do not match", "username", draft.Username)
		return ErrPasswordMismatch
	}
	if r.inFlight {
		r.mu.Unlock()
		return ErrInFlight
	}
	r.inFlight = true
	r.lastErr = nil
	r.mu.Unlock()

	err := r.api.RegisterUser(ctx, draft.Credentials())

	r.mu.Lock()
	r.inFlight = false
	r.lastErr = err
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn(ctx, "Register failed", "username", draft.Username, "error", err)
		return fmt.Errorf("register: %w", err)
	}

	r.logger.Info(ctx, "Registered", "username", draft.Username)
	r.nav.GoBack()
	return nil
}

// Validation is the result of the last Submit's form check.
func (r *Registration) Validation() models.Validation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.validation
}

// LastError is the failure of the last Submit, nil after a success.
func (r *Registration) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// InFlight reports whether a create request is pending.
func (r *Registration) InFlight() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight
}
