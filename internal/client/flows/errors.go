package flows

import "errors"

var (
	// ErrPasswordMismatch is the local validation failure of a registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInFlight rejects a registration while the previous one is pending.
	ErrInFlight = errors.New("request already in flight")
	// ErrUserNotLoaded means Save ran before Load obtained the user record.
	ErrUserNotLoaded = errors.New("user record not loaded")
	// ErrNoCurrentUser means the app context has no signed-in user.
	ErrNoCurrentUser = errors.New("no current user")
	// ErrNotMounted is returned for work on, or results for, an unmounted screen.
	ErrNotMounted = errors.New("screen is not mounted")
	// ErrSuperseded means a newer Save started before this one finished;
	// its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer request")
)
