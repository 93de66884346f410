// Package appctx holds the state shared by all screens: the signed-in user,
// the colour theme and the dark-mode switch. It is handed to each flow
// explicitly instead of being looked up globally.
package appctx

import (
	"sync"

	"github.com/dmitrijs2005/gophaccount/internal/client/models"
)

var (
	LightTheme = models.Theme{
		Name:       "light",
		Primary:    "#1E6FD9",
		Background: "#FFFFFF",
		Text:       "#111111",
		Secondary:  "#F2F2F2",
	}
	DarkTheme = models.Theme{
		Name:       "dark",
		Primary:    "#4C8DF6",
		Background: "#121212",
		Text:       "#EDEDED",
		Secondary:  "#2A2A2A",
	}
)

// Context is safe for concurrent use.
type Context struct {
	mu       sync.RWMutex
	user     models.User
	darkMode bool
	onChange []func(darkMode bool)
}

func New(darkMode bool) *Context {
	return &Context{darkMode: darkMode}
}

// User returns a copy of the current user.
func (c *Context) User() models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// SetUser replaces the current user.
func (c *Context) SetUser(u models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = u
}

// ClearUser forgets the current user.
func (c *Context) ClearUser() {
	c.SetUser(models.User{})
}

func (c *Context) IsDarkMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.darkMode
}

// Theme returns the palette matching the dark-mode flag.
func (c *Context) Theme() models.Theme {
	if c.IsDarkMode() {
		return DarkTheme
	}
	return LightTheme
}

// ToggleDarkMode flips the flag and notifies subscribers. It returns the
// new value.
func (c *Context) ToggleDarkMode() bool {
	c.mu.Lock()
	c.darkMode = !c.darkMode
	v := c.darkMode
	subs := append([]func(bool){}, c.onChange...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
	return v
}

// OnDarkModeChange registers fn to run after every toggle.
func (c *Context) OnDarkModeChange(fn func(darkMode bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}
