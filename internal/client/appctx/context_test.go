package appctx

import (
	"testing"

	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestContext_User(t *testing.T) {
	c := New(false)
	assert.Equal(t, models.User{}, c.User())

	c.SetUser(models.User{Username: "alice", Password: "pw"})
	assert.Equal(t, "alice", c.User().Username)

	c.ClearUser()
	assert.Empty(t, c.User().Username)
}

func TestContext_ToggleDarkMode(t *testing.T) {
	c := New(false)
	assert.Equal(t, LightTheme, c.Theme())

	var seen []bool
	c.OnDarkModeChange(func(v bool) { seen = append(seen, v) })

	assert.True(t, c.ToggleDarkMode())
	assert.True(t, c.IsDarkMode())
	assert.Equal(t, DarkTheme, c.Theme())

	assert.False(t, c.ToggleDarkMode())
	assert.Equal(t, []bool{true, false}, seen)
}
