package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := string(a.screen())
	if u := a.appCtx.User().Username; u != "" {
		s = u + " " + s
	}
	if a.appCtx.IsDarkMode() {
		s += " dark"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root prints the welcome line and runs the REPL on the app's reader.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the account client (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
