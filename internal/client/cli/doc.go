// Package cli provides the interactive account client.
//
// It wires configuration, the HTTP user-service client, the shared app
// context and the navigation stack to the registration and settings flows,
// and drives them from a small REPL. The REPL is screen aware: the root
// screen offers register and login, the settings screen offers show,
// password, save, darkmode and logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
