package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophaccount/internal/client/navigation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() navigation.Screen
	Register(ctx context.Context) error
	Back(ctx context.Context) error
	Login(ctx context.Context) error
	Show(ctx context.Context) error
	Password(ctx context.Context) error
	Save(ctx context.Context) error
	DarkMode(ctx context.Context) error
	Logout(ctx context.Context) error
}

var helpText = map[navigation.Screen]string{
	navigation.ScreenLogin:    "Available commands: register, login, exit",
	navigation.ScreenRegister: "Available commands: register, back, exit",
	navigation.ScreenSettings: "Available commands: show, password, save, darkmode, logout, exit",
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The set of accepted commands depends on a.screen():
//
//	login:     register, login
//	register:  register (retry), back
//	settings:  show, password, save, darkmode, logout
//
// help, exit and quit work everywhere. The loop ends on EOF or exit. Errors
// returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("acc %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printlnFn(helpText[a.screen()])
			continue
		}

		handler := lookupCommand(a, cmd)
		if handler == nil {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := handler(ctx); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func lookupCommand(a execIface, cmd string) func(context.Context) error {
	switch a.screen() {
	case navigation.ScreenLogin:
		switch cmd {
		case "register":
			return a.Register
		case "login":
			return a.Login
		}
	case navigation.ScreenRegister:
		switch cmd {
		case "register":
			return a.Register
		case "back":
			return a.Back
		}
	case navigation.ScreenSettings:
		switch cmd {
		case "show":
			return a.Show
		case "password":
			return a.Password
		case "save":
			return a.Save
		case "darkmode":
			return a.DarkMode
		case "logout":
			return a.Logout
		}
	}
	return nil
}
