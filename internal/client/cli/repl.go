package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Location(ctx context.Context) error
	Match(ctx context.Context) error
	FindMatch(ctx context.Context) error
	ExtendMatch(ctx context.Context) error
	Messages(ctx context.Context) error
	Send(ctx context.Context, text string) error
	Interests(ctx context.Context) error
	SelectInterest(ctx context.Context, id string) error
	RemoveInterest(ctx context.Context, id string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// Errors returned by handlers are printed and the loop goes on. The loop
// exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - profile        show (and refresh) your profile
//	  - edit           edit name, bio and photo
//	  - location       set location preferences
//	  - match          show the current match
//	  - find           ask for a new match
//	  - extend         keep the current match for another week
//	  - messages       show the conversation with the current match
//	  - send <text>    send a message
//	  - interests      list interests, yours marked with *
//	  - select <id>    add an interest
//	  - unselect <id>  remove an interest
//	  - logout         log out
//	  - exit | quit    leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bm (%s) > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, rest := parts[0], strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), parts[0]))

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, edit, location, match, find, extend, messages, send <text>, interests, select <id>, unselect <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)
		case "edit":
			cmdErr = a.EditProfile(ctx)
		case "location":
			cmdErr = a.Location(ctx)

		case "match":
			cmdErr = a.Match(ctx)
		case "find":
			cmdErr = a.FindMatch(ctx)
		case "extend":
			cmdErr = a.ExtendMatch(ctx)

		case "messages":
			cmdErr = a.Messages(ctx)
		case "send":
			cmdErr = a.Send(ctx, rest)

		case "interests":
			cmdErr = a.Interests(ctx)
		case "select", "unselect":
			if len(parts) < 2 {
				printlnFn("Usage:", cmd, "<id>")
				continue
			}
			if cmd == "select" {
				cmdErr = a.SelectInterest(ctx, parts[1])
			} else {
				cmdErr = a.RemoveInterest(ctx, parts[1])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
