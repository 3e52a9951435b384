package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// loginExec is the command surface of the login view.
type loginExec interface {
	Login(ctx context.Context) error
}

// entriesExec is the command surface of the entry list view.
type entriesExec interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Reload(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runLoginREPL serves the login view until the user logs in (returns /),
// asks to register (returns /register) or leaves (returns "").
//
//	help           show available commands
//	login          authenticate
//	register       create an account
//	exit | quit    leave the program
func runLoginREPL(ctx context.Context, a loginExec, reader *bufio.Reader, w io.Writer) string {
	for {
		fmt.Fprint(w, "classroom> ")
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return ""
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: login, register, exit")

		case "login":
			if a.Login(ctx) == nil {
				return PathRoot
			}

		case "register":
			return PathRegister

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return ""

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

// runEntriesREPL serves the entry list view. It returns /login after logout
// and "" when the user leaves or input ends.
//
//	help           show available commands
//	list | l       show the entries
//	add            add an entry
//	edit <id>      edit an entry
//	delete <id>    delete an entry
//	reload         fetch the entries again
//	whoami         ask the server who is logged in
//	logout         log out
//	exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own outcomes.
func runEntriesREPL(ctx context.Context, a entriesExec, statusFn func() string, reader *bufio.Reader, w io.Writer) string {
	for {
		fmt.Fprintf(w, "classroom %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return ""
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: (l)ist, add, edit <id>, delete <id>, reload, whoami, logout, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "reload":
			_ = a.Reload(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)
			return PathLogin

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return ""

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
