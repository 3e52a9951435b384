package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/classroom/internal/client/session"
)

// Route paths. /main is kept as an alias of / so the session gate always
// applies to the entry list.
const (
	PathRoot     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathMain     = "/main"
)

// A View renders one screen and returns the path to show next, or "" to
// leave the program.
type View func(ctx context.Context) string

// Views are the screens the route table can mount.
type Views struct {
	Entries  View
	Login    View
	Register View
}

func redirect(to string) View {
	return func(context.Context) string { return to }
}

// Resolve maps a path to the view that serves it. Unknown paths redirect to /.
func Resolve(path string, s *session.Session, v Views) View {
	switch normalizePath(path) {
	case PathRoot:
		if session.Gate(s) == session.ShowEntries {
			return v.Entries
		}
		return redirect(PathLogin)
	case PathLogin:
		return v.Login
	case PathRegister:
		return v.Register
	default:
		return redirect(PathRoot)
	}
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Navigate renders views starting at path until one returns "" or ctx ends.
func Navigate(ctx context.Context, path string, s *session.Session, v Views) {
	for path != "" {
		if ctx.Err() != nil {
			return
		}
		path = Resolve(path, s, v)(ctx)
	}
}
