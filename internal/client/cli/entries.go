package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/classroom/internal/client/addform"
	"github.com/dmitrijs2005/classroom/internal/client/client"
	"github.com/dmitrijs2005/classroom/internal/client/entrycard"
	"github.com/dmitrijs2005/classroom/internal/client/entrylist"
	"github.com/dmitrijs2005/classroom/internal/client/models"
)

// cancelInput abandons the form when typed at any of its prompts.
const cancelInput = "/cancel"

// entriesScreen is one mounted entry list view.
type entriesScreen struct {
	app  *App
	ctrl *entrylist.Controller
	form *addform.Form
}

func (a *App) newEntriesScreen() *entriesScreen {
	s := &entriesScreen{
		app:  a,
		ctrl: entrylist.New(a.api, a.notifier, a.log),
	}
	s.form = addform.New(func(ctx context.Context, d models.Draft) {
		_ = s.ctrl.Create(ctx, d)
	})
	return s
}

func (a *App) entriesView(ctx context.Context) string {
	s := a.newEntriesScreen()
	defer s.ctrl.Close()

	if err := s.ctrl.Load(ctx); err == nil {
		_ = s.List(ctx)
	}
	return runEntriesREPL(ctx, s, a.status, a.reader, a.out)
}

func (s *entriesScreen) cards(ctx context.Context) []entrycard.Card {
	entries := s.ctrl.Entries()
	cards := make([]entrycard.Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, s.card(ctx, e))
	}
	return cards
}

func (s *entriesScreen) card(ctx context.Context, e models.Entry) entrycard.Card {
	return entrycard.Card{
		Entry:    e,
		OnEdit:   func(id string) { _ = s.editEntry(ctx, id) },
		OnDelete: func(id string) { _ = s.ctrl.Delete(ctx, id) },
	}
}

func (s *entriesScreen) List(ctx context.Context) error {
	return entrycard.RenderAll(s.app.out, s.cards(ctx))
}

func (s *entriesScreen) Reload(ctx context.Context) error {
	if err := s.ctrl.Load(ctx); err != nil {
		return err
	}
	return s.List(ctx)
}

// Add opens the entry form and keeps prompting while it stays open.
func (s *entriesScreen) Add(ctx context.Context) error {
	return s.fill(ctx, s.form, "New entry")
}

// Edit opens a form pre-filled with the entry; unknown ids are reported by
// the controller.
func (s *entriesScreen) Edit(ctx context.Context, id string) error {
	e, ok := s.ctrl.Find(id)
	if !ok {
		return s.ctrl.Edit(ctx, id, models.Draft{})
	}
	s.card(ctx, e).Edit()
	return nil
}

func (s *entriesScreen) editEntry(ctx context.Context, id string) error {
	e, ok := s.ctrl.Find(id)
	if !ok {
		return s.ctrl.Edit(ctx, id, models.Draft{})
	}
	form := addform.New(func(ctx context.Context, d models.Draft) {
		_ = s.ctrl.Edit(ctx, id, d)
	})
	form.OpenWith(models.Draft{Title: e.Title, Content: e.Content})
	return s.fill(ctx, form, "Edit entry "+id)
}

func (s *entriesScreen) Delete(ctx context.Context, id string) error {
	e, ok := s.ctrl.Find(id)
	if !ok {
		e = models.Entry{ID: id}
	}
	s.card(ctx, e).Delete()
	return nil
}

func (s *entriesScreen) Whoami(ctx context.Context) error {
	msg, err := s.app.authService.Whoami(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			s.app.println("The server rejected the stored token; log out and log in again.")
		} else {
			s.app.println("Could not reach the server.")
		}
		s.app.log.Warn(ctx, "whoami failed", "error", err)
		return err
	}
	s.app.println(msg)
	return nil
}

func (s *entriesScreen) Logout(ctx context.Context) error {
	s.ctrl.Close()
	return s.app.Logout(ctx)
}

// fill prompts for the form fields until the form closes. An empty answer
// keeps the current value; cancelInput or end of input cancels.
func (s *entriesScreen) fill(ctx context.Context, form *addform.Form, heading string) error {
	w := s.app.out
	if !form.IsOpen() {
		form.Open()
	}
	fmt.Fprintf(w, "%s (type %s to abort)\n", heading, cancelInput)

	for form.IsOpen() {
		cur := form.Values()

		title, err := getSimpleText(s.app.reader, fieldPrompt("Title", cur.Title), w)
		if err != nil || title == cancelInput {
			form.Cancel()
			return err
		}
		if title != "" {
			form.SetTitle(title)
		}

		content, err := GetMultiline(s.app.reader, fieldPrompt("Content", cur.Content), w)
		if err != nil || content == cancelInput {
			form.Cancel()
			return err
		}
		if content != "" {
			form.SetContent(content)
		}

		form.Submit(ctx)
	}
	return nil
}

func fieldPrompt(name, current string) string {
	lines := entrycard.Excerpt(current, 1)
	if len(lines) == 0 {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, lines[0])
}
