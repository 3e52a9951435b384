// Package addform implements the two-field entry form: it is opened, filled
// in, and either submitted or cancelled.
package addform

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/classroom/internal/client/models"
)

// SubmitFunc receives the untrimmed field values of a valid submission.
type SubmitFunc func(ctx context.Context, d models.Draft)

type Form struct {
	mu       sync.Mutex
	open     bool
	title    string
	content  string
	onSubmit SubmitFunc
}

func New(onSubmit SubmitFunc) *Form {
	return &Form{onSubmit: onSubmit}
}

// Open presents the form, keeping any values typed before a cancel.
func (f *Form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// OpenWith presents the form pre-filled with d.
func (f *Form) OpenWith(d models.Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title, f.content = d.Title, d.Content
	f.open = true
}

func (f *Form) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *Form) SetTitle(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title = s
}

func (f *Form) SetContent(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = s
}

// Values returns the current field values.
func (f *Form) Values() models.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Draft{Title: f.title, Content: f.content}
}

// Submit hands the values to the callback, clears both fields and closes the
// form. It does nothing while the form is closed and rejects, silently and
// leaving the form open, a title or content that is blank after trimming.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return false
	}
	d := models.Draft{Title: f.title, Content: f.content}
	if !d.Valid() {
		f.mu.Unlock()
		return false
	}
	f.title, f.content = "", ""
	f.open = false
	f.mu.Unlock()

	if f.onSubmit != nil {
		f.onSubmit(ctx, d)
	}
	return true
}

// Cancel closes the form without clearing its fields.
func (f *Form) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
}
