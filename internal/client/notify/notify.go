// Package notify delivers short user-facing notifications (the terminal
// counterpart of a toast).
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Variant tells the presenter how to style a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Printer writes notifications to w, one per line.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Notify(_ context.Context, n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	mark := "*"
	if n.Variant == VariantDestructive {
		mark = "!"
	}
	if n.Description == "" {
		fmt.Fprintf(p.w, "[%s] %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(p.w, "[%s] %s: %s\n", mark, n.Title, n.Description)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications in delivery order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
