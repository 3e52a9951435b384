// Package entrylist owns the client's in-memory collection of entries and
// keeps it in step with the remote store.
//
// Local state only ever holds entries the store has confirmed: the list is
// replaced by a successful load, new entries are prepended after a successful
// create, an entry is removed after a successful delete and replaced in place
// after a successful update. Each outcome is reported through a notifier;
// failure causes go to the log only.
package entrylist

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/classroom/internal/client/models"
	"github.com/dmitrijs2005/classroom/internal/client/notify"
	"github.com/dmitrijs2005/classroom/internal/logging"
)

// API is the part of the remote client the controller calls.
type API interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, d models.Draft) (models.Entry, error)
	UpdateEntry(ctx context.Context, id string, d models.Draft) (models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}

var (
	// ErrClosed is returned for operations started or completed after Close.
	ErrClosed = errors.New("entry list closed")
	// ErrUnknownEntry is returned by Edit for an id not held locally.
	ErrUnknownEntry = errors.New("unknown entry")
)

const titleError = "Error"

var (
	msgLoadFailed = notify.Notification{Title: titleError, Description: "Failed to load entries", Variant: notify.VariantDestructive}

	msgCreated      = notify.Notification{Title: "Entry Added", Description: "Your new entry has been created successfully."}
	msgCreateFailed = notify.Notification{Title: titleError, Description: "Failed to create entry", Variant: notify.VariantDestructive}

	msgDeleted      = notify.Notification{Title: "Entry Deleted", Description: "The entry has been removed successfully."}
	msgDeleteFailed = notify.Notification{Title: titleError, Description: "Failed to delete entry", Variant: notify.VariantDestructive}

	msgUpdated      = notify.Notification{Title: "Entry Updated", Description: "Your entry has been updated successfully."}
	msgUpdateFailed = notify.Notification{Title: titleError, Description: "Failed to update entry", Variant: notify.VariantDestructive}
)

type Controller struct {
	api      API
	notifier notify.Notifier
	log      logging.Logger

	mu      sync.Mutex
	entries []models.Entry
	closed  bool
}

func New(api API, notifier notify.Notifier, log logging.Logger) *Controller {
	return &Controller{
		api:      api,
		notifier: notifier,
		log:      log.With("component", "entrylist"),
		entries:  []models.Entry{},
	}
}

// Entries returns a snapshot of the current collection.
func (c *Controller) Entries() []models.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Replace(c.entries)
}

// Find returns the locally held entry with the given id.
func (c *Controller) Find(id string) (models.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := indexOf(c.entries, id); i >= 0 {
		return c.entries[i], true
	}
	return models.Entry{}, false
}

// Close stops the controller from applying any further response.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// apply runs fn under the state lock unless the controller was closed while
// the request was in flight.
func (c *Controller) apply(fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	fn()
	return true
}

func (c *Controller) notify(ctx context.Context, n notify.Notification) {
	c.notifier.Notify(ctx, n)
}

// fail reports a failed remote call unless the controller is closed.
func (c *Controller) fail(ctx context.Context, n notify.Notification, op string, err error, args ...any) error {
	if c.isClosed() {
		return ErrClosed
	}
	c.log.Error(ctx, op+" failed", append(args, "error", err)...)
	c.notify(ctx, n)
	return err
}

// Load fetches the full collection and replaces local state with it.
func (c *Controller) Load(ctx context.Context) error {
	if c.isClosed() {
		return ErrClosed
	}

	loaded, err := c.api.ListEntries(ctx)
	if err != nil {
		return c.fail(ctx, msgLoadFailed, "load entries", err)
	}

	if !c.apply(func() { c.entries = Replace(loaded) }) {
		return ErrClosed
	}
	c.log.Debug(ctx, "entries loaded", "count", len(loaded))
	return nil
}

// Create stores a new entry and prepends the store's representation of it.
// The draft is expected to be validated by the caller.
func (c *Controller) Create(ctx context.Context, d models.Draft) error {
	if c.isClosed() {
		return ErrClosed
	}

	e, err := c.api.CreateEntry(ctx, d)
	if err != nil {
		return c.fail(ctx, msgCreateFailed, "create entry", err)
	}

	if !c.apply(func() { c.entries = Prepend(c.entries, e) }) {
		return ErrClosed
	}
	c.notify(ctx, msgCreated)
	return nil
}

// Delete removes the entry remotely, then locally.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if c.isClosed() {
		return ErrClosed
	}

	if err := c.api.DeleteEntry(ctx, id); err != nil {
		return c.fail(ctx, msgDeleteFailed, "delete entry", err, "id", id)
	}

	if !c.apply(func() { c.entries = Remove(c.entries, id) }) {
		return ErrClosed
	}
	c.notify(ctx, msgDeleted)
	return nil
}

// Edit updates a locally held entry. An unknown id is reported without
// contacting the store; a blank draft is ignored silently.
func (c *Controller) Edit(ctx context.Context, id string, d models.Draft) error {
	if c.isClosed() {
		return ErrClosed
	}
	if _, ok := c.Find(id); !ok {
		return c.fail(ctx, msgUpdateFailed, "update entry", ErrUnknownEntry, "id", id)
	}
	if !d.Valid() {
		return nil
	}

	e, err := c.api.UpdateEntry(ctx, id, d)
	if err != nil {
		return c.fail(ctx, msgUpdateFailed, "update entry", err, "id", id)
	}

	if !c.apply(func() { c.entries = Update(c.entries, id, e) }) {
		return ErrClosed
	}
	c.notify(ctx, msgUpdated)
	return nil
}
