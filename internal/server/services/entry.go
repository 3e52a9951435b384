package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/server/models"
	"github.com/dmitrijs2005/classroom/internal/server/repositories/repomanager"
)

// ErrMissingEntryFields is returned by Create and Update when the title or
// the content is blank.
var ErrMissingEntryFields = fmt.Errorf("%w: missing title or content", common.ErrValidation)

// EntryService implements the entry CRUD operations on top of the configured
// repositories. Dates are assigned here, never taken from the caller.
type EntryService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEntryService(m repomanager.RepositoryManager) *EntryService {
	return &EntryService{repomanager: m, now: time.Now}
}

// List returns every entry, newest first.
func (s *EntryService) List(ctx context.Context) ([]*models.Entry, error) {
	entries, err := s.repomanager.Entries().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

// Create stores a new entry dated now.
func (s *EntryService) Create(ctx context.Context, title, content string) (*models.Entry, error) {
	title, content, err := normalize(title, content)
	if err != nil {
		return nil, err
	}

	e, err := s.repomanager.Entries().Create(ctx, &models.Entry{Title: title, Content: content, Date: s.timestamp()})
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return e, nil
}

// Update replaces title and content of entry id and refreshes its date.
func (s *EntryService) Update(ctx context.Context, id, title, content string) (*models.Entry, error) {
	title, content, err := normalize(title, content)
	if err != nil {
		return nil, err
	}

	e, err := s.repomanager.Entries().Update(ctx, &models.Entry{ID: id, Title: title, Content: content, Date: s.timestamp()})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error updating entry: %w", err)
	}
	return e, nil
}

func (s *EntryService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Entries().Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}

// timestamp is millisecond precision, the finest both backends keep.
func (s *EntryService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func normalize(title, content string) (string, string, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", ErrMissingEntryFields
	}
	return title, content, nil
}
