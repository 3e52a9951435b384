// Package entries stores classroom entries. Two backends are provided:
// PostgreSQL (UUID ids) and MongoDB (ObjectID hex ids).
package entries

import (
	"context"

	"github.com/dmitrijs2005/classroom/internal/server/models"
)

// Repository persists entries. Update and Delete report common.ErrNotFound
// when no entry has the given id, including ids the backend cannot parse.
type Repository interface {
	List(ctx context.Context) ([]*models.Entry, error)
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Delete(ctx context.Context, id string) error
}
