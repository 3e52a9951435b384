// Package users stores registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/classroom/internal/server/models"
)

// Repository persists users. Create reports common.ErrAlreadyExists for a
// taken username; GetUserByLogin reports common.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, username string) (*models.User, error)
}
