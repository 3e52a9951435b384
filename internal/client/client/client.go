package client

import (
	"context"

	"github.com/dmitrijs2005/classroom/internal/client/models"
)

type Client interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, d models.Draft) (models.Entry, error)
	UpdateEntry(ctx context.Context, id string, d models.Draft) (models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Whoami(ctx context.Context) (string, error)
}
