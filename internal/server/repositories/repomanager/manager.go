// Package repomanager opens the configured database and vends the entry and
// user repositories backed by it.
package repomanager

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/classroom/internal/server/repositories/entries"
	"github.com/dmitrijs2005/classroom/internal/server/repositories/users"
)

type RepositoryManager interface {
	Entries() entries.Repository
	Users() users.Repository
	Close(ctx context.Context) error
}

// Backend names returned by BackendFor.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongodb"
)

// BackendFor picks the storage backend from the DSN scheme.
func BackendFor(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database DSN: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	default:
		return "", fmt.Errorf("unsupported database DSN scheme %q", u.Scheme)
	}
}

// Open connects to the database named by dsn, prepares its schema and returns
// a manager over it. mongoDatabase is used only for MongoDB DSNs.
func Open(ctx context.Context, dsn, mongoDatabase string) (RepositoryManager, error) {
	backend, err := BackendFor(dsn)
	if err != nil {
		return nil, err
	}

	if backend == BackendMongo {
		return OpenMongo(ctx, dsn, mongoDatabase)
	}
	return OpenPostgres(ctx, dsn)
}
