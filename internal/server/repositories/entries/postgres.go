package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/dbx"
	"github.com/dmitrijs2005/classroom/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all entries, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Entry, error) {
	query :=
		`SELECT id, title, content, date FROM entries
		 ORDER BY date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0)
	for rows.Next() {
		e := &models.Entry{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Date = e.Date.UTC()
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create assigns a new UUID to entry and inserts it.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query :=
		`INSERT INTO entries (id, title, content, date)
		 VALUES ($1, $2, $3, $4)
		 `

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, entry.Title, entry.Content, entry.Date); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	entry.ID = id
	return entry, nil
}

func (r *PostgresRepository) Update(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if _, err := uuid.Parse(entry.ID); err != nil {
		return nil, common.ErrNotFound
	}

	query :=
		`UPDATE entries SET title = $2, content = $3, date = $4
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, entry.ID, entry.Title, entry.Content, entry.Date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := expectOneRow(res.RowsAffected()); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(res.RowsAffected())
}

func expectOneRow(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
