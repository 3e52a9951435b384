package entries

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var (
	listQuery   = `(?s)^SELECT\s+id,\s*title,\s*content,\s*date\s+FROM\s+entries\s+ORDER\s+BY\s+date\s+DESC\s*$`
	insertQuery = `(?s)^INSERT\s+INTO\s+entries\s*\(id,\s*title,\s*content,\s*date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`
	updateQuery = `(?s)^UPDATE\s+entries\s+SET\s+title\s*=\s*\$2,\s*content\s*=\s*\$3,\s*date\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$1\s*$`
	deleteQuery = `^DELETE FROM entries WHERE id = \$1$`
)

func TestList_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	newer := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "content", "date"}).
		AddRow("e2", "Week 2", "Fractions", newer).
		AddRow("e1", "Week 1", "Decimals", older)
	mock.ExpectQuery(listQuery).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, &models.Entry{ID: "e2", Title: "Week 2", Content: "Fractions", Date: newer}, got[0])
	assert.Equal(t, "e1", got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DatesInUTC(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	riga := time.FixedZone("EET", 2*60*60)
	local := time.Date(2024, 3, 2, 1, 30, 0, 0, riga)
	mock.ExpectQuery(listQuery).WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "content", "date"}).AddRow("e1", "Week 1", "Decimals", local),
	)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.UTC, got[0].Date.Location())
	assert.True(t, got[0].Date.Equal(local))
	assert.Equal(t, "2024-03-01", got[0].Date.Format("2006-01-02"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "date"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(listQuery).WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background())
		require.Error(t, err)
		assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "title", "content", "date"}).
			AddRow("e1", "t", "c", "not-a-time")
		mock.ExpectQuery(listQuery).WillReturnRows(rows)

		_, err := repo.List(context.Background())
		require.Error(t, err)
	})

	t.Run("rows", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "title", "content", "date"}).
			AddRow("e1", "t", "c", time.Now()).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery(listQuery).WillReturnRows(rows)

		_, err := repo.List(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken row")
	})
}

func TestCreate_AssignsUUID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(insertQuery).
		WithArgs(sqlmock.AnyArg(), "Week 1", "Decimals", date).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.Entry{Title: "Week 1", Content: "Decimals", Date: date})
	require.NoError(t, err)

	_, perr := uuid.Parse(got.ID)
	assert.NoError(t, perr, "id should be a UUID")
	assert.Equal(t, "Week 1", got.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Entry{Title: "t", Content: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUpdate(t *testing.T) {
	id := uuid.NewString()
	date := time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(updateQuery).
			WithArgs(id, "New", "Body", date).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.Update(context.Background(), &models.Entry{ID: id, Title: "New", Content: "Body", Date: date})
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), &models.Entry{ID: id, Title: "New", Content: "Body", Date: date})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("malformed id never reaches the db", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		_, err := repo.Update(context.Background(), &models.Entry{ID: "42", Title: "New", Content: "Body"})
		assert.ErrorIs(t, err, common.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rows affected error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))

		_, err := repo.Update(context.Background(), &models.Entry{ID: id, Title: "New", Content: "Body", Date: date})
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), common.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, _, db := newRepoWithMock(t)
		defer db.Close()

		assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), common.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(deleteQuery).WillReturnError(errors.New("db down"))

		err := repo.Delete(context.Background(), id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}
