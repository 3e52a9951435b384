package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const upsertToken = `INSERT INTO metadata(key, value) VALUES ('token', 't')`

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func execToken(ctx context.Context, tx DBTX) error {
	_, err := tx.ExecContext(ctx, upsertToken)
	return err
}

func TestWithTx_Commit(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(upsertToken).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, WithTx(context.Background(), db, nil, execToken))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_Errors(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		fn      func(context.Context, DBTX) error
		wantErr []error
		wantMsg string
	}{
		{
			name:    "begin fails",
			setup:   func(m sqlmock.Sqlmock) { m.ExpectBegin().WillReturnError(sql.ErrConnDone) },
			fn:      func(context.Context, DBTX) error { t.Fatal("fn must not run"); return nil },
			wantErr: []error{sql.ErrConnDone},
			wantMsg: "begin tx",
		},
		{
			name: "fn fails",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(upsertToken).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
			fn: func(ctx context.Context, tx DBTX) error {
				require.NoError(t, execToken(ctx, tx))
				return errBoom
			},
			wantErr: []error{errBoom},
		},
		{
			name: "rollback fails",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback().WillReturnError(sql.ErrConnDone)
			},
			fn:      func(context.Context, DBTX) error { return errBoom },
			wantErr: []error{errBoom, sql.ErrConnDone},
			wantMsg: "rollback tx",
		},
		{
			name: "commit fails",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(upsertToken).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			fn:      execToken,
			wantErr: []error{sql.ErrConnDone},
			wantMsg: "commit tx",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMock(t)
			tc.setup(mock)

			err := WithTx(context.Background(), db, nil, tc.fn)
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.ErrorIs(t, err, want)
			}
			if tc.wantMsg != "" {
				assert.ErrorContains(t, err, tc.wantMsg)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTx_PanicRollsBack(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
			panic("kaput")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_SQLiteRollbackLeavesNoRows(t *testing.T) {
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB)`)
	require.NoError(t, err)

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := execToken(ctx, tx); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES ('token', 'dup')`)
		return err
	})
	require.Error(t, err, "duplicate key must fail the transaction")

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Zero(t, n)
}
