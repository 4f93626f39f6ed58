package main

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip812/portfolio/database"
	"github.com/ip812/portfolio/status"
)

func TestSwappableDB(t *testing.T) {
	s := NewSwappableDB()

	_, err := s.DB()
	require.ErrorIs(t, err, status.ErrDatabaseNotReady)

	db := &sql.DB{}
	s.Swap(db)

	got, err := s.DB()
	require.NoError(t, err)
	assert.Same(t, db, got)
}

func TestSwappableDBClose(t *testing.T) {
	s := NewSwappableDB()
	require.NoError(t, s.Close())

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	s.Swap(db)

	require.NoError(t, s.Close())
	require.NoError(t, mock.ExpectationsWereMet())

	_, err = s.DB()
	require.ErrorIs(t, err, status.ErrDatabaseNotReady)
	require.NoError(t, s.Close())
}

func TestInTxRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = inTx(context.Background(), db, func(q *database.Queries) error {
		assert.NotNil(t, q)
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTxCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = inTx(context.Background(), db, func(*database.Queries) error { return nil })
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTxBeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err = inTx(context.Background(), db, func(*database.Queries) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}
