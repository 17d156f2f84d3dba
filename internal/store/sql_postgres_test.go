package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a driver error", err: errors.New("boom"), want: NonRetryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "wrapped connection failure", err: errors.Join(ErrCommitingTransaction, &pgconn.PgError{Code: pgerrcode.ConnectionFailure}), want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "unknown code", err: &pgconn.PgError{Code: "XX000"}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_InTx_RetriesSerializationFailure(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE inventories").WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE inventories").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := db.inTx(testContext(), func(tx *sql.Tx) error {
		calls++
		_, err := tx.ExecContext(testContext(), "UPDATE inventories SET title = 'x'")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_InTx_DoesNotRetryConflicts(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := db.inTx(testContext(), func(tx *sql.Tx) error {
		calls++
		return &ConflictError{ID: 1, ExpectedVersion: 3, CurrentVersion: 4}
	})

	require.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_InTx_GivesUpAfterRetries(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)

	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	for range txMaxRetries + 1 {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := db.inTx(testContext(), func(tx *sql.Tx) error {
		calls++
		return deadlock
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.DeadlockDetected, pgErr.Code)
	assert.Equal(t, txMaxRetries+1, calls)
}
