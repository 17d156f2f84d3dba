// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose issues its own queries; none are expected

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrateDialect_NilDB(t *testing.T) {
	err := MigrateDialect(nil, SQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	for _, dir := range []string{string(Postgres), string(SQLite)} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries, "no migrations in %s", dir)

		for _, e := range entries {
			body, err := fs.ReadFile(embedMigrations, dir+"/"+e.Name())
			require.NoError(t, err)
			assert.Contains(t, string(body), "-- +goose Up", e.Name())
			assert.Contains(t, string(body), "-- +goose Down", e.Name())
		}
	}
}

func TestPostgresMigration_SlotColumns(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "postgres/00001_init.sql")
	require.NoError(t, err)

	for _, family := range []string{"sl_string", "ml_string", "number", "link", "boolean"} {
		for _, idx := range []string{"1", "2", "3"} {
			assert.Contains(t, string(body), "c_"+family+"_"+idx+" ")
		}
	}
	assert.NotContains(t, string(body), "c_number_4")
}
