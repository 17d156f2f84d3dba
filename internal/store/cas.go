// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Mutation maps columns to the values a compare-and-swap write assigns.
// The version and updated_at columns are managed by the write itself.
type Mutation map[string]any

// buildCompareAndSwapQuery builds a single statement that applies set to the
// row selected by scope only if its version equals expectedVersion, bumping
// the version by one in the same write.
//
// The statement returns one row when the target exists:
// (observed version, new version), where new version is NULL if the
// predicate failed. It returns no rows when the target does not exist.
//
// The observed version comes from the statement snapshot. Under READ
// COMMITTED a writer that commits while the UPDATE waits on the row lock
// makes the predicate fail against its newer version, so the observed
// version can be behind the stored one. It is diagnostic only; callers
// reload the record to learn the current version.
func buildCompareAndSwapQuery(table string, scope sq.Eq, expectedVersion int64, set Mutation) (string, []any, error) {
	targetSQL, targetArgs, err := sq.Select("id", "version").
		From(table).
		Where(scope).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updateSQL, updateArgs, err := sq.Update(table).
		SetMap(set).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(scope).
		Where(sq.Eq{"version": expectedVersion}).
		Suffix("RETURNING id, version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query := fmt.Sprintf(`WITH target_record AS (%s), updated_record AS (%s) `+
		`SELECT target_record.version, updated_record.version `+
		`FROM target_record LEFT JOIN updated_record ON updated_record.id = target_record.id`,
		targetSQL, updateSQL)

	query, err = sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, append(targetArgs, updateArgs...), nil
}

// buildCompareAndDeleteQuery is the delete counterpart of
// buildCompareAndSwapQuery. The second returned column is the deleted id,
// NULL if the version predicate failed.
func buildCompareAndDeleteQuery(table string, scope sq.Eq, expectedVersion int64) (string, []any, error) {
	targetSQL, targetArgs, err := sq.Select("id", "version").
		From(table).
		Where(scope).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteSQL, deleteArgs, err := sq.Delete(table).
		Where(scope).
		Where(sq.Eq{"version": expectedVersion}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query := fmt.Sprintf(`WITH target_record AS (%s), deleted_record AS (%s) `+
		`SELECT target_record.version, deleted_record.id `+
		`FROM target_record LEFT JOIN deleted_record ON deleted_record.id = target_record.id`,
		targetSQL, deleteSQL)

	query, err = sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, append(targetArgs, deleteArgs...), nil
}

// execCompareAndSwap runs a statement built by buildCompareAndSwapQuery or
// buildCompareAndDeleteQuery and interprets its result:
//   - no row: [ErrNotFound];
//   - row with NULL second column: [*ConflictError];
//   - otherwise the second column (new version or deleted id).
func execCompareAndSwap(ctx context.Context, q querier, id, expectedVersion int64, query string, args []any) (int64, error) {
	var current int64
	var written sql.NullInt64

	err := q.QueryRowContext(ctx, query, args...).Scan(&current, &written)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !written.Valid {
		return 0, &ConflictError{ID: id, ExpectedVersion: expectedVersion, CurrentVersion: current}
	}

	return written.Int64, nil
}
