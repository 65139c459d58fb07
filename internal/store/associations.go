// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

type associationRepository struct {
	db *DB
}

// NewAssociationRepository constructs the sqlite-backed
// [AssociationRepository].
func NewAssociationRepository(db *DB) AssociationRepository {
	return &associationRepository{db: db}
}

// Save implements [AssociationRepository]. An existing bundle for the
// same endpoint is replaced in place, keeping its creation time.
func (r *associationRepository) Save(ctx context.Context, rec AssociationRecord) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}

	query, args, err := sq.Insert("associations").
		Columns("host", "port", "client_id", "sealed_key", "created_at", "updated_at").
		Values(rec.Host, rec.Port, rec.ClientID, rec.SealedKey, rec.CreatedAt, now).
		Suffix(`ON CONFLICT (host, port) DO UPDATE SET
			client_id  = excluded.client_id,
			sealed_key = excluded.sealed_key,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save association: %w", err)
	}

	r.db.logger.Debug().Str("host", rec.Host).Int("port", rec.Port).Msg("association saved")

	return nil
}

// Get implements [AssociationRepository].
func (r *associationRepository) Get(ctx context.Context, host string, port int) (AssociationRecord, error) {
	query, args, err := sq.Select("host", "port", "client_id", "sealed_key", "created_at", "updated_at").
		From("associations").
		Where(sq.Eq{"host": host, "port": port}).
		ToSql()
	if err != nil {
		return AssociationRecord{}, fmt.Errorf("build get query: %w", err)
	}

	var rec AssociationRecord
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&rec.Host, &rec.Port, &rec.ClientID, &rec.SealedKey, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return AssociationRecord{}, fmt.Errorf("%w: %s:%d", ErrAssociationNotFound, host, port)
	}
	if err != nil {
		return AssociationRecord{}, fmt.Errorf("get association: %w", err)
	}

	return rec, nil
}

// Delete implements [AssociationRepository].
func (r *associationRepository) Delete(ctx context.Context, host string, port int) error {
	query, args, err := sq.Delete("associations").
		Where(sq.Eq{"host": host, "port": port}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete association: %w", err)
	}

	return nil
}
