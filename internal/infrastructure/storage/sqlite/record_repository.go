package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"recordkeeper/internal/domain/record"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) GetByID(ctx context.Context, id int) (*record.Record, error) {
	const query = `SELECT id, name, description, created, updated FROM records WHERE id = ?`

	var rec record.Record
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Created, &rec.Updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	return &rec, nil
}

func (r *RecordRepository) Insert(ctx context.Context, rec *record.Record) (int, error) {
	const query = `INSERT INTO records (name, description, created, updated) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, rec.Name, rec.Description, rec.Created, rec.Updated)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert record: last insert id: %w", err)
	}
	return int(id), nil
}

func (r *RecordRepository) UpdateByID(ctx context.Context, id int, fields record.Fields) error {
	const query = `
		UPDATE records
		SET name = COALESCE(?, name),
		    description = COALESCE(?, description),
		    updated = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, nullable(fields.Name), nullable(fields.Description), fields.Updated, id)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (r *RecordRepository) DeleteByID(ctx context.Context, id int) error {
	const query = `DELETE FROM records WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (r *RecordRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM records WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return exists, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
