package postgres

import (
	"context"
	"errors"
	"fmt"

	"recordkeeper/internal/domain/record"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

func (r *RecordRepository) GetByID(ctx context.Context, id int) (*record.Record, error) {
	const query = `
		SELECT id, name, description, created, updated
		FROM records
		WHERE id = $1`

	var rec record.Record
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Created, &rec.Updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	return &rec, nil
}

func (r *RecordRepository) Insert(ctx context.Context, rec *record.Record) (int, error) {
	const query = `
		INSERT INTO records (name, description, created, updated)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, rec.Name, rec.Description, rec.Created, rec.Updated).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	return id, nil
}

func (r *RecordRepository) UpdateByID(ctx context.Context, id int, fields record.Fields) error {
	const query = `
		UPDATE records
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    updated = $3
		WHERE id = $4`

	if _, err := r.pool.Exec(ctx, query, fields.Name, fields.Description, fields.Updated, id); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (r *RecordRepository) DeleteByID(ctx context.Context, id int) error {
	const query = `DELETE FROM records WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (r *RecordRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM records WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return exists, nil
}
