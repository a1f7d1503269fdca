package mysql

import (
	"context"
	"errors"
	"fmt"

	"recordkeeper/internal/domain/record"

	"gorm.io/gorm"
)

// recordRow is the gorm mapping of the records table.
type recordRow struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:longtext;not null"`
	Created     int64  `gorm:"not null"`
	Updated     int64  `gorm:"not null"`
}

func (recordRow) TableName() string {
	return "records"
}

func (r recordRow) toRecord() *record.Record {
	return &record.Record{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Created:     r.Created,
		Updated:     r.Updated,
	}
}

// updates builds the column map for a partial update.
func updates(fields record.Fields) map[string]any {
	cols := map[string]any{"updated": fields.Updated}
	if fields.Name != nil {
		cols["name"] = *fields.Name
	}
	if fields.Description != nil {
		cols["description"] = *fields.Description
	}
	return cols
}

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) GetByID(ctx context.Context, id int) (*record.Record, error) {
	var row recordRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, record.ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return row.toRecord(), nil
}

func (r *RecordRepository) Insert(ctx context.Context, rec *record.Record) (int, error) {
	row := recordRow{
		Name:        rec.Name,
		Description: rec.Description,
		Created:     rec.Created,
		Updated:     rec.Updated,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	return row.ID, nil
}

func (r *RecordRepository) UpdateByID(ctx context.Context, id int, fields record.Fields) error {
	err := r.db.WithContext(ctx).
		Model(&recordRow{}).
		Where("id = ?", id).
		Updates(updates(fields)).Error
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (r *RecordRepository) DeleteByID(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&recordRow{}, id).Error; err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (r *RecordRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&recordRow{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return count > 0, nil
}
