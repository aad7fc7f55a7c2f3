package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sanad/internal/domain/lookup"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
)

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(gdb *gorm.DB) *LookupRepository {
	return &LookupRepository{db: gdb}
}

func (r *LookupRepository) Find(ctx context.Context, q lookup.Query) ([]lookup.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Where("sp_name = ? AND language = ?", q.SPName, q.Language)

	if q.Parameter != "" {
		tx = tx.Where("parameter = ?", q.Parameter)
	}

	var modelList []models.LookupEntryModel
	err := tx.Order("sort_order ASC, label ASC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup entries: %w", err)
	}

	entries := make([]lookup.Entry, 0, len(modelList))
	for _, m := range modelList {
		entries = append(entries, lookup.Entry{
			ID:        m.ID,
			SPName:    m.SPName,
			Parameter: m.Parameter,
			Language:  m.Language,
			Label:     m.Label,
			Value:     m.Value,
			SortOrder: m.SortOrder,
		})
	}

	return entries, nil
}

func (r *LookupRepository) Upsert(ctx context.Context, entries []lookup.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	modelList := make([]models.LookupEntryModel, 0, len(entries))
	for _, e := range entries {
		modelList = append(modelList, models.LookupEntryModel{
			SPName:    e.SPName,
			Parameter: e.Parameter,
			Language:  e.Language,
			Label:     e.Label,
			Value:     e.Value,
			SortOrder: e.SortOrder,
		})
	}

	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "sp_name"},
			{Name: "parameter"},
			{Name: "language"},
			{Name: "label"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value", "sort_order", "updated_at"}),
	}).Create(&modelList).Error
	if err != nil {
		return fmt.Errorf("failed to upsert lookup entries: %w", err)
	}

	return nil
}
