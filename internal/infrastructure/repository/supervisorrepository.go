package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sanad/internal/domain/supervisor"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
)

var supervisorOrderByColumns = map[string]string{
	"employeeId":    "employee_id",
	"firstName":     "first_name",
	"lastName":      "last_name",
	"officialEmail": "official_email",
	"statusId":      "status_id",
	"createdDate":   "created_at",
}

type SupervisorRepository struct {
	db     *gorm.DB
	mapper mappers.SupervisorMapper
}

func NewSupervisorRepository(gdb *gorm.DB) *SupervisorRepository {
	return &SupervisorRepository{
		db:     gdb,
		mapper: mappers.NewSupervisorMapper(),
	}
}

func (r *SupervisorRepository) Save(ctx context.Context, s *supervisor.Supervisor) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("supervisor with the same ID number or email already exists")
		}
		return fmt.Errorf("failed to save supervisor: %w", err)
	}

	return s.SetEmployeeID(model.EmployeeID)
}

func (r *SupervisorRepository) Update(ctx context.Context, s *supervisor.Supervisor) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SupervisorModel{}).
		Where("employee_id = ?", model.EmployeeID).
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("supervisor with the same ID number or email already exists")
		}
		return fmt.Errorf("failed to update supervisor: %w", result.Error)
	}

	return nil
}

func (r *SupervisorRepository) FindByEmployeeID(ctx context.Context, employeeID uint) (*supervisor.Supervisor, error) {
	var model models.SupervisorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "employee_id = ?", employeeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("supervisor not found")
		}
		return nil, fmt.Errorf("failed to find supervisor: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupervisorRepository) FindByOfficialEmail(ctx context.Context, email string) (*supervisor.Supervisor, error) {
	var model models.SupervisorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, "official_email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("supervisor not found")
		}
		return nil, fmt.Errorf("failed to find supervisor by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupervisorRepository) List(ctx context.Context, filter supervisor.Filter) ([]*supervisor.Supervisor, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.SupervisorModel{})

	if filter.Status != nil {
		tx = tx.Where("status_id = ?", int(*filter.Status))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where(
			"first_name LIKE ? OR last_name LIKE ? OR official_email LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count supervisors: %w", err)
	}

	tx = tx.Order(buildOrderClause(supervisorOrderByColumns, filter.SortBy, filter.SortOrder, "created_at DESC"))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		tx = tx.Offset(offset).Limit(filter.PageSize)
	}

	var modelList []models.SupervisorModel
	if err := tx.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list supervisors: %w", err)
	}

	supervisors := make([]*supervisor.Supervisor, 0, len(modelList))
	for i := range modelList {
		s, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		supervisors = append(supervisors, s)
	}

	return supervisors, total, nil
}
