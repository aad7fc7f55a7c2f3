package usecases

import (
	"context"
	"fmt"

	"sanad/internal/application/supervisor/dto"
	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/logger"
)

type GetSupervisorQuery struct {
	EmployeeID uint
}

type GetSupervisorExecutor interface {
	Execute(ctx context.Context, query GetSupervisorQuery) (*dto.SupervisorDTO, error)
}

type GetSupervisorUseCase struct {
	supervisorRepo supervisor.Repository
	logger         logger.Interface
}

func NewGetSupervisorUseCase(
	supervisorRepo supervisor.Repository,
	logger logger.Interface,
) *GetSupervisorUseCase {
	return &GetSupervisorUseCase{
		supervisorRepo: supervisorRepo,
		logger:         logger,
	}
}

func (uc *GetSupervisorUseCase) Execute(
	ctx context.Context,
	query GetSupervisorQuery,
) (*dto.SupervisorDTO, error) {
	s, err := uc.supervisorRepo.FindByEmployeeID(ctx, query.EmployeeID)
	if err != nil {
		uc.logger.Warnw("failed to load supervisor",
			"employee_id", query.EmployeeID,
			"error", err)
		return nil, fmt.Errorf("failed to load supervisor: %w", err)
	}

	result := dto.ToSupervisorDTO(s)
	return &result, nil
}
