package usecases

import (
	"context"
	"fmt"

	"sanad/internal/application/supervisor/dto"
	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type UpdateSupervisorStatusCommand struct {
	EmployeeID uint
	StatusID   int
}

type UpdateSupervisorStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateSupervisorStatusCommand) (*dto.SupervisorDTO, error)
}

type UpdateSupervisorStatusUseCase struct {
	supervisorRepo supervisor.Repository
	logger         logger.Interface
}

func NewUpdateSupervisorStatusUseCase(
	supervisorRepo supervisor.Repository,
	logger logger.Interface,
) *UpdateSupervisorStatusUseCase {
	return &UpdateSupervisorStatusUseCase{
		supervisorRepo: supervisorRepo,
		logger:         logger,
	}
}

func (uc *UpdateSupervisorStatusUseCase) Execute(
	ctx context.Context,
	cmd UpdateSupervisorStatusCommand,
) (*dto.SupervisorDTO, error) {
	status, err := supervisor.NewStatus(cmd.StatusID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	s, err := uc.supervisorRepo.FindByEmployeeID(ctx, cmd.EmployeeID)
	if err != nil {
		uc.logger.Warnw("supervisor not found for status update",
			"employee_id", cmd.EmployeeID,
			"error", err)
		return nil, fmt.Errorf("failed to load supervisor: %w", err)
	}

	if err := s.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err := uc.supervisorRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to persist supervisor status",
			"employee_id", cmd.EmployeeID,
			"error", err)
		return nil, err
	}

	result := dto.ToSupervisorDTO(s)
	return &result, nil
}
