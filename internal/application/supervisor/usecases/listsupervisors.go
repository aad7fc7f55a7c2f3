package usecases

import (
	"context"

	"sanad/internal/application/supervisor/dto"
	"sanad/internal/domain/supervisor"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListSupervisorsQuery struct {
	StatusID  *int
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListSupervisorsResult struct {
	Supervisors []dto.SupervisorDTO
	TotalCount  int64
	Page        int
	PageSize    int
}

type ListSupervisorsExecutor interface {
	Execute(ctx context.Context, query ListSupervisorsQuery) (*ListSupervisorsResult, error)
}

type ListSupervisorsUseCase struct {
	supervisorRepo supervisor.Repository
	logger         logger.Interface
}

func NewListSupervisorsUseCase(
	supervisorRepo supervisor.Repository,
	logger logger.Interface,
) *ListSupervisorsUseCase {
	return &ListSupervisorsUseCase{
		supervisorRepo: supervisorRepo,
		logger:         logger,
	}
}

func (uc *ListSupervisorsUseCase) Execute(
	ctx context.Context,
	query ListSupervisorsQuery,
) (*ListSupervisorsResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize <= 0 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := supervisor.Filter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.StatusID != nil {
		status, err := supervisor.NewStatus(*query.StatusID)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	supervisors, totalCount, err := uc.supervisorRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list supervisors", "error", err)
		return nil, errors.NewInternalError("failed to list supervisors")
	}

	items := make([]dto.SupervisorDTO, 0, len(supervisors))
	for _, s := range supervisors {
		items = append(items, dto.ToSupervisorDTO(s))
	}

	return &ListSupervisorsResult{
		Supervisors: items,
		TotalCount:  totalCount,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}, nil
}
