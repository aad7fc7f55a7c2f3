package usecases

import (
	"context"

	"sanad/internal/application/ticket/dto"
	"sanad/internal/domain/ticket"
	vo "sanad/internal/domain/ticket/valueobjects"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ListTicketsQuery struct {
	StatusID  *int
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets    []dto.TicketListItemDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(
	ctx context.Context,
	query ListTicketsQuery,
) (*ListTicketsResult, error) {
	uc.logger.Debugw("listing support tickets",
		"page", query.Page,
		"page_size", query.PageSize,
		"sort_by", query.SortBy)

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize <= 0 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := ticket.Filter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.StatusID != nil {
		status, err := vo.NewStatus(*query.StatusID)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	tickets, totalCount, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:    items,
		TotalCount: totalCount,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
