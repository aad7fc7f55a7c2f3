package usecases

import (
	"context"
	"fmt"

	"sanad/internal/application/ticket/dto"
	"sanad/internal/domain/ticket"
	"sanad/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(
	ctx context.Context,
	query GetTicketQuery,
) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	detail := dto.ToTicketDetailDTO(t)
	return &detail, nil
}
