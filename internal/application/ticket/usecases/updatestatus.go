package usecases

import (
	"context"
	"fmt"

	"sanad/internal/domain/ticket"
	vo "sanad/internal/domain/ticket/valueobjects"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID uint
	StatusID int
}

type UpdateStatusResult struct {
	TicketID   uint
	StatusID   int
	StatusName string
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type UpdateStatusUseCase struct {
	ticketRepo ticket.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(
	ctx context.Context,
	cmd UpdateStatusCommand,
) (*UpdateStatusResult, error) {
	uc.logger.Infow("updating ticket status",
		"ticket_id", cmd.TicketID,
		"status_id", cmd.StatusID)

	newStatus, err := vo.NewStatus(cmd.StatusID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *UpdateStatusResult
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to load ticket: %w", err)
		}

		if err := t.ChangeStatus(newStatus); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to persist ticket status: %w", err)
		}

		result = &UpdateStatusResult{
			TicketID:   t.ID(),
			StatusID:   t.Status().ID(),
			StatusName: t.Status().String(),
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to update ticket status",
			"ticket_id", cmd.TicketID,
			"error", txErr)
		return nil, txErr
	}

	return result, nil
}
