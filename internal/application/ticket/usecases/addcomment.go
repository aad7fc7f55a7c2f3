package usecases

import (
	"context"
	"fmt"

	"sanad/internal/application/ticket/dto"
	"sanad/internal/domain/ticket"
	"sanad/internal/shared/db"
	"sanad/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID    uint
	AuthorID    uint
	AuthorLabel string
	Text        string
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(
	ctx context.Context,
	cmd AddCommentCommand,
) (*dto.CommentDTO, error) {
	uc.logger.Infow("adding ticket comment",
		"ticket_id", cmd.TicketID,
		"author_id", cmd.AuthorID)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.AuthorLabel, cmd.Text)
	if err != nil {
		return nil, err
	}

	// Comment save and ticket touch are atomic so the ticket's
	// updated_at always reflects its latest conversation activity.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to load ticket: %w", err)
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}

		if err := t.AddComment(comment); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to add comment",
			"ticket_id", cmd.TicketID,
			"error", txErr)
		return nil, txErr
	}

	result := dto.ToCommentDTO(comment)
	return &result, nil
}
