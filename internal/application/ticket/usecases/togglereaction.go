package usecases

import (
	"context"
	"fmt"
	"strings"

	"sanad/internal/application/ticket/dto"
	"sanad/internal/domain/ticket"
	"sanad/internal/shared/biztime"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
)

type ToggleReactionCommand struct {
	CommentID uint
	UserID    uint
	EmojiCode string
}

type ToggleReactionResult struct {
	CommentID uint
	Reactions []dto.ReactionDTO
}

type ToggleReactionExecutor interface {
	Execute(ctx context.Context, cmd ToggleReactionCommand) (*ToggleReactionResult, error)
}

type ToggleReactionUseCase struct {
	commentRepo  ticket.CommentRepository
	reactionRepo ticket.ReactionRepository
	logger       logger.Interface
}

func NewToggleReactionUseCase(
	commentRepo ticket.CommentRepository,
	reactionRepo ticket.ReactionRepository,
	logger logger.Interface,
) *ToggleReactionUseCase {
	return &ToggleReactionUseCase{
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		logger:       logger,
	}
}

func (uc *ToggleReactionUseCase) Execute(
	ctx context.Context,
	cmd ToggleReactionCommand,
) (*ToggleReactionResult, error) {
	emoji := strings.TrimSpace(cmd.EmojiCode)
	if emoji == "" {
		return nil, errors.NewValidationError("emoji code is required")
	}

	// The comment must exist before a reaction can attach to it.
	if _, err := uc.commentRepo.FindByID(ctx, cmd.CommentID); err != nil {
		uc.logger.Warnw("reaction target comment not found",
			"comment_id", cmd.CommentID,
			"error", err)
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}

	reactions, err := uc.reactionRepo.Toggle(ctx, ticket.Reaction{
		CommentID: cmd.CommentID,
		UserID:    cmd.UserID,
		EmojiCode: emoji,
		CreatedAt: biztime.NowUTC(),
	})
	if err != nil {
		uc.logger.Errorw("failed to toggle reaction",
			"comment_id", cmd.CommentID,
			"user_id", cmd.UserID,
			"error", err)
		return nil, err
	}

	items := make([]dto.ReactionDTO, 0, len(reactions))
	for _, r := range reactions {
		items = append(items, dto.ToReactionDTO(r))
	}

	return &ToggleReactionResult{
		CommentID: cmd.CommentID,
		Reactions: items,
	}, nil
}
