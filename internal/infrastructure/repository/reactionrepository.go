package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/ticket"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
)

type ReactionRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReactionRepository(gdb *gorm.DB) *ReactionRepository {
	return &ReactionRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

// Toggle removes the reaction when the same (comment, user, emoji)
// tuple already exists and inserts it otherwise, then returns the
// comment's remaining reactions.
func (r *ReactionRepository) Toggle(ctx context.Context, reaction ticket.Reaction) ([]ticket.Reaction, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var existing models.ReactionModel
	err := tx.Where(
		"comment_id = ? AND user_id = ? AND emoji_code = ?",
		reaction.CommentID, reaction.UserID, reaction.EmojiCode,
	).First(&existing).Error

	switch err {
	case nil:
		if err := tx.Delete(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
	case gorm.ErrRecordNotFound:
		model := models.ReactionModel{
			CommentID: reaction.CommentID,
			UserID:    reaction.UserID,
			EmojiCode: reaction.EmojiCode,
			CreatedAt: reaction.CreatedAt.UnixMilli(),
		}
		if err := tx.Create(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to add reaction: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up reaction: %w", err)
	}

	return r.FindByCommentID(ctx, reaction.CommentID)
}

func (r *ReactionRepository) FindByCommentID(ctx context.Context, commentID uint) ([]ticket.Reaction, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ReactionModel
	err := tx.Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reactions: %w", err)
	}

	reactions := make([]ticket.Reaction, 0, len(modelList))
	for i := range modelList {
		reactions = append(reactions, r.mapper.ReactionToDomain(&modelList[i]))
	}

	return reactions, nil
}
