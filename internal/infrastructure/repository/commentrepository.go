package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/domain/ticket"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	reactions, err := r.findReactions(ctx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.mapper.CommentToDomain(&model, reactions[model.ID])
}

func (r *CommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CommentModel
	err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := make([]uint, 0, len(modelList))
	for _, m := range modelList {
		ids = append(ids, m.ID)
	}

	reactions, err := r.findReactions(ctx, ids)
	if err != nil {
		return nil, err
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i], reactions[modelList[i].ID])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (r *CommentRepository) findReactions(ctx context.Context, commentIDs []uint) (map[uint][]ticket.Reaction, error) {
	grouped := make(map[uint][]ticket.Reaction)
	if len(commentIDs) == 0 {
		return grouped, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ReactionModel
	err := tx.Where("comment_id IN ?", commentIDs).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reactions: %w", err)
	}

	for i := range modelList {
		reaction := r.mapper.ReactionToDomain(&modelList[i])
		grouped[reaction.CommentID] = append(grouped[reaction.CommentID], reaction)
	}

	return grouped, nil
}
