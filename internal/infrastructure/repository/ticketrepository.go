package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sanad/internal/domain/ticket"
	vo "sanad/internal/domain/ticket/valueobjects"
	"sanad/internal/infrastructure/persistence/mappers"
	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/db"
	"sanad/internal/shared/errors"
)

// ticketOrderByColumns whitelists sortable columns to prevent SQL
// injection, keyed by the console's camelCase sort keys.
var ticketOrderByColumns = map[string]string{
	"ticketId":    "id",
	"createdDate": "created_at",
	"categoryId":  "category_id",
	"serviceId":   "service_id",
	"statusId":    "status_id",
	"issueTitle":  "issue_title",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when updated values equal existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.Status != nil {
		tx = tx.Where("status_id = ?", filter.Status.ID())
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("issue_title LIKE ? OR issue_description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	tx = tx.Order(buildOrderClause(ticketOrderByColumns, filter.SortBy, filter.SortOrder, "created_at DESC"))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		tx = tx.Offset(offset).Limit(filter.PageSize)
	}

	var modelList []models.TicketModel
	if err := tx.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.TicketModel{}).
		Where("status_id = ?", status.ID()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var commentModels []models.CommentModel
	err := tx.Where("ticket_id = ?", t.ID()).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	if len(commentModels) == 0 {
		return nil
	}

	commentIDs := make([]uint, 0, len(commentModels))
	for _, cm := range commentModels {
		commentIDs = append(commentIDs, cm.ID)
	}

	var reactionModels []models.ReactionModel
	err = tx.Where("comment_id IN ?", commentIDs).
		Order("created_at ASC").
		Find(&reactionModels).Error
	if err != nil {
		return fmt.Errorf("failed to load reactions: %w", err)
	}

	reactionsByComment := make(map[uint][]ticket.Reaction)
	for i := range reactionModels {
		reaction := r.mapper.ReactionToDomain(&reactionModels[i])
		reactionsByComment[reaction.CommentID] = append(reactionsByComment[reaction.CommentID], reaction)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i], reactionsByComment[commentModels[i].ID])
		if err != nil {
			return err
		}
		comments = append(comments, c)
	}

	t.AttachComments(comments)
	return nil
}

// buildOrderClause maps a console sort key through the column whitelist
// and returns a safe ORDER BY expression, falling back when the key is
// unknown or absent.
func buildOrderClause(whitelist map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := whitelist[sortBy]
	if !ok {
		return fallback
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "DESC") {
		direction = "DESC"
	}
	return column + " " + direction
}
