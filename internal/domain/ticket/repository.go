package ticket

import (
	"context"

	vo "sanad/internal/domain/ticket/valueobjects"
)

// Filter narrows and orders ticket listings. SortBy uses the console's
// camelCase column keys; repositories translate them through a whitelist.
type Filter struct {
	Status    *vo.Status
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, status vo.Status) (int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type ReactionRepository interface {
	// Toggle inserts the reaction if absent and deletes it if present,
	// returning the comment's reaction set after the change.
	Toggle(ctx context.Context, reaction Reaction) ([]Reaction, error)
	FindByCommentID(ctx context.Context, commentID uint) ([]Reaction, error)
}
