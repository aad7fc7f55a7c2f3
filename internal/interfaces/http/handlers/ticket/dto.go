package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/ticket/usecases"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/utils"
)

// The console sends list parameters PascalCase in the query string and
// body fields PascalCase in JSON; binding tags accept both spellings.

type UpdateStatusRequest struct {
	TicketID uint `json:"TicketId" binding:"required"`
	StatusID int  `json:"StatusId" binding:"required"`
}

type UpsertCommentRequest struct {
	TicketID   uint   `json:"TicketId" binding:"required"`
	AuthorID   uint   `json:"AuthorId"`
	AuthorName string `json:"AuthorName"`
	Comment    string `json:"Comment" binding:"required"`
}

type UpsertReactionRequest struct {
	UserID    uint   `json:"id" binding:"required"`
	CommentID uint   `json:"commentId" binding:"required"`
	EmojiCode string `json:"emojiCode" binding:"required"`
}

type listTicketsRequest struct {
	StatusID  *int
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func parseListTicketsRequest(c *gin.Context) listTicketsRequest {
	pagination := utils.ParsePagination(c)
	sort := utils.ParseSortOrder(c)

	req := listTicketsRequest{
		Search:    c.Query("Search"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    sort.Column,
		SortOrder: sort.Direction,
	}

	if raw := c.Query("StatusId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			req.StatusID = &id
		}
	}

	return req
}

func (r listTicketsRequest) toQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		StatusID:  r.StatusID,
		Search:    r.Search,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseTicketIDQuery(c *gin.Context) (uint, error) {
	raw := c.Query("TicketId")
	if raw == "" {
		return 0, errors.NewValidationError("TicketId is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("TicketId must be a positive integer")
	}

	return uint(id), nil
}
