// Package ticket exposes the console's support-ticket endpoints.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/ticket/usecases"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type Handler struct {
	listTicketsUC    usecases.ListTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	updateStatusUC   usecases.UpdateStatusExecutor
	addCommentUC     usecases.AddCommentExecutor
	toggleReactionUC usecases.ToggleReactionExecutor
	logger           logger.Interface
}

func NewHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	toggleReactionUC usecases.ToggleReactionExecutor,
) *Handler {
	return &Handler{
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		updateStatusUC:   updateStatusUC,
		addCommentUC:     addCommentUC,
		toggleReactionUC: toggleReactionUC,
		logger:           logger.NewLogger(),
	}
}

// ListTickets handles GET /SupportTickets/GetAllSupportTickets
func (h *Handler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.toQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.TotalCount)
}

// GetTicket handles POST /SupportTickets/GetSupportTicketsByTicketId
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketIDQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles POST /SupportTickets/UpdateSupportTicketStatus
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for status update", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		TicketID: req.TicketID,
		StatusID: req.StatusID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// AddComment handles POST /SupportTickets/UpsertSupportTicketsUserComment
func (h *Handler) AddComment(c *gin.Context) {
	var req UpsertCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for comment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:    req.TicketID,
		AuthorID:    req.AuthorID,
		AuthorLabel: req.AuthorName,
		Text:        req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ToggleReaction handles POST /SupportTickets/UpsertSupportTicketsUserCommentsReaction
func (h *Handler) ToggleReaction(c *gin.Context) {
	var req UpsertReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reaction", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.toggleReactionUC.Execute(c.Request.Context(), usecases.ToggleReactionCommand{
		CommentID: req.CommentID,
		UserID:    req.UserID,
		EmojiCode: req.EmojiCode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
