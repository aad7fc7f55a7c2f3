package mappers

import (
	"strings"
	"time"

	"sanad/internal/domain/ticket"
	vo "sanad/internal/domain/ticket/valueobjects"
	"sanad/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and persistence
// models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel, reactions []ticket.Reaction) (*ticket.Comment, error)
	ReactionToDomain(model *models.ReactionModel) ticket.Reaction
}

type ticketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapperImpl{}
}

func (m *ticketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		CategoryID:       t.CategoryID(),
		ServiceID:        t.ServiceID(),
		SubServiceID:     t.SubServiceID(),
		IssueTitle:       t.IssueTitle(),
		IssueDescription: t.IssueDescription(),
		MediaFilePath:    strings.Join(t.MediaFilePaths(), ","),
		StatusID:         t.Status().ID(),
		RequesterID:      t.RequesterID(),
		FirstName:        t.FirstName(),
		LastName:         t.LastName(),
		CreatedAt:        t.CreatedAt().UnixMilli(),
		UpdatedAt:        t.UpdatedAt().UnixMilli(),
	}
}

func (m *ticketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.StatusID)
	if err != nil {
		return nil, err
	}

	var mediaPaths []string
	if model.MediaFilePath != "" {
		for _, p := range strings.Split(model.MediaFilePath, ",") {
			if p = strings.TrimSpace(p); p != "" {
				mediaPaths = append(mediaPaths, p)
			}
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.CategoryID,
		model.ServiceID,
		model.SubServiceID,
		model.IssueTitle,
		model.IssueDescription,
		mediaPaths,
		status,
		model.RequesterID,
		model.FirstName,
		model.LastName,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *ticketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		AuthorID:    c.AuthorID(),
		AuthorLabel: c.AuthorLabel(),
		Text:        c.Text(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

func (m *ticketMapperImpl) CommentToDomain(model *models.CommentModel, reactions []ticket.Reaction) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.AuthorLabel,
		model.Text,
		time.UnixMilli(model.CreatedAt).UTC(),
		reactions,
	)
}

func (m *ticketMapperImpl) ReactionToDomain(model *models.ReactionModel) ticket.Reaction {
	return ticket.Reaction{
		ID:        model.ID,
		CommentID: model.CommentID,
		UserID:    model.UserID,
		EmojiCode: model.EmojiCode,
		CreatedAt: time.UnixMilli(model.CreatedAt).UTC(),
	}
}
