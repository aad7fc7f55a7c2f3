// Package dto defines the wire shapes the console consumes for support
// tickets. Field names are camelCase to match the gateway contract.
package dto

import (
	"sanad/internal/domain/ticket"
)

type ReactionDTO struct {
	ReactionID uint   `json:"reactionId"`
	CommentID  uint   `json:"commentId"`
	UserID     uint   `json:"userId"`
	EmojiCode  string `json:"emojiCode"`
	CreatedAt  string `json:"createdDate"`
}

type CommentDTO struct {
	CommentID   uint          `json:"commentId"`
	TicketID    uint          `json:"ticketId"`
	AuthorID    uint          `json:"authorId"`
	AuthorName  string        `json:"authorName"`
	CommentText string        `json:"commentText"`
	CreatedDate string        `json:"createdDate"`
	Reactions   []ReactionDTO `json:"reactions"`
}

type TicketListItemDTO struct {
	TicketID         uint   `json:"ticketId"`
	CategoryID       uint   `json:"categoryId"`
	ServiceID        uint   `json:"serviceId"`
	SubServiceID     *uint  `json:"subServiceId,omitempty"`
	IssueTitle       string `json:"issueTitle"`
	IssueDescription string `json:"issueDescription"`
	StatusID         int    `json:"statusId"`
	StatusName       string `json:"statusName"`
	RequesterID      uint   `json:"requesterId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	CreatedDate      string `json:"createdDate"`
}

type TicketDetailDTO struct {
	TicketListItemDTO
	MediaFilePaths []string     `json:"mediaFilePaths"`
	Comments       []CommentDTO `json:"comments"`
}

const dateLayout = "2006-01-02T15:04:05Z07:00"

func ToReactionDTO(r ticket.Reaction) ReactionDTO {
	return ReactionDTO{
		ReactionID: r.ID,
		CommentID:  r.CommentID,
		UserID:     r.UserID,
		EmojiCode:  r.EmojiCode,
		CreatedAt:  r.CreatedAt.UTC().Format(dateLayout),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	reactions := make([]ReactionDTO, 0, len(c.Reactions()))
	for _, r := range c.Reactions() {
		reactions = append(reactions, ToReactionDTO(r))
	}

	return CommentDTO{
		CommentID:   c.ID(),
		TicketID:    c.TicketID(),
		AuthorID:    c.AuthorID(),
		AuthorName:  c.AuthorLabel(),
		CommentText: c.Text(),
		CreatedDate: c.CreatedAt().UTC().Format(dateLayout),
		Reactions:   reactions,
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		TicketID:         t.ID(),
		CategoryID:       t.CategoryID(),
		ServiceID:        t.ServiceID(),
		SubServiceID:     t.SubServiceID(),
		IssueTitle:       t.IssueTitle(),
		IssueDescription: t.IssueDescription(),
		StatusID:         t.Status().ID(),
		StatusName:       t.Status().String(),
		RequesterID:      t.RequesterID(),
		FirstName:        t.FirstName(),
		LastName:         t.LastName(),
		CreatedDate:      t.CreatedAt().UTC().Format(dateLayout),
	}
}

func ToTicketDetailDTO(t *ticket.Ticket) TicketDetailDTO {
	comments := make([]CommentDTO, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		comments = append(comments, ToCommentDTO(c))
	}

	return TicketDetailDTO{
		TicketListItemDTO: ToTicketListItemDTO(t),
		MediaFilePaths:    t.MediaFilePaths(),
		Comments:          comments,
	}
}
