package models

// TicketModel is the persistence shape of a support ticket.
type TicketModel struct {
	ID               uint   `gorm:"primaryKey"`
	CategoryID       uint   `gorm:"not null;index"`
	ServiceID        uint   `gorm:"not null;index"`
	SubServiceID     *uint  `gorm:"index"`
	IssueTitle       string `gorm:"size:200;not null"`
	IssueDescription string `gorm:"type:text"`
	MediaFilePath    string `gorm:"type:text"`
	StatusID         int    `gorm:"not null;index"`
	RequesterID      uint   `gorm:"not null;index"`
	FirstName        string `gorm:"size:100"`
	LastName         string `gorm:"size:100"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations; relationships are
	// managed by application logic.
}

func (TicketModel) TableName() string {
	return "support_tickets"
}

type CommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	AuthorID    uint   `gorm:"not null;index"`
	AuthorLabel string `gorm:"size:100"`
	Text        string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "support_ticket_comments"
}

type ReactionModel struct {
	ID        uint   `gorm:"primaryKey"`
	CommentID uint   `gorm:"not null;uniqueIndex:idx_reaction_identity"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_reaction_identity"`
	EmojiCode string `gorm:"size:16;not null;uniqueIndex:idx_reaction_identity"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ReactionModel) TableName() string {
	return "support_ticket_comment_reactions"
}
