package ticket

import (
	"fmt"
	"strings"
	"time"

	"sanad/internal/shared/biztime"
)

const maxCommentLength = 5000

// Comment is one entry in a ticket's conversation thread.
type Comment struct {
	id          uint
	ticketID    uint
	authorID    uint
	authorLabel string
	text        string
	createdAt   time.Time
	reactions   []Reaction
}

// Reaction is one emoji applied to a comment by one user. Toggling the
// same (comment, user, emoji) combination removes the existing reaction.
type Reaction struct {
	ID        uint
	CommentID uint
	UserID    uint
	EmojiCode string
	CreatedAt time.Time
}

func NewComment(ticketID, authorID uint, authorLabel, text string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment text cannot be empty")
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("comment text exceeds maximum length of %d characters", maxCommentLength)
	}

	return &Comment{
		ticketID:    ticketID,
		authorID:    authorID,
		authorLabel: authorLabel,
		text:        text,
		createdAt:   biztime.NowUTC(),
		reactions:   []Reaction{},
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	authorLabel string,
	text string,
	createdAt time.Time,
	reactions []Reaction,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		authorID:    authorID,
		authorLabel: authorLabel,
		text:        text,
		createdAt:   createdAt,
		reactions:   append([]Reaction(nil), reactions...),
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorLabel() string {
	return c.authorLabel
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) Reactions() []Reaction {
	reactionsCopy := make([]Reaction, len(c.reactions))
	copy(reactionsCopy, c.reactions)
	return reactionsCopy
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// ToggleReaction applies or removes the given user's emoji on this
// comment and reports whether the reaction is now present. The toggle is
// its own inverse: calling it twice restores the prior reaction set.
func (c *Comment) ToggleReaction(userID uint, emojiCode string) (added bool, err error) {
	if userID == 0 {
		return false, fmt.Errorf("user ID is required")
	}
	if emojiCode == "" {
		return false, fmt.Errorf("emoji code is required")
	}

	for i, r := range c.reactions {
		if r.UserID == userID && r.EmojiCode == emojiCode {
			c.reactions = append(c.reactions[:i], c.reactions[i+1:]...)
			return false, nil
		}
	}

	c.reactions = append(c.reactions, Reaction{
		CommentID: c.id,
		UserID:    userID,
		EmojiCode: emojiCode,
		CreatedAt: biztime.NowUTC(),
	})
	return true, nil
}
