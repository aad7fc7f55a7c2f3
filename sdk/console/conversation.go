package console

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ConversationState names the session's lifecycle phase.
type ConversationState int

const (
	ConversationClosed ConversationState = iota
	ConversationLoading
	ConversationOpen
)

// Comment is one conversation entry. Pending comments carry a uuid
// placeholder ID until the gateway assigns a real one.
type Comment struct {
	ID          string
	TicketID    uint
	AuthorID    uint
	AuthorName  string
	Text        string
	CreatedDate string
	Reactions   []Reaction
	Pending     bool
}

// Reaction is one emoji reaction on a comment.
type Reaction struct {
	UserID    uint
	EmojiCode string
}

// SyncBack pushes a refreshed ticket record into the listing that
// opened this session.
type SyncBack func(updated Record)

// Conversation is a ticket detail session: the comment thread, the
// draft input, and the staged status change. Single-goroutine, like
// the other state machines in this package.
type Conversation struct {
	client *Client

	state    ConversationState
	ticketID uint
	ticket   Record
	comments []Comment

	draft           string
	committedStatus int
	pendingStatus   *int

	syncBack SyncBack
	message  string
}

// NewConversation creates a closed session over the gateway client.
// syncBack may be nil.
func NewConversation(client *Client, syncBack SyncBack) *Conversation {
	return &Conversation{
		client:   client,
		syncBack: syncBack,
	}
}

func (s *Conversation) State() ConversationState { return s.state }
func (s *Conversation) Ticket() Record           { return s.ticket }
func (s *Conversation) Comments() []Comment      { return s.comments }
func (s *Conversation) Draft() string            { return s.draft }
func (s *Conversation) Message() string          { return s.message }
func (s *Conversation) CommittedStatus() int     { return s.committedStatus }
func (s *Conversation) PendingStatus() *int      { return s.pendingStatus }

// Empty reports whether the thread should render its single
// "no conversation yet" placeholder.
func (s *Conversation) Empty() bool {
	return s.state == ConversationOpen && len(s.comments) == 0
}

// Open loads the ticket detail and enters the Open state.
func (s *Conversation) Open(ctx context.Context, ticketID uint) Result {
	s.state = ConversationLoading
	s.ticketID = ticketID

	rec, result := s.client.FetchTicket(ctx, ticketID)
	if !result.Success {
		s.state = ConversationClosed
		s.message = result.Message
		return result
	}

	s.ticket = rec
	s.comments = commentsFromRecord(rec)
	s.committedStatus = intField(rec, "statusId")
	s.pendingStatus = nil
	s.draft = ""
	s.message = ""
	s.state = ConversationOpen
	return okResult()
}

// Close is always permitted and discards the unsent draft.
func (s *Conversation) Close() {
	s.state = ConversationClosed
	s.ticket = nil
	s.comments = nil
	s.draft = ""
	s.pendingStatus = nil
	s.message = ""
}

// SetDraft replaces the input text.
func (s *Conversation) SetDraft(text string) {
	if s.state != ConversationOpen {
		return
	}
	s.draft = text
}

// SelectStatus stages a status choice without touching the committed
// value.
func (s *Conversation) SelectStatus(statusID int) {
	if s.state != ConversationOpen {
		return
	}
	s.pendingStatus = &statusID
}

// ConfirmStatus commits the staged status through the gateway, with an
// optional reason (collected when rejecting). Only on success does the
// committed value change and the listing get synced; on failure the
// pending choice stays staged and editable.
func (s *Conversation) ConfirmStatus(ctx context.Context, reason ...string) Result {
	if s.state != ConversationOpen {
		return failResult("no open conversation")
	}
	if s.pendingStatus == nil {
		return failResult("no status change staged")
	}

	result := s.client.UpdateTicketStatus(ctx, s.ticketID, *s.pendingStatus, reason...)
	if !result.Success {
		s.message = result.Message
		return result
	}

	s.committedStatus = *s.pendingStatus
	s.pendingStatus = nil
	s.ticket["statusId"] = s.committedStatus

	if s.syncBack != nil {
		s.syncBack(s.ticket)
	}
	return okResult()
}

// SendComment posts the draft. Whitespace-only drafts are refused with
// no network call. The comment appears optimistically under a
// placeholder ID; the gateway's echo replaces the placeholder on
// success, and failure rolls the optimistic comment back.
func (s *Conversation) SendComment(ctx context.Context) Result {
	if s.state != ConversationOpen {
		return failResult("no open conversation")
	}

	text := s.draft
	if strings.TrimSpace(text) == "" {
		return failResult("comment text is empty")
	}

	optimistic := Comment{
		ID:         uuid.NewString(),
		TicketID:   s.ticketID,
		AuthorID:   s.client.actorID,
		AuthorName: s.client.actorName,
		Text:       text,
		Pending:    true,
	}
	s.comments = append(s.comments, optimistic)
	s.draft = ""

	rec, result := s.client.AddComment(ctx, s.ticketID, text)
	if !result.Success {
		s.removeComment(optimistic.ID)
		s.draft = text
		s.message = result.Message
		return result
	}

	s.commitComment(optimistic.ID, rec)
	return okResult()
}

// ToggleReaction flips the actor's emoji on a comment. A comment still
// pending is persisted first, promoting its placeholder ID, because the
// gateway cannot react to a row it has never seen.
func (s *Conversation) ToggleReaction(ctx context.Context, commentID string, emojiCode string) Result {
	if s.state != ConversationOpen {
		return failResult("no open conversation")
	}

	idx := s.commentIndex(commentID)
	if idx < 0 {
		return failResult("unknown comment")
	}

	if s.comments[idx].Pending {
		rec, result := s.client.AddComment(ctx, s.ticketID, s.comments[idx].Text)
		if !result.Success {
			s.message = result.Message
			return result
		}
		// commitComment rewrites the ID in place; the slice position
		// does not move.
		s.commitComment(commentID, rec)
	}

	serverID := uintFromString(s.comments[idx].ID)
	if serverID == 0 {
		// The promotion echo carried no id; the gateway cannot react
		// to a row it never identified.
		s.message = "comment not yet persisted"
		return failResult("comment not yet persisted")
	}
	rec, result := s.client.ToggleReaction(ctx, serverID, emojiCode)
	if !result.Success {
		s.message = result.Message
		return result
	}

	if reactions, ok := reactionsFromRecord(rec); ok {
		s.comments[idx].Reactions = reactions
	} else {
		s.comments[idx].Reactions = toggleLocally(
			s.comments[idx].Reactions, s.client.actorID, emojiCode)
	}
	return okResult()
}

func (s *Conversation) commentIndex(id string) int {
	for i := range s.comments {
		if s.comments[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Conversation) removeComment(id string) {
	idx := s.commentIndex(id)
	if idx < 0 {
		return
	}
	s.comments = append(s.comments[:idx], s.comments[idx+1:]...)
}

// commitComment swaps a placeholder for the server-confirmed record.
// When the gateway echoes nothing usable, the optimistic values stand
// and only the pending flag clears.
func (s *Conversation) commitComment(placeholderID string, rec Record) {
	idx := s.commentIndex(placeholderID)
	if idx < 0 {
		return
	}

	s.comments[idx].Pending = false
	if rec == nil {
		return
	}

	if id := intField(rec, "commentId"); id > 0 {
		s.comments[idx].ID = uintToString(uint(id))
	}
	if created, ok := rec["createdDate"].(string); ok && created != "" {
		s.comments[idx].CreatedDate = created
	}
}

func toggleLocally(reactions []Reaction, userID uint, emojiCode string) []Reaction {
	for i, r := range reactions {
		if r.UserID == userID && r.EmojiCode == emojiCode {
			return append(reactions[:i], reactions[i+1:]...)
		}
	}
	return append(reactions, Reaction{UserID: userID, EmojiCode: emojiCode})
}

func commentsFromRecord(rec Record) []Comment {
	raw, ok := rec["comments"].([]any)
	if !ok {
		return nil
	}

	comments := make([]Comment, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		c := Comment{
			ID:         uintToString(uint(intField(m, "commentId"))),
			TicketID:   uint(intField(m, "ticketId")),
			AuthorID:   uint(intField(m, "authorId")),
			AuthorName: stringField(m, "authorName"),
			Text:       stringField(m, "commentText"),
		}
		if created, ok := m["createdDate"].(string); ok {
			c.CreatedDate = created
		}
		if reactions, ok := reactionsFromRecord(m); ok {
			c.Reactions = reactions
		}
		comments = append(comments, c)
	}
	return comments
}

func reactionsFromRecord(rec Record) ([]Reaction, bool) {
	if rec == nil {
		return nil, false
	}
	raw, ok := rec["reactions"].([]any)
	if !ok {
		return nil, false
	}

	reactions := make([]Reaction, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		reactions = append(reactions, Reaction{
			UserID:    uint(intField(m, "userId")),
			EmojiCode: stringField(m, "emojiCode"),
		})
	}
	return reactions, true
}
