package ticket

import (
	"fmt"
	"strings"
	"time"

	"sanad/internal/shared/biztime"

	vo "sanad/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Ticket is the support-ticket aggregate. Field access goes through
// getters; mutation through the behavior methods, which keep the status
// transition table and timestamps consistent.
type Ticket struct {
	id             uint
	categoryID     uint
	serviceID      uint
	subServiceID   *uint
	issueTitle     string
	issueDescription string
	mediaFilePaths []string
	status         vo.Status
	requesterID    uint
	firstName      string
	lastName       string
	createdAt      time.Time
	updatedAt      time.Time
	comments       []*Comment
}

func NewTicket(
	categoryID uint,
	serviceID uint,
	subServiceID *uint,
	issueTitle string,
	issueDescription string,
	mediaFilePaths []string,
	requesterID uint,
) (*Ticket, error) {
	issueTitle = strings.TrimSpace(issueTitle)
	if issueTitle == "" {
		return nil, fmt.Errorf("issue title is required")
	}
	if len(issueTitle) > maxTitleLength {
		return nil, fmt.Errorf("issue title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(issueDescription) > maxDescriptionLength {
		return nil, fmt.Errorf("issue description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if serviceID == 0 {
		return nil, fmt.Errorf("service is required")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		categoryID:       categoryID,
		serviceID:        serviceID,
		subServiceID:     subServiceID,
		issueTitle:       issueTitle,
		issueDescription: issueDescription,
		mediaFilePaths:   append([]string(nil), mediaFilePaths...),
		status:           vo.StatusPending,
		requesterID:      requesterID,
		createdAt:        now,
		updatedAt:        now,
		comments:         []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	categoryID uint,
	serviceID uint,
	subServiceID *uint,
	issueTitle string,
	issueDescription string,
	mediaFilePaths []string,
	status vo.Status,
	requesterID uint,
	firstName string,
	lastName string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %d", status.ID())
	}

	return &Ticket{
		id:               id,
		categoryID:       categoryID,
		serviceID:        serviceID,
		subServiceID:     subServiceID,
		issueTitle:       issueTitle,
		issueDescription: issueDescription,
		mediaFilePaths:   append([]string(nil), mediaFilePaths...),
		status:           status,
		requesterID:      requesterID,
		firstName:        firstName,
		lastName:         lastName,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		comments:         []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) ServiceID() uint {
	return t.serviceID
}

func (t *Ticket) SubServiceID() *uint {
	return t.subServiceID
}

func (t *Ticket) IssueTitle() string {
	return t.issueTitle
}

func (t *Ticket) IssueDescription() string {
	return t.issueDescription
}

func (t *Ticket) MediaFilePaths() []string {
	paths := make([]string, len(t.mediaFilePaths))
	copy(paths, t.mediaFilePaths)
	return paths
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) FirstName() string {
	return t.firstName
}

func (t *Ticket) LastName() string {
	return t.lastName
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to newStatus, enforcing the transition
// table. Setting the current status again is a no-op success.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %d", newStatus.ID())
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AttachComments replaces the loaded comment list. Used when hydrating
// the aggregate from persistence.
func (t *Ticket) AttachComments(comments []*Comment) {
	t.comments = append([]*Comment(nil), comments...)
}
